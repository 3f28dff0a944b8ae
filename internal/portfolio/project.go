package portfolio

import (
	"strings"

	"github.com/google/uuid"
)

// Project is one portfolio case study. Loaded once at startup and read-only
// afterwards.
type Project struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Duration string   `json:"duration"`
	TeamSize string   `json:"teamSize"`
	Budget   string   `json:"budget"`
	Status   string   `json:"status"`
	Problem  string   `json:"problem"`
	Solution string   `json:"solution"`
	Results  []string `json:"results"`

	// ImageKind is the sniffed image type ("png", "jpg", ...) when the image
	// file is present on disk. Empty otherwise. Not part of the wire format.
	ImageKind string `json:"-"`
}

// Dataset is an ordered, read-only collection of projects.
type Dataset struct {
	projects []Project
}

// NewDataset wraps an ordered project slice. IDs are assumed unique but not
// enforced; records without an ID get one backfilled so lookups stay possible.
func NewDataset(projects []Project) Dataset {
	for i := range projects {
		if projects[i].ID == "" {
			projects[i].ID = uuid.NewString()
		}
	}
	return Dataset{projects: projects}
}

// ByID looks a project up by id with a linear scan.
func (d Dataset) ByID(id string) (Project, bool) {
	for _, p := range d.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// All returns the projects in load order.
func (d Dataset) All() []Project {
	return d.projects
}

// Len returns the number of projects.
func (d Dataset) Len() int {
	return len(d.projects)
}

// StatusSlug turns a human status ("In Progress") into a badge slug
// ("in-progress").
func StatusSlug(status string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), " ", "-")
}
