package tui

// Static page content: the terminal equivalent of the markup the script
// manipulates. Section order is fixed; the reveal and navigation layers key
// off these indices.

type section int

const (
	sectionHero section = iota
	sectionStats
	sectionSkills
	sectionProjects
	sectionContact

	sectionCount
)

var sectionNames = [sectionCount]string{
	"Home",
	"Stats",
	"Skills",
	"Projects",
	"Contact",
}

// Stat is one summary figure. Label carries the target number plus a verbatim
// suffix ("150+"); the counter animation parses the leading integer out of it.
type Stat struct {
	Label   string
	Caption string
}

// Skill is one skill bar. Target is the pre-encoded fill fraction, assigned
// directly when the section reveals.
type Skill struct {
	Name   string
	Target float64
}

var (
	heroTitle = "Jordan Vale"
	heroSub   = "Backend engineer · distributed systems · terminal enthusiast"
	heroBody  = "I build data plumbing that stays up and tools people actually enjoy using. This page scrolls; the projects open."

	pageStats = []Stat{
		{Label: "150+", Caption: "open-source contributions"},
		{Label: "12", Caption: "projects shipped"},
		{Label: "8", Caption: "years writing software"},
		{Label: "3", Caption: "conference talks"},
	}

	pageSkills = []Skill{
		{Name: "Go", Target: 0.92},
		{Name: "Distributed systems", Target: 0.85},
		{Name: "Terminal UIs", Target: 0.80},
		{Name: "SQL & storage", Target: 0.74},
		{Name: "Kubernetes", Target: 0.65},
	}

	contactLines = []string{
		"mail     jordan@vale.dev",
		"github   github.com/jordanvale",
		"matrix   @jordan:vale.dev",
	}
)
