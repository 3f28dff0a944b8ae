package portfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/vfaronov/httpheader"
)

const fetchTimeout = 10 * time.Second

// Load fetches the project dataset exactly once, from a local file or an
// http(s) URL. The caller decides what a failure means; folio logs it and
// carries on with an empty dataset.
func Load(src string) (Dataset, error) {
	var (
		projects []Project
		err      error
	)
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		projects, err = loadHTTP(src)
	} else {
		projects, err = loadFile(src)
	}
	if err != nil {
		return Dataset{}, err
	}

	sniffImages(projects, filepath.Dir(src))
	return NewDataset(projects), nil
}

func loadFile(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return decode(data)
}

func loadHTTP(url string) ([]Project, error) {
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset fetch returned status %d", resp.StatusCode)
	}

	if mtype, _ := httpheader.ContentType(resp.Header); !isJSONType(mtype) {
		return nil, fmt.Errorf("dataset has unexpected content type %q", mtype)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body: %w", err)
	}
	return decode(data)
}

func isJSONType(mtype string) bool {
	return mtype == "application/json" || mtype == "text/json" || strings.HasSuffix(mtype, "+json")
}

func decode(data []byte) ([]Project, error) {
	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return projects, nil
}

// sniffImages fills in ImageKind for projects whose image file exists next to
// the dataset. Missing or unreadable images are left alone; the modal just
// shows the path without a kind.
func sniffImages(projects []Project, baseDir string) {
	for i := range projects {
		if projects[i].Image == "" {
			continue
		}
		path := projects[i].Image
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		head := make([]byte, 261)
		n, _ := io.ReadFull(f, head)
		f.Close()

		kind, err := filetype.Match(head[:n])
		if err != nil || kind == filetype.Unknown || !filetype.IsImage(head[:n]) {
			continue
		}
		projects[i].ImageKind = kind.Extension
	}
}
