package apply

import (
	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/storage"
)

// PageStatus describes one documentation file found under the docs root.
type PageStatus struct {
	Path           string
	Title          string
	HasFrontMatter bool
	Checksum       string
}

// Scan walks the docs root and reports the front matter state of every
// Markdown file. It never modifies anything.
func Scan(store storage.Provider) ([]PageStatus, error) {
	pages, err := store.List("")
	if err != nil {
		return nil, err
	}
	out := make([]PageStatus, 0, len(pages))
	for _, meta := range pages {
		data, err := store.Read(meta.Path)
		if err != nil {
			return nil, err
		}
		parsed := frontmatter.Parse(data)
		out = append(out, PageStatus{
			Path:           meta.Path,
			Title:          parsed.Title,
			HasFrontMatter: frontmatter.Present(data),
			Checksum:       meta.Checksum,
		})
	}
	return out, nil
}
