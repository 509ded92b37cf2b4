// Package apply implements the front matter application pass over the
// documentation tree.
package apply

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/storage"
)

// Outcome classifies what happened to a single file.
type Outcome string

const (
	// OutcomeCreated means a missing parent page was written with default content.
	OutcomeCreated Outcome = "created"
	// OutcomeAdded means front matter was prepended to an existing page.
	OutcomeAdded Outcome = "added"
	// OutcomeExists means a parent page was already present and left untouched.
	OutcomeExists Outcome = "exists"
	// OutcomePresent means a page already started with a front matter delimiter.
	OutcomePresent Outcome = "present"
	// OutcomeMissing means a leaf page was not found on disk (warning, not fatal).
	OutcomeMissing Outcome = "missing"
)

// Entry records the outcome for one file.
type Entry struct {
	Path    string
	Outcome Outcome
}

// Report aggregates the outcomes of a full pass.
type Report struct {
	Entries []Entry
	Created int
	Added   int
	Skipped int
	Missing int
}

func (r *Report) add(path string, out Outcome) {
	r.Entries = append(r.Entries, Entry{Path: path, Outcome: out})
	switch out {
	case OutcomeCreated:
		r.Created++
	case OutcomeAdded:
		r.Added++
	case OutcomeExists, OutcomePresent:
		r.Skipped++
	case OutcomeMissing:
		r.Missing++
	}
}

// Applicator creates missing parent pages and prepends front matter to
// existing leaf pages. Every operation is idempotent and path-scoped.
type Applicator struct {
	store  storage.Provider
	logger *slog.Logger
	dryRun bool
}

// New creates an Applicator. With dryRun set, outcomes are computed and
// reported but nothing is written.
func New(store storage.Provider, logger *slog.Logger, dryRun bool) *Applicator {
	return &Applicator{store: store, logger: logger, dryRun: dryRun}
}

// Run executes the parent-page pass followed by the leaf-page pass and
// returns the per-file report. Only a missing leaf page is recoverable;
// any filesystem error aborts the run.
func (a *Applicator) Run(parents []models.ParentPage, leaves []models.LeafPage) (*Report, error) {
	report := &Report{}
	for _, p := range parents {
		out, err := a.EnsureParentPage(p)
		if err != nil {
			return nil, err
		}
		report.add(p.Path, out)
	}
	for _, l := range leaves {
		out, err := a.ApplyFrontMatter(l)
		if err != nil {
			return nil, err
		}
		report.add(l.Path, out)
	}
	return report, nil
}

// EnsureParentPage creates a section index page with default content when it
// is absent. Existing pages are never modified.
func (a *Applicator) EnsureParentPage(page models.ParentPage) (Outcome, error) {
	exists, err := a.store.Exists(page.Path)
	if err != nil {
		return "", err
	}
	if exists {
		a.logger.Info("parent page already exists, skipping", slog.String("path", page.Path))
		return OutcomeExists, nil
	}

	content := frontmatter.Render(page.Frontmatter) + "\n" + normalizeBody(page.Body)
	if a.dryRun {
		a.logger.Info("would create parent page", slog.String("path", page.Path))
		return OutcomeCreated, nil
	}
	if err := a.store.Write(page.Path, []byte(content)); err != nil {
		return "", err
	}
	a.logger.Info("created parent page", slog.String("path", page.Path))
	return OutcomeCreated, nil
}

// ApplyFrontMatter prepends a rendered front matter block to an existing
// page. The original content is preserved byte-for-byte after the block.
func (a *Applicator) ApplyFrontMatter(page models.LeafPage) (Outcome, error) {
	data, err := a.store.Read(page.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			a.logger.Warn("file does not exist, skipping", slog.String("path", page.Path))
			return OutcomeMissing, nil
		}
		return "", err
	}

	if frontmatter.Present(data) {
		a.logger.Info("front matter already present, skipping", slog.String("path", page.Path))
		return OutcomePresent, nil
	}

	content := append([]byte(frontmatter.Render(page.Frontmatter)), data...)
	if a.dryRun {
		a.logger.Info("would add front matter", slog.String("path", page.Path))
		return OutcomeAdded, nil
	}
	if err := a.store.Write(page.Path, content); err != nil {
		return "", err
	}
	a.logger.Info("added front matter", slog.String("path", page.Path))
	return OutcomeAdded, nil
}

// normalizeBody strips leading blank lines from a default body. Indentation
// is left alone; only the blank lines before the first content line go.
func normalizeBody(body string) string {
	return strings.TrimLeft(body, "\n")
}
