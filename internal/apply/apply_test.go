package apply

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/registry"
	"github.com/starford/ansuz/internal/testutil"
)

func testApplicator(t *testing.T) (string, *Applicator) {
	t.Helper()
	docsDir, store := testutil.TestDocs(t)
	return docsDir, New(store, testutil.DiscardLogger(), false)
}

func parentFixture() models.ParentPage {
	return models.ParentPage{
		Path: "guides/_index.md",
		Frontmatter: []frontmatter.Field{
			{Key: "title", Value: "Getting Started"},
			{Key: "nav_order", Value: 2},
			{Key: "has_children", Value: true},
		},
		Body: "\n# Getting Started\n\nPick a guide below.\n",
	}
}

func leafFixture() models.LeafPage {
	return models.LeafPage{
		Path: "guides/QUICK_START.md",
		Frontmatter: []frontmatter.Field{
			{Key: "title", Value: "Quick Start"},
			{Key: "parent", Value: "Getting Started"},
			{Key: "nav_order", Value: 1},
		},
	}
}

func TestEnsureParentPage_CreatesWithRenderedBlock(t *testing.T) {
	docsDir, a := testApplicator(t)
	page := parentFixture()

	out, err := a.EnsureParentPage(page)
	if err != nil {
		t.Fatalf("EnsureParentPage: %v", err)
	}
	if out != OutcomeCreated {
		t.Fatalf("outcome = %q, want %q", out, OutcomeCreated)
	}

	got, err := os.ReadFile(filepath.Join(docsDir, page.Path))
	if err != nil {
		t.Fatalf("read created page: %v", err)
	}
	want := "---\ntitle: Getting Started\nnav_order: 2\nhas_children: true\n---\n\n# Getting Started\n\nPick a guide below.\n"
	if string(got) != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestEnsureParentPage_ExistingFileUntouched(t *testing.T) {
	docsDir, a := testApplicator(t)
	page := parentFixture()

	original := []byte("# Hand-written index\n")
	abs := filepath.Join(docsDir, page.Path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, original, 0o644); err != nil {
		t.Fatal(err)
	}
	before := checksum.Sum(original)

	out, err := a.EnsureParentPage(page)
	if err != nil {
		t.Fatalf("EnsureParentPage: %v", err)
	}
	if out != OutcomeExists {
		t.Errorf("outcome = %q, want %q", out, OutcomeExists)
	}
	got, _ := os.ReadFile(abs)
	if checksum.Sum(got) != before {
		t.Errorf("existing parent page was modified: %q", got)
	}
}

func TestApplyFrontMatter_PrependsByteExact(t *testing.T) {
	docsDir, a := testApplicator(t)
	page := leafFixture()

	original := "# Quick Start\n\nSome existing content.\n"
	abs := filepath.Join(docsDir, page.Path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := a.ApplyFrontMatter(page)
	if err != nil {
		t.Fatalf("ApplyFrontMatter: %v", err)
	}
	if out != OutcomeAdded {
		t.Fatalf("outcome = %q, want %q", out, OutcomeAdded)
	}

	got, _ := os.ReadFile(abs)
	want := frontmatter.Render(page.Frontmatter) + original
	if string(got) != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestApplyFrontMatter_AlreadyPresentUnchanged(t *testing.T) {
	docsDir, a := testApplicator(t)
	page := leafFixture()

	// Leading whitespace before the delimiter still counts as present.
	original := []byte("\n  ---\ntitle: Old\n---\nBody\n")
	abs := filepath.Join(docsDir, page.Path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, original, 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := a.ApplyFrontMatter(page)
	if err != nil {
		t.Fatalf("ApplyFrontMatter: %v", err)
	}
	if out != OutcomePresent {
		t.Errorf("outcome = %q, want %q", out, OutcomePresent)
	}
	got, _ := os.ReadFile(abs)
	if string(got) != string(original) {
		t.Errorf("content changed: %q", got)
	}
}

func TestApplyFrontMatter_MissingFileWarnsAndSkips(t *testing.T) {
	docsDir, a := testApplicator(t)
	page := leafFixture()

	out, err := a.ApplyFrontMatter(page)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if out != OutcomeMissing {
		t.Errorf("outcome = %q, want %q", out, OutcomeMissing)
	}
	if _, err := os.Stat(filepath.Join(docsDir, page.Path)); err == nil {
		t.Error("missing leaf page must not be created")
	}
}

func TestRun_Idempotent(t *testing.T) {
	docsDir, a := testApplicator(t)
	leaf := leafFixture()

	abs := filepath.Join(docsDir, leaf.Path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte("# Quick Start\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	parents := []models.ParentPage{parentFixture()}
	leaves := []models.LeafPage{leaf}

	if _, err := a.Run(parents, leaves); err != nil {
		t.Fatalf("first run: %v", err)
	}
	afterFirstParent, _ := os.ReadFile(filepath.Join(docsDir, parents[0].Path))
	afterFirstLeaf, _ := os.ReadFile(abs)

	report, err := a.Run(parents, leaves)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	afterSecondParent, _ := os.ReadFile(filepath.Join(docsDir, parents[0].Path))
	afterSecondLeaf, _ := os.ReadFile(abs)

	if string(afterFirstParent) != string(afterSecondParent) {
		t.Error("parent page changed on second run")
	}
	if string(afterFirstLeaf) != string(afterSecondLeaf) {
		t.Error("leaf page changed on second run (double front matter?)")
	}
	if report.Created != 0 || report.Added != 0 {
		t.Errorf("second run performed writes: %+v", report)
	}
	if report.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", report.Skipped)
	}
}

func TestRun_EmptyTreeScenario(t *testing.T) {
	// On an empty docs root the full registry pass creates every parent
	// page and warns for every leaf page.
	_, a := testApplicator(t)

	parents := registry.ParentPages()
	leaves := registry.LeafPages()
	report, err := a.Run(parents, leaves)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Created != len(parents) {
		t.Errorf("created = %d, want %d", report.Created, len(parents))
	}
	if report.Missing != len(leaves) {
		t.Errorf("missing = %d, want %d", report.Missing, len(leaves))
	}
	if report.Added != 0 || report.Skipped != 0 {
		t.Errorf("unexpected outcomes: %+v", report)
	}
	if len(report.Entries) != len(parents)+len(leaves) {
		t.Errorf("entries = %d", len(report.Entries))
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	docsDir, store := testutil.TestDocs(t)
	a := New(store, testutil.DiscardLogger(), true)

	leaf := leafFixture()
	abs := filepath.Join(docsDir, leaf.Path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	original := []byte("# Quick Start\n")
	if err := os.WriteFile(abs, original, 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := a.Run([]models.ParentPage{parentFixture()}, []models.LeafPage{leaf})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Created != 1 || report.Added != 1 {
		t.Errorf("dry run should report planned changes: %+v", report)
	}
	if _, err := os.Stat(filepath.Join(docsDir, "guides/_index.md")); err == nil {
		t.Error("dry run created a parent page")
	}
	got, _ := os.ReadFile(abs)
	if string(got) != string(original) {
		t.Errorf("dry run modified a leaf page: %q", got)
	}
}

func TestScan(t *testing.T) {
	docsDir, store := testutil.TestDocs(t)

	withFM := filepath.Join(docsDir, "a.md")
	if err := os.WriteFile(withFM, []byte("---\ntitle: Annotated\n---\nBody\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withoutFM := filepath.Join(docsDir, "b.md")
	if err := os.WriteFile(withoutFM, []byte("# Raw Page\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	statuses, err := Scan(store)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("len = %d, want 2", len(statuses))
	}
	byPath := map[string]PageStatus{}
	for _, s := range statuses {
		byPath[s.Path] = s
	}
	if s := byPath["a.md"]; !s.HasFrontMatter || s.Title != "Annotated" {
		t.Errorf("a.md status = %+v", s)
	}
	if s := byPath["b.md"]; s.HasFrontMatter || s.Title != "Raw Page" {
		t.Errorf("b.md status = %+v", s)
	}
}
