package emotion

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muniverk/commentmood/internal/log"
)

func runFixture(t *testing.T) (string, Config) {
	t.Helper()
	dir := t.TempDir()

	lexicon := filepath.Join(dir, "keywords.tsv")
	if err := os.WriteFile(lexicon, []byte("happy\t0\t5\t0\t0\t0\t0\nmad\t5\t0\t0\t0\t0\t0\n"), 0o644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}
	comments := filepath.Join(dir, "comments.csv")
	csv := "1,alices,india,I am happy\n2,bob,brazil,so mad today\n3,carol,INDIA,neutral words\n"
	if err := os.WriteFile(comments, []byte(csv), 0o644); err != nil {
		t.Fatalf("write comments: %v", err)
	}

	return dir, Config{
		Lexicon:  lexicon,
		Emotions: DefaultSet().Labels(),
		Comments: []SourceConfig{{Path: comments}},
		Country:  FilterAll,
		Output:   OutputConfig{Path: filepath.Join(dir, "report.txt"), Format: FormatText},
	}
}

func TestRun_FullCorpus(t *testing.T) {
	t.Parallel()

	_, cfg := runFixture(t)
	summary, err := Run(cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Total() != 3 {
		t.Fatalf("Total() = %d, want 3", summary.Total())
	}
	if summary.Dominant != "anger" {
		t.Errorf("dominant = %s, want anger", summary.Dominant)
	}
	if summary.Counts["anger"] != 2 || summary.Counts["joy"] != 1 {
		t.Errorf("unexpected counts: %v", summary.Counts)
	}
}

func TestRun_CountryFilter(t *testing.T) {
	t.Parallel()

	_, cfg := runFixture(t)
	cfg.Country = "india"
	summary, err := Run(cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Total() != 2 {
		t.Fatalf("Total() = %d, want 2 (case-insensitive india match)", summary.Total())
	}
}

func TestRun_ExcludeUsers(t *testing.T) {
	t.Parallel()

	_, cfg := runFixture(t)
	cfg.ExcludeUsers = []string{"alice*"}
	summary, err := Run(cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Total() != 2 {
		t.Fatalf("Total() = %d, want 2 after exclusion", summary.Total())
	}
}

func TestRun_EmptyAfterFiltering(t *testing.T) {
	t.Parallel()

	_, cfg := runFixture(t)
	cfg.Country = "japan"
	_, err := Run(cfg, nil)
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestRun_DuplicateCommentID(t *testing.T) {
	t.Parallel()

	dir, cfg := runFixture(t)
	extra := filepath.Join(dir, "more.csv")
	if err := os.WriteFile(extra, []byte("1,dave,canada,again\n"), 0o644); err != nil {
		t.Fatalf("write comments: %v", err)
	}
	cfg.Comments = append(cfg.Comments, SourceConfig{Path: extra})

	_, err := Run(cfg, nil)
	if !errors.Is(err, ErrMalformedSource) {
		t.Fatalf("expected ErrMalformedSource, got %v", err)
	}
	if !strings.Contains(err.Error(), "duplicate comment id 1") {
		t.Errorf("expected duplicate id message, got %v", err)
	}
}

func TestRun_MultipleSourcesPreserveOrder(t *testing.T) {
	t.Parallel()

	dir, cfg := runFixture(t)
	extra := filepath.Join(dir, "more.csv")
	if err := os.WriteFile(extra, []byte("4,dave,canada,so mad\n"), 0o644); err != nil {
		t.Fatalf("write comments: %v", err)
	}
	cfg.Comments = append(cfg.Comments, SourceConfig{Path: extra})

	summary, err := Run(cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Total() != 4 {
		t.Fatalf("Total() = %d, want 4", summary.Total())
	}
	if summary.Counts["anger"] != 3 {
		t.Errorf("anger count = %d, want 3", summary.Counts["anger"])
	}
}

func TestRun_VerboseLogging(t *testing.T) {
	t.Parallel()

	_, cfg := runFixture(t)
	var buf bytes.Buffer
	if _, err := Run(cfg, log.New(true, &buf)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	logged := buf.String()
	if !strings.Contains(logged, "lexicon: 2 entries") {
		t.Errorf("expected lexicon progress line, got %q", logged)
	}
	if !strings.Contains(logged, "corpus: 3 comments") {
		t.Errorf("expected corpus progress line, got %q", logged)
	}
}

func TestRun_MissingLexicon(t *testing.T) {
	t.Parallel()

	_, cfg := runFixture(t)
	cfg.Lexicon = filepath.Join(t.TempDir(), "nope.tsv")
	_, err := Run(cfg, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
