package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muniverk/commentmood/internal/emotion"
)

func exampleSummary(t *testing.T) emotion.Summary {
	t.Helper()
	set, err := emotion.NewSet([]emotion.Label{"anger", "joy"})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return emotion.Summary{
		Set:      set,
		Dominant: "anger",
		Counts:   map[emotion.Label]int{"anger": 2, "joy": 1},
	}
}

func TestTextFormatter_Layout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.Format(&buf, exampleSummary(t)); err != nil {
		t.Fatalf("Format: %v", err)
	}

	want := "Most common emotion: anger\n\nEmotion Totals\nanger: 2 (66.67%)\njoy: 1 (33.33%)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextFormatter_FullSet(t *testing.T) {
	t.Parallel()

	set := emotion.DefaultSet()
	summary := emotion.Summary{
		Set:      set,
		Dominant: "joy",
		Counts: map[emotion.Label]int{
			"anger": 0, "joy": 3, "fear": 1, "trust": 0, "sadness": 0, "anticipation": 0,
		},
	}

	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, summary); err != nil {
		t.Fatalf("Format: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, blank line, section header, then one line per label in set order.
	if len(lines) != 3+set.Len() {
		t.Fatalf("expected %d lines, got %d: %q", 3+set.Len(), len(lines), buf.String())
	}
	if lines[0] != "Most common emotion: joy" || lines[1] != "" || lines[2] != "Emotion Totals" {
		t.Fatalf("unexpected header lines: %q", lines[:3])
	}
	if lines[3] != "anger: 0 (0.00%)" {
		t.Errorf("unexpected first label line: %q", lines[3])
	}
	if lines[4] != "joy: 3 (75.00%)" {
		t.Errorf("unexpected joy line: %q", lines[4])
	}
}

func TestTextFormatter_Color(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := (&TextFormatter{Color: true}).Format(&buf, exampleSummary(t)); err != nil {
		t.Fatalf("Format: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "\033[33manger\033[0m") {
		t.Errorf("expected colored dominant emotion, got %q", got)
	}
	if !strings.Contains(got, "\033[36mjoy\033[0m: 1 (33.33%)") {
		t.Errorf("expected colored label name, got %q", got)
	}
}
