package output

import (
	"fmt"
	"io"

	"github.com/muniverk/commentmood/internal/emotion"
)

// TextFormatter renders the plain-text report layout: a dominant-emotion
// header line, a blank line, a section header, then one
// "name: count (pct%)" line per label in set order. This layout is a stable
// contract for downstream consumers. When Color is true, the dominant
// emotion is printed in yellow and label names in cyan; persisted reports
// are always written without color.
type TextFormatter struct {
	Color bool
}

// Format writes the report. Percentages are count/total scaled to 100 and
// shown with two decimal places.
func (f *TextFormatter) Format(w io.Writer, summary emotion.Summary) error {
	total := summary.Total()

	var err error
	if f.Color {
		_, err = fmt.Fprintf(w, "Most common emotion: \033[33m%s\033[0m\n\nEmotion Totals\n", summary.Dominant)
	} else {
		_, err = fmt.Fprintf(w, "Most common emotion: %s\n\nEmotion Totals\n", summary.Dominant)
	}
	if err != nil {
		return err
	}

	for _, label := range summary.Set.Labels() {
		count := summary.Counts[label]
		percentage := float64(count) / float64(total) * 100
		if f.Color {
			_, err = fmt.Fprintf(w, "\033[36m%s\033[0m: %d (%.2f%%)\n", label, count, percentage)
		} else {
			_, err = fmt.Fprintf(w, "%s: %d (%.2f%%)\n", label, count, percentage)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
