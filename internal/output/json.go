package output

import (
	"encoding/json"
	"io"
	"math"

	"github.com/muniverk/commentmood/internal/emotion"
)

// JSONFormatter renders the summary as a pretty-printed JSON document.
type JSONFormatter struct{}

type jsonSummary struct {
	Dominant string        `json:"dominant"`
	Total    int           `json:"total"`
	Emotions []jsonEmotion `json:"emotions"`
}

type jsonEmotion struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Format writes the summary as JSON with per-label entries in set order.
// Percentages carry two decimal places, matching the text layout.
func (f *JSONFormatter) Format(w io.Writer, summary emotion.Summary) error {
	total := summary.Total()

	emotions := make([]jsonEmotion, 0, summary.Set.Len())
	for _, label := range summary.Set.Labels() {
		count := summary.Counts[label]
		percentage := float64(count) / float64(total) * 100
		emotions = append(emotions, jsonEmotion{
			Name:       string(label),
			Count:      count,
			Percentage: math.Round(percentage*100) / 100,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonSummary{
		Dominant: string(summary.Dominant),
		Total:    total,
		Emotions: emotions,
	})
}
