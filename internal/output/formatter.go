package output

import (
	"io"

	"github.com/muniverk/commentmood/internal/emotion"
)

// Formatter defines the interface for rendering an aggregate summary.
type Formatter interface {
	Format(w io.Writer, summary emotion.Summary) error
}
