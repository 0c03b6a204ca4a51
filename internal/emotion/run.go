package emotion

import (
	"fmt"

	"github.com/muniverk/commentmood/internal/log"
)

// Run executes a full analysis: load the lexicon, collect the configured
// comment sources, load and filter comments, and aggregate. Progress lines
// go to the logger when it is enabled.
func Run(cfg Config, logger *log.Logger) (Summary, error) {
	if logger == nil {
		logger = &log.Logger{}
	}

	set, err := cfg.EmotionSet()
	if err != nil {
		return Summary{}, err
	}
	lexicon, err := LoadLexicon(cfg.Lexicon, set)
	if err != nil {
		return Summary{}, err
	}
	logger.Printf("lexicon: %d entries, %d categories", lexicon.Len(), set.Len())

	files, err := CollectSources(cfg.Comments)
	if err != nil {
		return Summary{}, err
	}
	logger.Printf("sources: %d comment files", len(files))

	userFilter, err := NewUserFilter(cfg.ExcludeUsers)
	if err != nil {
		return Summary{}, err
	}

	comments := make([]Comment, 0)
	seen := make(map[int]string)
	for _, file := range files {
		batch, err := LoadComments(file, cfg.Country)
		if err != nil {
			return Summary{}, err
		}
		loaded := len(batch)
		batch = userFilter.Apply(batch)
		logger.Printf("comments %s: %d kept, %d excluded", file, len(batch), loaded-len(batch))

		for _, comment := range batch {
			if origin, ok := seen[comment.ID]; ok {
				return Summary{}, fmt.Errorf(
					"duplicate comment id %d in %s (first seen in %s): %w",
					comment.ID, file, origin, ErrMalformedSource,
				)
			}
			seen[comment.ID] = file
		}
		comments = append(comments, batch...)
	}
	logger.Printf("corpus: %d comments (country=%s)", len(comments), cfg.Country)

	return Aggregate(comments, lexicon)
}
