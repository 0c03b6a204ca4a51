package emotion

// Summary is the aggregate classification result for one corpus. It is
// derived once and never mutated; percentages are left to the output
// formatters so counting and presentation stay independently testable.
type Summary struct {
	Set      Set
	Dominant Label
	Counts   map[Label]int
}

// Total returns the number of classified comments.
func (s Summary) Total() int {
	total := 0
	for _, count := range s.Counts {
		total += count
	}
	return total
}

// Aggregate classifies every comment in corpus order and tallies label
// frequencies. The dominant label uses the identical highest-count,
// earliest-label rule as Classify. An empty corpus fails with ErrEmptyCorpus
// before any classification work.
func Aggregate(comments []Comment, lexicon *Lexicon) (Summary, error) {
	if len(comments) == 0 {
		return Summary{}, ErrEmptyCorpus
	}

	set := lexicon.Set()
	totals := make([]int, set.Len())
	for _, comment := range comments {
		label := Classify(comment.Text, lexicon)
		position, ok := set.Index(label)
		if !ok {
			// Classify only returns labels from the set.
			continue
		}
		totals[position]++
	}

	counts := make(map[Label]int, set.Len())
	for i, label := range set.labels {
		counts[label] = totals[i]
	}
	return Summary{
		Set:      set,
		Dominant: dominant(set, totals),
		Counts:   counts,
	}, nil
}
