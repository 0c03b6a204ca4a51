package emotion

import "strings"

// Classify scores one comment text against the lexicon and returns the
// dominant label. Tokens absent from the lexicon contribute nothing. The
// winner is the label with the highest accumulated score; ties go to the
// label earliest in set order, so classification is deterministic even when
// every score is zero.
func Classify(text string, lexicon *Lexicon) Label {
	scores := make([]int, lexicon.set.Len())
	for _, token := range strings.Fields(Normalize(text)) {
		vector, ok := lexicon.Lookup(token)
		if !ok {
			continue
		}
		for i, weight := range vector {
			scores[i] += weight
		}
	}
	return dominant(lexicon.set, scores)
}

// dominant picks the position with the highest value. A strict comparison
// keeps the earliest position on ties, which is the set-order tie-break.
func dominant(set Set, values []int) Label {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return set.labels[best]
}
