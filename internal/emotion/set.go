package emotion

import "fmt"

// Label identifies one emotion category.
type Label string

// Set is an ordered, immutable list of emotion labels. The order is
// significant: it defines both the weight-column order in lexicon files and
// the tie-break priority used by Classify and Aggregate (earlier labels win
// ties).
type Set struct {
	labels []Label
	index  map[Label]int
}

// DefaultSet returns the standard six-emotion set.
func DefaultSet() Set {
	labels := []Label{"anger", "joy", "fear", "trust", "sadness", "anticipation"}
	index := make(map[Label]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	return Set{labels: labels, index: index}
}

// NewSet builds a set from an ordered list of labels.
// The list must be non-empty and free of duplicates.
func NewSet(labels []Label) (Set, error) {
	if len(labels) == 0 {
		return Set{}, fmt.Errorf("emotion set cannot be empty")
	}
	index := make(map[Label]int, len(labels))
	owned := make([]Label, len(labels))
	for i, label := range labels {
		if label == "" {
			return Set{}, fmt.Errorf("emotion label at position %d is empty", i)
		}
		if _, ok := index[label]; ok {
			return Set{}, fmt.Errorf("duplicate emotion label: %s", label)
		}
		index[label] = i
		owned[i] = label
	}
	return Set{labels: owned, index: index}, nil
}

// Labels returns a copy of the labels in set order.
func (s Set) Labels() []Label {
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of labels in the set.
func (s Set) Len() int {
	return len(s.labels)
}

// Index returns the position of a label in set order.
func (s Set) Index(label Label) (int, bool) {
	i, ok := s.index[label]
	return i, ok
}

// First returns the highest-priority label. It is the winner whenever every
// score is tied, including the all-zero case.
func (s Set) First() Label {
	return s.labels[0]
}
