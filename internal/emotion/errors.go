package emotion

import "errors"

// The closed set of failure kinds surfaced by loading and aggregation.
// Callers discriminate with errors.Is; every error wraps exactly one kind.
var (
	// ErrNotFound reports that a required input file does not exist.
	ErrNotFound = errors.New("source not found")

	// ErrMalformedSource reports a structural violation of an input file:
	// wrong field count, a non-integer value, or a broken config document.
	ErrMalformedSource = errors.New("malformed source")

	// ErrEmptyCorpus reports that a corpus contains no comments after
	// filtering.
	ErrEmptyCorpus = errors.New("no comments in dataset")
)
