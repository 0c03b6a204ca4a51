package emotion

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Lexicon maps a surface word to one integer weight per label of its set,
// with weights stored in set order. It is read-only after loading and safe
// to share across classification calls.
type Lexicon struct {
	set     Set
	weights map[string][]int
}

// LoadLexicon reads a tab-separated lexicon file for the given set.
func LoadLexicon(path string, set Set) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("lexicon file %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	lexicon, err := ReadLexicon(file, set)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lexicon, nil
}

// ReadLexicon parses tab-separated records of the form
// word<TAB>w1<TAB>...<TAB>wK with K = set.Len(), weight columns in set
// order. Weights may be negative. Blank lines are skipped. When a word
// appears more than once, the last occurrence wins.
func ReadLexicon(r io.Reader, set Set) (*Lexicon, error) {
	weights := make(map[string][]int)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) != set.Len()+1 {
			return nil, fmt.Errorf(
				"line %d: expected %d tab-separated fields, got %d: %w",
				line, set.Len()+1, len(fields), ErrMalformedSource,
			)
		}

		vector := make([]int, set.Len())
		for i, field := range fields[1:] {
			weight, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf(
					"line %d: weight %q is not an integer: %w",
					line, field, ErrMalformedSource,
				)
			}
			vector[i] = weight
		}
		word := strings.ToLower(strings.TrimSpace(fields[0]))
		weights[word] = vector
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lexicon: %w", err)
	}

	return &Lexicon{set: set, weights: weights}, nil
}

// Lookup returns the weight vector for a word, in set order.
// Words absent from the lexicon return ok=false; that is not an error.
func (l *Lexicon) Lookup(word string) ([]int, bool) {
	vector, ok := l.weights[word]
	return vector, ok
}

// Set returns the emotion set this lexicon was loaded against.
func (l *Lexicon) Set() Set {
	return l.set
}

// Len returns the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.weights)
}
