package emotion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FilterAll is the country filter value meaning "no filtering".
const FilterAll = "all"

// Comment is one corpus row. Comments are constructed once at load time and
// never mutated afterwards.
type Comment struct {
	ID       int
	Username string
	Country  string // normalized to lowercase
	Text     string
}

// LoadComments reads a comma-separated comment file, keeping only comments
// matching the country filter.
func LoadComments(path string, country string) ([]Comment, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("comment file %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open comments %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	comments, err := ReadComments(file, country)
	if err != nil {
		return nil, fmt.Errorf("comments %s: %w", path, err)
	}
	return comments, nil
}

// ReadComments parses comma-separated records of exactly 4 fields:
// comment id (integer), username, country, text. Username, country, and text
// are trimmed; country is lowercased. Unquoted fields may contain bare
// quote characters. The country filter matches
// case-insensitively; FilterAll keeps every row. Input order is preserved.
func ReadComments(r io.Reader, country string) ([]Comment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Comment text routinely contains stray quotes; accept them verbatim.
	reader.LazyQuotes = true
	filter := strings.ToLower(strings.TrimSpace(country))

	comments := make([]Comment, 0)
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrMalformedSource)
		}
		row++

		if len(record) != 4 {
			return nil, fmt.Errorf(
				"row %d: expected 4 comma-separated fields, got %d: %w",
				row, len(record), ErrMalformedSource,
			)
		}
		id, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf(
				"row %d: comment id %q is not an integer: %w",
				row, record[0], ErrMalformedSource,
			)
		}

		comment := Comment{
			ID:       id,
			Username: strings.TrimSpace(record[1]),
			Country:  strings.ToLower(strings.TrimSpace(record[2])),
			Text:     strings.TrimSpace(record[3]),
		}
		if filter != FilterAll && comment.Country != filter {
			continue
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
