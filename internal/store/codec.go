package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ASHISH26940/birthdays/internal/date"
)

// delimiter separates the name from the date on each line of the date file.
const delimiter = "->"

// ErrMalformedLine is returned (wrapped) for a line without the name/date delimiter.
var ErrMalformedLine = errors.New("malformed line")

// LineError reports the first line that could not be loaded.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Load builds a Store from the date file format, one "<name> -> <m>/<d>/<y>" record per line.
// Blank lines are ignored. Any other bad line aborts the load; nothing is skipped.
func Load(r io.Reader) (*Store, error) {
	s := New()

	// Lines are unbounded, like the names the session accepts.
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read records: %w", readErr)
		}
		if raw == "" && readErr != nil {
			return s, nil
		}

		lineNo++
		if line := strings.TrimSpace(raw); line != "" {
			name, d, err := parseLine(line)
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: line, Err: err}
			}
			s.Set(name, d)
		}
		if readErr != nil {
			return s, nil
		}
	}
}

func parseLine(line string) (string, date.Date, error) {
	left, right, ok := strings.Cut(line, delimiter)
	if !ok {
		return "", date.Date{}, fmt.Errorf("%w: missing %q", ErrMalformedLine, delimiter)
	}

	name := strings.TrimSpace(left)
	if err := ValidateName(name); err != nil {
		return "", date.Date{}, err
	}

	d, err := date.Parse(strings.TrimSpace(right))
	if err != nil {
		return "", date.Date{}, err
	}
	return name, d, nil
}

// Save writes every record as "<name> -> <date>\n", ordered by name.
func (s *Store) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range s.Entries() {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", e.Name, delimiter, e.Date); err != nil {
			return fmt.Errorf("failed to write record %q: %w", e.Name, err)
		}
	}
	return bw.Flush()
}
