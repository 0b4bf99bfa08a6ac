package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrClosed is returned when input ends before an answer is read.
var ErrClosed = errors.New("input closed")

// LineReader reads one trimmed answer per line.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without surrounding whitespace.
// A final line without a trailing newline is still returned; after that ErrClosed.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrClosed
			}
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
