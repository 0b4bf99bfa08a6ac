package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	r := NewLineReader(strings.NewReader("  1 \r\nAlice\nlast"))

	for _, want := range []string{"1", "Alice", "last"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadLine()
	assert.True(t, errors.Is(err, ErrClosed))
}

func TestPlainStyles(t *testing.T) {
	s := PlainStyles()
	assert.Equal(t, "Date not found!", s.Failure.Render("Date not found!"))
	assert.Equal(t, "1: add", s.Options[0].Render("1: add"))
}
