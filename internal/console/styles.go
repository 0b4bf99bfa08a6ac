// Package console renders prompts and reads answers for the interactive session.
package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ClearScreen resets the terminal.
const ClearScreen = "\x1bc"

// Styles are the colors used for each kind of message.
type Styles struct {
	Title   lipgloss.Style
	Options [5]lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Record  lipgloss.Style
	Notice  lipgloss.Style
}

// NewStyles returns styles rendered for w. Color detection follows w, so a
// non-terminal writer gets plain text. With color false every style is plain.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	fg := func(hex string) lipgloss.Style {
		s := r.NewStyle()
		if color {
			s = s.Foreground(lipgloss.Color(hex))
		}
		return s
	}

	return Styles{
		Title: fg("#FFFF00"),
		Options: [5]lipgloss.Style{
			fg("#00FFFF"),
			fg("#FA0000"),
			fg("#969696"),
			fg("#00FF00"),
			fg("#0096FF"),
		},
		Prompt:  fg("#FF00FF"),
		Success: fg("#00FFFF"),
		Failure: fg("#FF0000"),
		Record:  fg("#FFFF00"),
		Notice:  r.NewStyle(),
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	return NewStyles(io.Discard, false)
}
