// Package store contains the in-memory name -> birth date mapping and its text
// serialization. It is owned by a single session and is not safe for concurrent use.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ASHISH26940/birthdays/internal/date"
)

// ErrInvalidName is returned (wrapped) when a name cannot be stored.
var ErrInvalidName = errors.New("invalid name")

// Entry is a single record.
type Entry struct {
	Name string
	Date date.Date
}

// Store maps a person's name to their birth date.
// Only one date is kept per name; later writes replace earlier ones.
type Store struct {
	data map[string]date.Date
}

// New initializes and returns a new empty Store.
func New() *Store {
	return &Store{
		data: make(map[string]date.Date),
	}
}

// Set adds or replaces the date for name.
func (s *Store) Set(name string, d date.Date) {
	s.data[name] = d
}

// Get retrieves the date stored for name.
func (s *Store) Get(name string) (date.Date, bool) {
	d, ok := s.data[name]
	return d, ok
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.data)
}

// Entries returns every record ordered by name.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.data))
	for name, d := range s.data {
		entries = append(entries, Entry{Name: name, Date: d})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// FindNameByDate scans the records for one whose date equals d.
// When several match, the last one in Entries order wins.
func (s *Store) FindNameByDate(d date.Date) (string, bool) {
	var (
		name  string
		found bool
	)
	for _, e := range s.Entries() {
		if e.Date.Equal(d) {
			name, found = e.Name, true
		}
	}
	return name, found
}

// ValidateName checks that name can be written to and read back from the date file.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case strings.Contains(name, delimiter):
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, delimiter)
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidName, name)
	}
	return nil
}
