// Package logging builds the diagnostic logger used by the CLI.
//
// Diagnostics never go to stdout, which belongs to the interactive session.
// Every logger carries a per-process session id so that several runs appending
// to the same log file can be told apart.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

const name = "birthdays"

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// SessionID returns the id of the current process, creating it on first use.
func SessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.NewString()
	})
	return sessionID
}

// Options selects where and how much to log.
type Options struct {
	Level string // trace, debug, info, warn, error, off
	File  string // appended to; empty means stderr
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and the closer for its output.
//
// If File cannot be opened the logger falls back to stderr and the error is
// returned alongside it, so callers can still log the failure.
func New(opts Options) (hclog.Logger, io.Closer, error) {
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
		err    error
	)
	if opts.File != "" {
		file, openErr := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if openErr != nil {
			err = fmt.Errorf("failed to open log file: %w", openErr)
		} else {
			out, closer = file, file
		}
	}

	logger := newLogger(out, level)
	if err != nil {
		logger.Warn("falling back to stderr logging", "error", err)
	}
	return logger, closer, err
}

func newLogger(out io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: out,
	}).With("session", SessionID())
}
