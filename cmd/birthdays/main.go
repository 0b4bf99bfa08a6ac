// Package main is the entry point for the birthdays command-line tool.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"strings"

	"github.com/ASHISH26940/birthdays/internal/config"
	"github.com/ASHISH26940/birthdays/internal/console"
	"github.com/ASHISH26940/birthdays/internal/logging"
	"github.com/ASHISH26940/birthdays/internal/persistence"
	"github.com/ASHISH26940/birthdays/internal/session"
	"github.com/ASHISH26940/birthdays/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	// --- Configuration and Flags ---
	configFile := flag.String("config", config.DefaultPath, "Path to config file")
	flag.Parse()

	cfg := config.New()
	configErr := cfg.Load(*configFile)
	// The default config file is optional.
	if configErr != nil && errors.Is(configErr, fs.ErrNotExist) && *configFile == config.DefaultPath {
		configErr = nil
	}

	// On a log file error the logger has already warned and fallen back to stderr.
	logger, closer, _ := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer closer.Close()
	if configErr != nil {
		logger.Error("failed to load config", "path", *configFile, "error", configErr)
		return 1
	}

	// --- Open the date file and load the store ---
	dateFile, err := persistence.Open(cfg.DataFile, persistence.WithTruncate(cfg.TruncateOnSave))
	if err != nil {
		logger.Error("failed to open date file", "error", err)
		return 1
	}
	defer dateFile.Close()

	content, err := dateFile.ReadAll()
	if err != nil {
		logger.Error("failed to read date file", "error", err)
		return 1
	}
	st, err := store.Load(strings.NewReader(content))
	if err != nil {
		logger.Error("failed to load records", "path", dateFile.Path(), "error", err)
		return 1
	}
	logger.Info("records loaded", "path", dateFile.Path(), "count", st.Len())

	// --- Run the interactive session ---
	sess := session.New(st, dateFile,
		session.WithStyles(console.NewStyles(os.Stdout, cfg.Color)),
		session.WithLogger(logger.Named("session")),
		session.WithClearScreen(cfg.ClearScreen),
		session.WithLenientDates(cfg.LenientDates),
	)
	if err := sess.Run(context.Background()); err != nil {
		logger.Error("session ended without saving", "records_in_memory", st.Len(), "error", err)
		return 1
	}
	return 0
}
