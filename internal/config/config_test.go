// Unit tests for the config package.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Load(t *testing.T) {
	// Create a temporary directory for our test config files
	tempDir := t.TempDir()

	// --- Test Case 1: Valid configuration file ---
	validToml := `
data_file = "/tmp/birthdays.txt"
truncate_on_save = false
color = false
log_level = "debug"
`
	validPath := filepath.Join(tempDir, "valid.toml")
	if err := os.WriteFile(validPath, []byte(validToml), 0644); err != nil {
		t.Fatalf("failed to write valid config file: %v", err)
	}

	cfg := New()
	err := cfg.Load(validPath)
	if err != nil {
		t.Fatalf("expected no error loading valid config, but got: %v", err)
	}

	if cfg.DataFile != "/tmp/birthdays.txt" {
		t.Errorf("expected data_file to be '/tmp/birthdays.txt', but got '%s'", cfg.DataFile)
	}
	if cfg.TruncateOnSave {
		t.Errorf("expected truncate_on_save to be false")
	}
	if cfg.Color {
		t.Errorf("expected color to be false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level to be 'debug', but got '%s'", cfg.LogLevel)
	}
	// Keys missing from the file keep their defaults
	if cfg.LenientDates || cfg.ClearScreen || cfg.LogFile != "" {
		t.Errorf("defaults were not preserved: %+v", cfg)
	}

	// --- Test Case 2: File does not exist ---
	cfg2 := New()
	err = cfg2.Load(filepath.Join(tempDir, "nonexistent.toml"))
	if err == nil {
		t.Fatal("expected an error for non-existent file, but got none")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, but got: %v", err)
	}
	if cfg2.DataFile != "dates.txt" {
		t.Errorf("expected default data_file to survive a failed load, but got '%s'", cfg2.DataFile)
	}

	// --- Test Case 3: Invalid TOML format ---
	invalidToml := `data_file = dates.txt` // Invalid: data_file should be a string
	invalidPath := filepath.Join(tempDir, "invalid.toml")
	if err := os.WriteFile(invalidPath, []byte(invalidToml), 0644); err != nil {
		t.Fatalf("failed to write invalid config file: %v", err)
	}

	cfg3 := New()
	err = cfg3.Load(invalidPath)
	if err == nil {
		t.Fatal("expected an error for invalid TOML, but got none")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := New()
	if cfg.DataFile != "dates.txt" {
		t.Errorf("expected default data file 'dates.txt', got '%s'", cfg.DataFile)
	}
	if !cfg.TruncateOnSave || !cfg.Color {
		t.Errorf("expected truncate_on_save and color to default to true")
	}
}
