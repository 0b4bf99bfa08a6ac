// Package config handles loading and parsing the application's configuration.
package config

import "github.com/BurntSushi/toml"

// DefaultPath is the config file read when no -config flag is given.
const DefaultPath = "birthdays.toml"

// Config holds all configuration for the application.
type Config struct {
	DataFile       string `toml:"data_file"`        // Path of the persisted date file
	TruncateOnSave bool   `toml:"truncate_on_save"` // false keeps stale bytes past the new end of file
	Color          bool   `toml:"color"`
	ClearScreen    bool   `toml:"clear_screen"`  // Clear the terminal before the main menu
	LenientDates   bool   `toml:"lenient_dates"` // Re-prompt instead of aborting on a bad date
	LogLevel       string `toml:"log_level"`
	LogFile        string `toml:"log_file"` // Empty means stderr
}

// New returns a new Config with default values.
func New() *Config {
	return &Config{
		DataFile:       "dates.txt",
		TruncateOnSave: true,
		Color:          true,
		ClearScreen:    false,
		LenientDates:   false,
		LogLevel:       "warn",
		LogFile:        "",
	}
}

// Load reads a configuration file from the given path and populates the Config struct.
// Keys absent from the file keep their current values.
func (c *Config) Load(path string) error {
	_, err := toml.DecodeFile(path, c)
	return err
}
