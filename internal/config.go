package internal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Index IndexConfig       `yaml:"index"`
	Watch WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Index.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	// Normalise empty format to text, the developer-friendly default.
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// IndexConfig holds the scan collections and output settings.
type IndexConfig struct {
	Collections  []string `yaml:"collections"`
	Output       string   `yaml:"output"`
	RegenCommand string   `yaml:"regen_command"`
}

// Validate validates the index configuration.
func (c *IndexConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Collections, validation.Required),
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.RegenCommand, validation.Required),
	); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Collections))
	for _, coll := range c.Collections {
		if coll == "" {
			return fmt.Errorf("index: collection name is empty")
		}
		if strings.ContainsAny(coll, `/\`) {
			return fmt.Errorf("index: collection %q must be a bare directory name", coll)
		}
		if _, dup := seen[coll]; dup {
			return fmt.Errorf("index: collection %q listed twice", coll)
		}
		seen[coll] = struct{}{}
	}
	if strings.ContainsAny(c.Output, `/\`) {
		return fmt.Errorf("index: output %q must be a bare file name at the repository root", c.Output)
	}
	return nil
}

// WatchConfig holds watch-mode configuration.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	if c.Debounce <= 0 {
		return fmt.Errorf("watch: debounce must be positive, got %s", c.Debounce)
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		Index: IndexConfig{
			Collections:  []string{"facets", "experiences"},
			Output:       "tag-index.md",
			RegenCommand: "docdex build",
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}
