package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/harrison/seqparser/internal/sequence"
)

// Color modes accepted by the color option
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SequenceConfig controls how files are grouped into sequences
type SequenceConfig struct {
	// MinLength is the smallest number of frames that forms a sequence
	MinLength int `yaml:"min_length"`

	// StrictPadding keeps members of different widths in separate sequences
	StrictPadding bool `yaml:"strict_padding"`
}

// BrowseConfig controls which directory entries are considered
type BrowseConfig struct {
	// ShowHidden includes dot-files and dot-folders
	ShowHidden bool `yaml:"show_hidden"`

	// Ignore lists glob patterns of entry names to skip
	Ignore []string `yaml:"ignore"`
}

// WatchConfig controls the directory watcher
type WatchConfig struct {
	// Debounce is the quiet period before a changed directory is rescanned
	Debounce time.Duration `yaml:"debounce"`
}

// Config represents seqparser configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color selects colored output: auto, always or never
	Color string `yaml:"color"`

	Sequence SequenceConfig `yaml:"sequence"`
	Browse   BrowseConfig   `yaml:"browse"`
	Watch    WatchConfig    `yaml:"watch"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    ColorAuto,
		Sequence: SequenceConfig{
			MinLength:     sequence.DefaultMinLength,
			StrictPadding: false,
		},
		Browse: BrowseConfig{
			ShowHidden: true,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("200ms") in the file
	type yamlConfig struct {
		LogLevel string         `yaml:"log_level"`
		Color    string         `yaml:"color"`
		Sequence SequenceConfig `yaml:"sequence"`
		Browse   BrowseConfig   `yaml:"browse"`
		Watch    struct {
			Debounce string `yaml:"debounce"`
		} `yaml:"watch"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}

	// Nested sections only override the keys they actually contain, so
	// "show_hidden: false" is honored and an absent key keeps its default.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if section := sectionKeys(rawMap, "sequence"); section != nil {
		if _, exists := section["min_length"]; exists {
			cfg.Sequence.MinLength = yamlCfg.Sequence.MinLength
		}
		if _, exists := section["strict_padding"]; exists {
			cfg.Sequence.StrictPadding = yamlCfg.Sequence.StrictPadding
		}
	}

	if section := sectionKeys(rawMap, "browse"); section != nil {
		if _, exists := section["show_hidden"]; exists {
			cfg.Browse.ShowHidden = yamlCfg.Browse.ShowHidden
		}
		if _, exists := section["ignore"]; exists {
			cfg.Browse.Ignore = yamlCfg.Browse.Ignore
		}
	}

	if yamlCfg.Watch.Debounce != "" {
		debounce, err := time.ParseDuration(yamlCfg.Watch.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid debounce format %q: %w", yamlCfg.Watch.Debounce, err)
		}
		cfg.Watch.Debounce = debounce
	}

	return cfg, nil
}

func sectionKeys(raw map[string]interface{}, name string) map[string]interface{} {
	section, exists := raw[name]
	if !exists || section == nil {
		return nil
	}
	m, _ := section.(map[string]interface{})
	return m
}

// LoadConfigFromDir loads configuration from .seqparser/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DirName, FileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values; ignore patterns are appended
func (c *Config) MergeWithFlags(logLevel *string, color *string, minLength *int, strictPadding *bool, showHidden *bool, ignore []string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if color != nil {
		c.Color = *color
	}
	if minLength != nil {
		c.Sequence.MinLength = *minLength
	}
	if strictPadding != nil {
		c.Sequence.StrictPadding = *strictPadding
	}
	if showHidden != nil {
		c.Browse.ShowHidden = *showHidden
	}
	c.Browse.Ignore = append(c.Browse.Ignore, ignore...)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.Sequence.MinLength < 1 {
		return fmt.Errorf("sequence.min_length must be >= 1, got %d", c.Sequence.MinLength)
	}

	for _, pattern := range c.Browse.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("browse.ignore: invalid pattern %q: %w", pattern, err)
		}
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0, got %v", c.Watch.Debounce)
	}

	return nil
}

// Policy returns the sequence grouping policy described by the configuration.
func (c *Config) Policy() sequence.Policy {
	return sequence.Policy{
		MinLength:     c.Sequence.MinLength,
		StrictPadding: c.Sequence.StrictPadding,
	}
}
