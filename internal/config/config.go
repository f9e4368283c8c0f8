package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MOTORPREP_LOG_LEVEL
const EnvPrefix = "MOTORPREP"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `json:"database" mapstructure:"database"`
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis"`
	Log      LogConfig      `json:"log" mapstructure:"log"`
	Display  DisplayConfig  `json:"display" mapstructure:"display"`
}

// DatabaseConfig locates the player database
type DatabaseConfig struct {
	Path string `json:"path" mapstructure:"path"` // empty means ~/.motorprep/data.db
}

// AnalysisConfig holds metrics engine settings
type AnalysisConfig struct {
	MonthsBetween float64 `json:"months_between" mapstructure:"months_between"` // height measurement interval
	MatchDuration float64 `json:"match_duration" mapstructure:"match_duration"` // minutes
	ReferenceFile string  `json:"reference_file" mapstructure:"reference_file"` // optional YAML norms
	Workers       int     `json:"workers" mapstructure:"workers"`               // parallel squad computations
}

// LogConfig holds logging preferences
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"` // "text" or "json"
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Decimals int `json:"decimals" mapstructure:"decimals"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			MonthsBetween: 6,
			MatchDuration: 90,
			Workers:       4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Display: DisplayConfig{
			Decimals: 1,
		},
	}
}

// newViper returns a viper instance seeded with defaults and env overrides
func newViper() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("analysis.months_between", d.Analysis.MonthsBetween)
	v.SetDefault("analysis.match_duration", d.Analysis.MatchDuration)
	v.SetDefault("analysis.reference_file", d.Analysis.ReferenceFile)
	v.SetDefault("analysis.workers", d.Analysis.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("display.decimals", d.Display.Decimals)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration from ~/.motorprep/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. Missing keys take their defaults
// and MOTORPREP_* environment variables override the file.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrNoConfig
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from defaults and environment only
func FromEnv() (*Config, error) {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to ~/.motorprep/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to path
func SaveTo(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return SaveTo(path, &example)
}

// Validate checks that the config values are usable
func (c *Config) Validate() error {
	if c.Analysis.MonthsBetween <= 0 {
		return fmt.Errorf("analysis.months_between must be positive, got %v", c.Analysis.MonthsBetween)
	}
	if c.Analysis.MatchDuration <= 0 {
		return fmt.Errorf("analysis.match_duration must be positive, got %v", c.Analysis.MatchDuration)
	}
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("analysis.workers must be at least 1, got %d", c.Analysis.Workers)
	}
	if c.Analysis.ReferenceFile != "" {
		if _, err := os.Stat(c.Analysis.ReferenceFile); err != nil {
			return fmt.Errorf("analysis.reference_file: %w", err)
		}
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}

	if c.Display.Decimals < 0 || c.Display.Decimals > 4 {
		return fmt.Errorf("display.decimals must be between 0 and 4, got %d", c.Display.Decimals)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".motorprep"), nil
}
