package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"mixmaster/internal/paths"
)

// ConfigPathEnvVar points at an explicit config file, bypassing the
// state directory lookup.
const ConfigPathEnvVar = "MIXMASTER_CONFIG"

// Config represents the complete MixMaster configuration (v2 schema)
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Dataset    DatasetConfig    `json:"dataset" mapstructure:"dataset"`
	Matching   MatchingConfig   `json:"matching" mapstructure:"matching"`
	Generation GenerationConfig `json:"generation" mapstructure:"generation"`
	Cards      CardsConfig      `json:"cards" mapstructure:"cards"`
	Inventory  InventoryConfig  `json:"inventory" mapstructure:"inventory"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`
	TUI        TUIConfig        `json:"tui" mapstructure:"tui"`
}

// DatasetConfig locates the cocktail dataset
type DatasetConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// MatchingConfig contains ingredient search tuning
type MatchingConfig struct {
	MaxMissing int     `json:"maxMissing" mapstructure:"maxMissing"`
	MinMatched int     `json:"minMatched" mapstructure:"minMatched"`
	MinScore   float64 `json:"minScore" mapstructure:"minScore"`
	Limit      int     `json:"limit" mapstructure:"limit"`
}

// GenerationConfig contains recipe generation defaults
type GenerationConfig struct {
	TotalOz float64 `json:"totalOz" mapstructure:"totalOz"`
}

// CardsConfig contains card export configuration
type CardsConfig struct {
	OutputDir string `json:"outputDir" mapstructure:"outputDir"`
}

// InventoryConfig locates the optional bar inventory file
type InventoryConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// TUIConfig contains terminal UI configuration
type TUIConfig struct {
	Theme string `json:"theme" mapstructure:"theme"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 2,
		Dataset: DatasetConfig{
			Path: "data/cocktails.json",
		},
		Matching: MatchingConfig{
			MaxMissing: 2,
			MinMatched: 1,
			MinScore:   0.0,
			Limit:      0,
		},
		Generation: GenerationConfig{
			TotalOz: 3.0,
		},
		Cards: CardsConfig{
			OutputDir: "cards",
		},
		Inventory: InventoryConfig{
			Path: "bar.toml",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
		TUI: TUIConfig{
			Theme: "default",
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("version", 2)
	v.SetDefault("dataset.path", "data/cocktails.json")
	v.SetDefault("matching.maxMissing", 2)
	v.SetDefault("matching.minMatched", 1)
	v.SetDefault("matching.minScore", 0.0)
	v.SetDefault("matching.limit", 0)
	v.SetDefault("generation.totalOz", 3.0)
	v.SetDefault("cards.outputDir", "cards")
	v.SetDefault("inventory.path", "bar.toml")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")
	v.SetDefault("tui.theme", "default")
	return v
}

// LoadResult describes where the effective configuration came from
type LoadResult struct {
	Config       *Config
	ConfigPath   string // Empty when defaults were used
	UsedDefaults bool
	EnvOverrides []EnvOverride
}

// LoadConfig loads the effective configuration from the state directory,
// applying environment overrides.
func LoadConfig() (*Config, error) {
	stateDir, err := paths.StateDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(stateDir)
}

// LoadConfigFrom loads configuration from config.json in the given
// directory, applying environment overrides.
func LoadConfigFrom(dir string) (*Config, error) {
	result, err := LoadConfigWithDetails(dir)
	if err != nil {
		return nil, err
	}
	return result.Config, nil
}

// LoadConfigWithDetails loads configuration and reports its provenance.
// Lookup order: MIXMASTER_CONFIG, then config.json in dir, then defaults.
func LoadConfigWithDetails(dir string) (*LoadResult, error) {
	result := &LoadResult{}

	if custom := os.Getenv(ConfigPathEnvVar); custom != "" {
		cfg, err := loadConfigFromPath(custom)
		if err != nil {
			return nil, err
		}
		result.Config = cfg
		result.ConfigPath = custom
	} else {
		path := filepath.Join(dir, paths.ConfigFileName)
		if _, statErr := os.Stat(path); statErr == nil {
			cfg, err := loadConfigFromPath(path)
			if err != nil {
				return nil, err
			}
			result.Config = cfg
			result.ConfigPath = path
		} else {
			result.Config = DefaultConfig()
			result.UsedDefaults = true
		}
	}

	result.EnvOverrides = applyEnvOverrides(result.Config)
	return result, nil
}

func loadConfigFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to the state directory's config.json
func (c *Config) Save() error {
	dir, err := paths.EnsureStateDir()
	if err != nil {
		return err
	}
	return c.SaveTo(dir)
}

// SaveTo writes the configuration to config.json in the given directory
func (c *Config) SaveTo(dir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, paths.ConfigFileName), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 2 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Dataset.Path == "" {
		return &ConfigError{Field: "dataset.path", Message: "dataset path must not be empty"}
	}
	if c.Matching.MaxMissing < 0 {
		return &ConfigError{Field: "matching.maxMissing", Message: "must be >= 0"}
	}
	if c.Matching.MinMatched < 1 {
		return &ConfigError{Field: "matching.minMatched", Message: "must be >= 1"}
	}
	if c.Matching.MinScore < 0 || c.Matching.MinScore > 1 {
		return &ConfigError{Field: "matching.minScore", Message: "must be between 0 and 1"}
	}
	if c.Matching.Limit < 0 {
		return &ConfigError{Field: "matching.limit", Message: "must be >= 0"}
	}
	if c.Generation.TotalOz <= 0 {
		return &ConfigError{Field: "generation.totalOz", Message: "must be > 0"}
	}
	switch c.Logging.Format {
	case "json", "human":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be 'json' or 'human'"}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "must be debug, info, warn, or error"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
