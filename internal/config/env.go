package config

import (
	"os"
	"sort"
	"strconv"
)

type envValueKind int

const (
	envString envValueKind = iota
	envInt
	envFloat
)

type envMapping struct {
	path string
	kind envValueKind
}

// envVarMappings maps environment variables to config paths.
var envVarMappings = map[string]envMapping{
	"MIXMASTER_LOG_LEVEL":      {"logging.level", envString},
	"MIXMASTER_LOG_FORMAT":     {"logging.format", envString},
	"MIXMASTER_DATASET_PATH":   {"dataset.path", envString},
	"MIXMASTER_MAX_MISSING":    {"matching.maxMissing", envInt},
	"MIXMASTER_MIN_MATCHED":    {"matching.minMatched", envInt},
	"MIXMASTER_MIN_SCORE":      {"matching.minScore", envFloat},
	"MIXMASTER_LIMIT":          {"matching.limit", envInt},
	"MIXMASTER_TOTAL_OZ":       {"generation.totalOz", envFloat},
	"MIXMASTER_CARDS_DIR":      {"cards.outputDir", envString},
	"MIXMASTER_INVENTORY_PATH": {"inventory.path", envString},
	"MIXMASTER_THEME":          {"tui.theme", envString},
}

// EnvOverride records a config value that came from the environment
type EnvOverride struct {
	EnvVar string      `json:"envVar"`
	Path   string      `json:"path"`
	Value  interface{} `json:"value"`
}

// applyEnvOverrides applies environment variable overrides to cfg and
// returns the overrides that took effect. Unparseable values are skipped.
func applyEnvOverrides(cfg *Config) []EnvOverride {
	var overrides []EnvOverride

	// Sorted iteration keeps the override report stable.
	envVars := make([]string, 0, len(envVarMappings))
	for envVar := range envVarMappings {
		envVars = append(envVars, envVar)
	}
	sort.Strings(envVars)

	for _, envVar := range envVars {
		raw, ok := os.LookupEnv(envVar)
		if !ok || raw == "" {
			continue
		}

		mapping := envVarMappings[envVar]

		var value interface{}
		switch mapping.kind {
		case envInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			value = n
		case envFloat:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			value = f
		default:
			value = raw
		}

		if applyOverride(cfg, mapping.path, value) {
			overrides = append(overrides, EnvOverride{
				EnvVar: envVar,
				Path:   mapping.path,
				Value:  value,
			})
		}
	}

	return overrides
}

// applyOverride sets a single config value by path. Returns false for
// unknown paths or mismatched value types.
func applyOverride(cfg *Config, path string, value interface{}) bool {
	switch path {
	case "logging.level":
		s, ok := value.(string)
		if !ok {
			return false
		}
		cfg.Logging.Level = s
	case "logging.format":
		s, ok := value.(string)
		if !ok {
			return false
		}
		cfg.Logging.Format = s
	case "dataset.path":
		s, ok := value.(string)
		if !ok {
			return false
		}
		cfg.Dataset.Path = s
	case "matching.maxMissing":
		n, ok := value.(int)
		if !ok {
			return false
		}
		cfg.Matching.MaxMissing = n
	case "matching.minMatched":
		n, ok := value.(int)
		if !ok {
			return false
		}
		cfg.Matching.MinMatched = n
	case "matching.minScore":
		f, ok := value.(float64)
		if !ok {
			return false
		}
		cfg.Matching.MinScore = f
	case "matching.limit":
		n, ok := value.(int)
		if !ok {
			return false
		}
		cfg.Matching.Limit = n
	case "generation.totalOz":
		f, ok := value.(float64)
		if !ok {
			return false
		}
		cfg.Generation.TotalOz = f
	case "cards.outputDir":
		s, ok := value.(string)
		if !ok {
			return false
		}
		cfg.Cards.OutputDir = s
	case "inventory.path":
		s, ok := value.(string)
		if !ok {
			return false
		}
		cfg.Inventory.Path = s
	case "tui.theme":
		s, ok := value.(string)
		if !ok {
			return false
		}
		cfg.TUI.Theme = s
	default:
		return false
	}
	return true
}

// GetSupportedEnvVars lists the recognized environment variables.
func GetSupportedEnvVars() []string {
	vars := make([]string, 0, len(envVarMappings)+1)
	for envVar := range envVarMappings {
		vars = append(vars, envVar)
	}
	vars = append(vars, ConfigPathEnvVar)
	sort.Strings(vars)
	return vars
}
