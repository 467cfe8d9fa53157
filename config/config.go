package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure. Values from a config file
// are merged over the defaults; command-line flags win over both.
type Config struct {
	BaseBranch    string       `json:"baseBranch"`    // Default: "origin/dev"
	Remote        string       `json:"remote"`        // Default: "origin"
	IgnorePattern string       `json:"ignorePattern"` // Default: "-eld", empty disables
	IgnoreGlobs   []string     `json:"ignoreGlobs"`
	WindowDays    int          `json:"windowDays"` // Default: 60
	Fetch         bool         `json:"fetch"`      // Default: true
	Jobs          int          `json:"jobs"`       // Default: 1
	Output        OutputConfig `json:"output"`
}

// OutputConfig holds report rendering options.
type OutputConfig struct {
	Format string `json:"format"` // console, json, csv, markdown
	Top    int    `json:"top"`    // 0 means unlimited
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		BaseBranch:    "origin/dev",
		Remote:        "origin",
		IgnorePattern: "-eld",
		IgnoreGlobs:   []string{},
		WindowDays:    60,
		Fetch:         true,
		Jobs:          1,
		Output: OutputConfig{
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// With an empty path the default locations are tried (.gitunmerged.json in
// the working directory, then in the home directory).
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".gitunmerged.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitunmerged.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".gitunmerged.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
