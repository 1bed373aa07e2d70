package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// UIConfig stores UI preferences
type UIConfig struct {
	LastTempoPercent int    `json:"lastTempoPercent,omitempty"`
	VisibleHands     string `json:"visibleHands,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	BackendURL  string   `json:"backendURL,omitempty"`
	MidiPath    string   `json:"midiPath,omitempty"` // optional local piece, bypasses the backend
	PalettePath string   `json:"palettePath,omitempty"`
	UI          UIConfig `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BackendURL: "http://localhost:5000",
		UI: UIConfig{
			LastTempoPercent: 100,
			VisibleHands:     "both",
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "piano-tutor"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
