package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration of the CLI.
type FileConfig struct {
	LogLevel   string       `yaml:"log_level"`
	JSONReport string       `yaml:"json_report"`
	Storage    storage.Type `yaml:"storage"`
}

type cliConfig struct {
	ConfigPath string
	JSONPath   string
	LogLevel   string
	InputPath  string
	OutputPath string
}

func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		LogLevel: "warn",
		Storage:  storage.None,
	}
}

func LoadFromFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*FileConfig, error) {
	var c FileConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *FileConfig) error {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Storage {
	case "":
		c.Storage = storage.None
	case storage.None, storage.InMem, storage.PG, storage.ES:
	default:
		return fmt.Errorf("invalid storage type %q", c.Storage)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// resolve merges the YAML file with the command line; flags win.
func (c cliConfig) resolve() (*FileConfig, error) {
	fc := DefaultFileConfig()
	if c.ConfigPath != "" {
		loaded, err := LoadFromFile(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		fc = loaded
	}
	if c.LogLevel != "" {
		if _, err := parseLevel(c.LogLevel); err != nil {
			return nil, err
		}
		fc.LogLevel = c.LogLevel
	}
	if c.JSONPath != "" {
		fc.JSONReport = c.JSONPath
	}
	return fc, nil
}
