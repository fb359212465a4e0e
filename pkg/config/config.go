// Package config loads cmd/pickle's YAML configuration file, with
// environment-variable overrides, grounded on the teacher's yaml.v3-based
// config conventions (SPEC_FULL.md §4.12).
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	minRecursionLimit = 8
	minMaxArgc        = 8
)

// Config is cmd/pickle's tunable set, loaded from ~/.picklerc.yaml by
// default and overridable per field by environment variable.
type Config struct {
	RecursionLimit int    `yaml:"recursion_limit"`
	MaxArgc        int    `yaml:"max_argc"`
	Prompt         string `yaml:"prompt"`
	HistoryPath    string `yaml:"history_path"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		RecursionLimit: 220,
		MaxArgc:        256,
		Prompt:         "pickle> ",
		HistoryPath:    filepath.Join(home, ".pickle_history.db"),
	}
}

// Load reads path (default ~/.picklerc.yaml if empty), falling back to
// Default's values for any field left unset, and then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".picklerc.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		if fileCfg.RecursionLimit != 0 {
			cfg.RecursionLimit = fileCfg.RecursionLimit
		}
		if fileCfg.MaxArgc != 0 {
			cfg.MaxArgc = fileCfg.MaxArgc
		}
		if fileCfg.Prompt != "" {
			cfg.Prompt = fileCfg.Prompt
		}
		if fileCfg.HistoryPath != "" {
			cfg.HistoryPath = fileCfg.HistoryPath
		}
	}

	applyEnvInt("PICKLE_RECURSION_LIMIT", &cfg.RecursionLimit)
	applyEnvInt("PICKLE_MAX_ARGC", &cfg.MaxArgc)
	applyEnvString("PICKLE_PROMPT", &cfg.Prompt)
	applyEnvString("PICKLE_HISTORY_PATH", &cfg.HistoryPath)

	if cfg.RecursionLimit < minRecursionLimit {
		cfg.RecursionLimit = minRecursionLimit
	}
	if cfg.MaxArgc < minMaxArgc {
		cfg.MaxArgc = minMaxArgc
	}
	return cfg, nil
}

func applyEnvInt(name string, dst *int) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func applyEnvString(name string, dst *string) {
	if v, ok := os.LookupEnv(name); ok {
		*dst = v
	}
}
