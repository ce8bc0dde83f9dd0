// Package config loads tool-level defaults from YAML config files.
//
// The config path is a colon-separated list; missing files are skipped with
// a warning and later files override the keys they set.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"discern/internal/xlog"
)

// Config holds the tool defaults a sub-command falls back to when its flags
// are left unset.
type Config struct {
	CorpusDir string `yaml:"corpus_dir"`
	OutputDir string `yaml:"output_dir"`
	ModelPath string `yaml:"model_path"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		CorpusDir: "./corpus",
		OutputDir: "./out",
	}
}

// Load reads each file in the colon-separated path list over the defaults.
// A missing file is skipped; a malformed one is an error.
func Load(path string) (Config, error) {
	logger := xlog.Get("config")
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	for _, p := range strings.Split(path, ":") {
		raw, err := os.ReadFile(p)
		if err != nil {
			logger.Warnf("skipping config %s: %v", p, err)
			continue
		}
		if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", p, err)
		}
		logger.Debugf("loaded config %s", p)
	}
	return cfg, nil
}
