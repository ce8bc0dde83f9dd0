package app

import (
	"fmt"
	"os"

	"discern/internal/corpus"
	"discern/internal/features"
	"discern/internal/model"
)

// Wire bundles the reader, extractor and stores for the CLI.
type Wire struct {
	Reader    *corpus.Reader
	Extractor *features.Extractor
	Models    *model.Store // nil when no model path is configured
}

// NewWire constructs the dependency graph from cfg. The output directory is
// created if needed.
func NewWire(cfg Config) (*Wire, error) {
	info, err := os.Stat(cfg.CorpusDir)
	if err != nil {
		return nil, fmt.Errorf("corpus directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus directory %s is not a directory", cfg.CorpusDir)
	}
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("output directory: %w", err)
		}
	}

	w := &Wire{
		Reader:    corpus.NewReader(cfg.CorpusDir),
		Extractor: &features.Extractor{Live: cfg.Live},
	}
	if cfg.ModelPath != "" {
		w.Models = &model.Store{Path: cfg.ModelPath}
	}
	return w, nil
}
