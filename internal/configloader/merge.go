package configloader

import (
	"fmt"
	"os"

	"github.com/yaklabco/mdcst/pkg/config"
)

// layer is one configuration file applied over the layers before it.
type layer struct {
	name string
	path string
}

// applyLayers overlays each existing layer onto cfg in order and returns
// the paths that were read. Keys set in a later file win; keys a file does
// not mention keep their earlier value.
func applyLayers(cfg *config.Config, layers []layer) ([]string, error) {
	var loaded []string
	for _, l := range layers {
		if l.path == "" {
			continue
		}
		if err := applyFile(cfg, l.path); err != nil {
			return loaded, fmt.Errorf("load %s config: %w", l.name, err)
		}
		loaded = append(loaded, l.path)
	}
	return loaded, nil
}

func applyFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := cfg.Overlay(content); err != nil {
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	return nil
}
