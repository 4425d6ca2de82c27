// Package configloader resolves the mdcst configuration from defaults,
// configuration files, MDCST_* environment variables and command-line
// flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/mdcst/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts. Defaults to the
	// current directory.
	WorkingDir string

	// ExplicitPath is the --config file, applied after the project config.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// Overrides applies command-line flags. It runs last.
	Overrides func(cfg *config.Config)

	// LookupEnv replaces os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// LoadResult contains the resolved configuration and where it came from.
type LoadResult struct {
	Config     *config.Config
	Paths      *ConfigPaths
	LoadedFrom []string
	Warnings   []string
}

// Load resolves the final configuration. Precedence, lowest first:
//  1. Defaults
//  2. System config (/etc/mdcst/config.yaml)
//  3. User config ($XDG_CONFIG_HOME/mdcst/config.yaml)
//  4. Project config (.mdcst.yml, searched upward)
//  5. Explicit config (--config)
//  6. Environment variables (MDCST_*)
//  7. Command-line flags
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	if paths.Explicit != "" && !fileExists(paths.Explicit) {
		return nil, &ValidationError{FilePath: paths.Explicit, Message: "config file not found"}
	}

	var layers []layer
	if !opts.IgnoreSystemConfig {
		layers = append(layers, layer{"system", paths.System})
	}
	if !opts.IgnoreUserConfig {
		layers = append(layers, layer{"user", paths.User})
	}
	if !opts.IgnoreProjectConfig {
		layers = append(layers, layer{"project", paths.Project})
	}
	layers = append(layers, layer{"explicit", paths.Explicit})

	cfg := config.NewConfig()
	loaded, err := applyLayers(cfg, layers)
	if err != nil {
		return nil, err
	}

	if !opts.IgnoreEnv {
		lookup := opts.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		if err := applyEnv(cfg, lookup); err != nil {
			return nil, &ValidationError{Field: "environment", Message: err.Error()}
		}
	}

	if opts.Overrides != nil {
		opts.Overrides(cfg)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	result := &LoadResult{
		Config:     cfg,
		Paths:      paths,
		LoadedFrom: loaded,
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}
	return result, nil
}
