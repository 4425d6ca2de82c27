package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdcst/pkg/config"
)

// ErrInvalidConfig is wrapped by every ValidationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	// Field is the dotted path of the value, e.g. "output.tree".
	Field    string
	Value    any
	Message  string
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// Unwrap returns ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Parser.MaxInputBytes < 0 {
		result.fail("parser.max_input_bytes", cfg.Parser.MaxInputBytes, "must be >= 0 (0 means unlimited)")
	}
	if cfg.Parser.MaxNestingDepth < 1 {
		result.fail("parser.max_nesting_depth", cfg.Parser.MaxNestingDepth, "must be >= 1")
	}

	if !cfg.Output.Tree.IsValid() {
		result.fail("output.tree", cfg.Output.Tree, "invalid format %q; must be one of: text, json, yaml", cfg.Output.Tree)
	}
	if !cfg.Output.Report.IsValid() {
		result.fail("output.report", cfg.Output.Report,
			"invalid format %q; must be one of: text, json, summary", cfg.Output.Report)
	}
	if !cfg.Output.Color.IsValid() {
		result.fail("output.color", cfg.Output.Color, "invalid mode %q; must be one of: auto, always, never", cfg.Output.Color)
	}
	if cfg.Output.Truncate < 0 {
		result.fail("output.truncate", cfg.Output.Truncate, "must be >= 0 (0 disables truncation)")
	}

	if cfg.Check.Jobs < 0 {
		result.fail("check.jobs", cfg.Check.Jobs, "must be >= 0 (0 means auto)")
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.fail(fmt.Sprintf("extensions[%d]", i), ext, "extension %q must start with a dot", ext)
		}
	}
	if len(cfg.Extensions) == 0 {
		result.warn("extensions", nil, "no extensions configured; directories will yield no files")
	}

	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		result.warn("log_level", cfg.LogLevel, "unknown level %q; using info", cfg.LogLevel)
	}

	return result
}
