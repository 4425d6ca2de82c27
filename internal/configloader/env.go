package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdcst/pkg/config"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "MDCST_"

// envVar binds one environment variable to a configuration field.
type envVar struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"MAX_INPUT_BYTES", "Largest accepted input in bytes (0 = unlimited)", intField(func(c *config.Config) *int {
		return &c.Parser.MaxInputBytes
	})},
	{"MAX_NESTING_DEPTH", "Largest number of nested blocks", intField(func(c *config.Config) *int {
		return &c.Parser.MaxNestingDepth
	})},
	{"TREE_FORMAT", "Tree output format: text, json or yaml", func(c *config.Config, v string) error {
		c.Output.Tree = config.TreeFormat(v)
		return nil
	}},
	{"REPORT_FORMAT", "Check report format: text, json or summary", func(c *config.Config, v string) error {
		c.Output.Report = config.ReportFormat(v)
		return nil
	}},
	{"COLOR", "Color mode: auto, always or never", func(c *config.Config, v string) error {
		c.Output.Color = config.ColorMode(v)
		return nil
	}},
	{"POSITIONS", "Print line:column ranges: true or false", boolField(func(c *config.Config) *bool {
		return &c.Output.Positions
	})},
	{"TRUNCATE", "Leaf preview width in cells (0 = no limit)", intField(func(c *config.Config) *int {
		return &c.Output.Truncate
	})},
	{"LANGUAGES", "Annotate fenced code with its language: true or false", boolField(func(c *config.Config) *bool {
		return &c.Output.Languages
	})},
	{"CROSSCHECK", "Compare block structure against goldmark: true or false", boolField(func(c *config.Config) *bool {
		return &c.Check.CrossCheck
	})},
	{"JOBS", "Number of parallel workers (0 = auto)", intField(func(c *config.Config) *int {
		return &c.Check.Jobs
	})},
	{"IGNORE", "Comma-separated ignore globs", func(c *config.Config, v string) error {
		c.Ignore = splitList(v)
		return nil
	}},
	{"EXTENSIONS", "Comma-separated Markdown file extensions", func(c *config.Config, v string) error {
		c.Extensions = splitList(v)
		return nil
	}},
	{"LOG_LEVEL", "Log level: debug, info, warn or error", func(c *config.Config, v string) error {
		c.LogLevel = v
		return nil
	}},
}

// LoadFromEnv applies MDCST_* variables from the process environment.
func LoadFromEnv(cfg *config.Config) error {
	return applyEnv(cfg, os.LookupEnv)
}

// applyEnv applies variables from lookup. Empty values are ignored.
func applyEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := EnvPrefix + ev.suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func intField(field func(*config.Config) *int) func(*config.Config, string) error {
	return func(c *config.Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		*field(c) = n
		return nil
	}
}

func boolField(field func(*config.Config) *bool) func(*config.Config, string) error {
	return func(c *config.Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		*field(c) = b
		return nil
	}
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported environment variables in a stable
// order.
func ListEnvVars() []EnvVar {
	out := make([]EnvVar, 0, len(envVars))
	for _, ev := range envVars {
		out = append(out, EnvVar{Name: EnvPrefix + ev.suffix, Description: ev.description})
	}
	return out
}
