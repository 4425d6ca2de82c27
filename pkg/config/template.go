package config

import (
	"fmt"
	"strings"
)

// DefaultFileName is the project configuration file written by init.
const DefaultFileName = ".mdcst.yml"

// DefaultTemplateHeader returns the comment block at the top of generated
// configuration files.
func DefaultTemplateHeader() string {
	return `# mdcst configuration
# Settings here are overridden by MDCST_* environment variables and flags.`
}

// GenerateTemplate returns a configuration file. The minimal template
// lists every key commented out at its default; the full template writes
// the defaults as live YAML.
func GenerateTemplate(full bool) ([]byte, error) {
	if full {
		return NewConfig().ToYAMLWithHeader(DefaultTemplateHeader())
	}

	defaults := NewConfig()

	var buf strings.Builder
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	section := func(name string, lines ...string) {
		fmt.Fprintf(&buf, "# %s:\n", name)
		for _, line := range lines {
			fmt.Fprintf(&buf, "#   %s\n", line)
		}
		buf.WriteString("\n")
	}

	section("parser",
		fmt.Sprintf("max_input_bytes: %d", defaults.Parser.MaxInputBytes),
		fmt.Sprintf("max_nesting_depth: %d", defaults.Parser.MaxNestingDepth),
	)
	section("output",
		fmt.Sprintf("tree: %s        # text, json or yaml", defaults.Output.Tree),
		fmt.Sprintf("report: %s      # text, json or summary", defaults.Output.Report),
		fmt.Sprintf("color: %s       # auto, always or never", defaults.Output.Color),
		fmt.Sprintf("positions: %t", defaults.Output.Positions),
		fmt.Sprintf("truncate: %d", defaults.Output.Truncate),
		fmt.Sprintf("languages: %t", defaults.Output.Languages),
	)
	section("check",
		fmt.Sprintf("crosscheck: %t", defaults.Check.CrossCheck),
		"jobs: 0            # 0 = one worker per CPU",
		fmt.Sprintf("follow_symlinks: %t", defaults.Check.FollowSymlinks),
	)

	buf.WriteString("# ignore:\n#   - \"vendor/**\"\n\n")
	buf.WriteString("# extensions: [" + strings.Join(defaults.Extensions, ", ") + "]\n")
	buf.WriteString("# log_level: " + defaults.LogLevel + "\n")

	return []byte(buf.String()), nil
}
