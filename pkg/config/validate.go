package config

import (
	"fmt"
	"unicode/utf8"

	"mdtoc/pkg/utils"
)

// Validate checks Config fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *Config) Validate() (warnings []string, err error) {
	// ItemSymbol
	switch c.ItemSymbol {
	case "":
		c.ItemSymbol = "-"
	case "-", "*", "+":
		// allowed list markers
	default:
		if utf8.RuneCountInString(c.ItemSymbol) != 1 {
			return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
				"item_symbol must be a single character, got %q", c.ItemSymbol)
		}
		warnings = append(warnings, fmt.Sprintf(
			"item_symbol %q is not a standard Markdown list marker (-, *, +)", c.ItemSymbol))
	}

	// MinLevel / MaxLevel
	if c.MinLevel == 0 {
		c.MinLevel = 1
	}
	if c.MaxLevel == 0 {
		c.MaxLevel = 6
	}
	if c.MinLevel < 1 || c.MinLevel > 6 {
		warnings = append(warnings, fmt.Sprintf("min_level %d out of range 1..6, defaulting to 1", c.MinLevel))
		c.MinLevel = 1
	}
	if c.MaxLevel < 1 || c.MaxLevel > 6 {
		warnings = append(warnings, fmt.Sprintf("max_level %d out of range 1..6, defaulting to 6", c.MaxLevel))
		c.MaxLevel = 6
	}
	if c.MinLevel > c.MaxLevel {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"min_level %d exceeds max_level %d", c.MinLevel, c.MaxLevel)
	}

	// Indent
	if c.Indent != nil && *c.Indent < 0 {
		warnings = append(warnings, fmt.Sprintf("indent %d cannot be negative, defaulting to 2", *c.Indent))
		c.Indent = nil
	}

	// Markers
	if (c.BeginMarker == "") != (c.EndMarker == "") {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"begin_marker and end_marker must be set together")
	}
	if c.BeginMarker != "" && c.BeginMarker == c.EndMarker {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"begin_marker and end_marker must differ, both are %q", c.BeginMarker)
	}

	// Workers
	if c.Workers < 0 {
		warnings = append(warnings, "workers cannot be negative, defaulting to 4")
		c.Workers = 0
	}
	if c.Workers == 0 {
		c.Workers = 4
	}

	return warnings, nil
}
