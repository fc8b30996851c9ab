package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"mdtoc/pkg/rewrite"
	"mdtoc/pkg/toc"
	"mdtoc/pkg/utils"
)

// Config holds the tool configuration, normally loaded from a .mdtoc.yaml
// file next to the documents being processed.
type Config struct {
	ItemSymbol  string `yaml:"item_symbol,omitempty"`
	MinLevel    int    `yaml:"min_level,omitempty"`
	MaxLevel    int    `yaml:"max_level,omitempty"`
	Indent      *int   `yaml:"indent,omitempty"` // Pointer so an explicit 0 (flat list) survives defaulting
	BeginMarker string `yaml:"begin_marker,omitempty"`
	EndMarker   string `yaml:"end_marker,omitempty"`
	Workers     int    `yaml:"workers,omitempty"`
}

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = ".mdtoc.yaml"

// Load reads and parses a YAML config file. The result still needs Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapErrorf(utils.ErrFilesystem, "reading config %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, utils.WrapErrorf(utils.ErrConfigValidation, "parsing config %q: %v", path, err)
	}
	return &cfg, nil
}

// Options converts the config into render options. Call Validate first so
// defaults are in place. The slugifier is left unset, so each render call
// gets a fresh GitHub-compatible one.
func (c *Config) Options() toc.Options {
	opts := toc.DefaultOptions()
	if c.ItemSymbol != "" {
		opts.ItemSymbol = toc.ItemSymbol([]rune(c.ItemSymbol)[0])
	}
	if c.MinLevel > 0 {
		opts.MinLevel = c.MinLevel
	}
	if c.MaxLevel > 0 {
		opts.MaxLevel = c.MaxLevel
	}
	if c.Indent != nil {
		opts.Indent = *c.Indent
	}
	return opts
}

// Markers returns the configured begin and end marker lines, falling back to
// the rewrite package defaults.
func (c *Config) Markers() (begin, end string) {
	begin, end = c.BeginMarker, c.EndMarker
	if begin == "" {
		begin = rewrite.DefaultBeginMarker
	}
	if end == "" {
		end = rewrite.DefaultEndMarker
	}
	return begin, end
}
