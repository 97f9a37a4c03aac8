// Package config loads the settings of the prefixexpr command from TOML or
// YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xiam/prefix-expr/parser"
)

// Format is the encoding of a configuration file.
type Format int

// Supported formats
const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Output formats of the parse command.
const (
	OutputText   = "text"
	OutputEncode = "encode"
	OutputYAML   = "yaml"
	OutputDebug  = "debug"
)

var (
	ErrUnknownFormat = errors.New("unknown configuration format")
	ErrInvalid       = errors.New("invalid configuration")
)

// Config holds the settings of the prefixexpr command.
type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Output OutputConfig `toml:"output" yaml:"output"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
}

// ParserConfig maps to parser.Options.
type ParserConfig struct {
	Strict   bool `toml:"strict" yaml:"strict"`
	MaxDepth int  `toml:"max_depth" yaml:"max_depth"`
}

// OutputConfig controls how trees are printed.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Indent string `toml:"indent" yaml:"indent"`
	Color  bool   `toml:"color" yaml:"color"`
}

// REPLConfig holds the settings of the interactive mode.
type REPLConfig struct {
	Prompt  string `toml:"prompt" yaml:"prompt"`
	History string `toml:"history" yaml:"history"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth: parser.DefaultMaxDepth,
		},
		Output: OutputConfig{
			Format: OutputText,
			Indent: "\t",
		},
		REPL: REPLConfig{
			Prompt:  "prefixexpr> ",
			History: ".prefixexpr_history",
		},
	}
}

// Load reads the file at path on top of the defaults. The format is taken
// from the file extension.
func Load(path string) (*Config, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromString(string(content), format)
}

// LoadFromString parses content on top of the defaults.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DetectFormat picks the format from the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Validate checks values that can't be represented by the types alone.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputText, OutputEncode, OutputYAML, OutputDebug:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalid, c.Output.Format)
	}
	if c.Output.Indent == "" {
		return fmt.Errorf("%w: empty indent", ErrInvalid)
	}
	return nil
}

// ParserOptions returns the parser options described by the configuration.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		Strict:   c.Parser.Strict,
		MaxDepth: c.Parser.MaxDepth,
	}
}
