package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/prefix-expr/parser"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.False(t, cfg.Parser.Strict)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.Equal(t, OutputText, cfg.Output.Format)
	assert.Equal(t, "\t", cfg.Output.Indent)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		Name    string
		Content string
	}{
		{
			Name: "config.toml",
			Content: `
[parser]
strict = true
max_depth = 16

[output]
format = "yaml"
color = true
`,
		},
		{
			Name: "config.yaml",
			Content: `
parser:
  strict: true
  max_depth: 16
output:
  format: yaml
  color: true
`,
		},
		{
			Name: "config.YML",
			Content: `
parser: {strict: true, max_depth: 16}
output: {format: yaml, color: true}
`,
		},
	}

	for i := range testCases {
		path := filepath.Join(dir, testCases[i].Name)
		require.NoError(t, os.WriteFile(path, []byte(testCases[i].Content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err, "file: %s", testCases[i].Name)

		assert.True(t, cfg.Parser.Strict)
		assert.Equal(t, 16, cfg.Parser.MaxDepth)
		assert.Equal(t, OutputYAML, cfg.Output.Format)
		assert.True(t, cfg.Output.Color)

		// Missing keys keep their defaults.
		assert.Equal(t, "\t", cfg.Output.Indent)
		assert.Equal(t, Default().REPL, cfg.REPL)

		assert.Equal(t, parser.Options{Strict: true, MaxDepth: 16}, cfg.ParserOptions())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "config.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFromString("[output]\nformat = \"xml\"\n", FormatTOML)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = LoadFromString("output:\n  indent: \"\"\n", FormatYAML)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = LoadFromString("parser = [", FormatTOML)
	assert.Error(t, err)

	_, err = LoadFromString("parser: [", FormatYAML)
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		Path   string
		Format Format
		Err    bool
	}{
		{Path: "a.toml", Format: FormatTOML},
		{Path: "dir/b.yaml", Format: FormatYAML},
		{Path: "c.yml", Format: FormatYAML},
		{Path: "d.TOML", Format: FormatTOML},
		{Path: "e.ini", Err: true},
		{Path: "noext", Err: true},
	}

	for _, tc := range testCases {
		format, err := DetectFormat(tc.Path)
		if tc.Err {
			assert.ErrorIs(t, err, ErrUnknownFormat, "path: %s", tc.Path)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.Format, format, "path: %s", tc.Path)
	}

	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
}
