package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	typeerrors "github.com/alexisbeaulieu97/typepanel/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typepanel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: 1
ownership: external
mouse: false
log:
  level: debug
  file: /tmp/typepanel.log
catalogs:
  font_size:
    - id: small
      label: Small
      value: 14px
    - id: large
      label: Large
      value: 30px
defaults:
  font_family: pt-sans
  font_size: large
article:
  title: Notes
  path: ./notes.txt
`

	invalidYAML := `version: [1, 0]
ownership: internal
`

	badVersion := `version: 2
`

	badOwnership := `version: 1
ownership: parent
`

	badColor := `version: 1
catalogs:
  font_color:
    - id: red
      label: Red
      value: red
`

	badLength := `version: 1
catalogs:
  content_width:
    - id: full
      label: Full
      value: 100%
`

	duplicateID := `version: 1
catalogs:
  font_family:
    - id: mono
      label: Mono
      value: monospace
    - id: mono
      label: Mono again
      value: monospace
`

	badOptionID := `version: 1
catalogs:
  font_family:
    - id: Mono_Font
      label: Mono
      value: monospace
`

	unknownDefault := `version: 1
defaults:
  background_color: teal
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "1", cfg.Version)
				require.Equal(t, "external", cfg.Ownership)
				require.False(t, cfg.MouseEnabled())
				require.Equal(t, "debug", cfg.Log.Level)
				require.Len(t, cfg.Catalogs.FontSize, 2)
				require.Equal(t, "large", cfg.Defaults.FontSize)
				require.Equal(t, "Notes", cfg.Article.Title)
			},
		},
		{
			name:     "yaml syntax error carries a line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *typeerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unsupported version",
			contents: badVersion,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *typeerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "config.version", validationErr.Field)
			},
		},
		{
			name:     "unknown ownership",
			contents: badOwnership,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *typeerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "config.ownership", validationErr.Field)
			},
		},
		{
			name:     "color values must be hex",
			contents: badColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *typeerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "catalogs.font_color[0].value", validationErr.Field)
				require.Contains(t, err.Error(), "css_color")
			},
		},
		{
			name:     "width values must be pixel lengths",
			contents: badLength,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *typeerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "catalogs.content_width[0].value", validationErr.Field)
			},
		},
		{
			name:     "duplicate option ids",
			contents: duplicateID,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *typeerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "catalogs.font_family[1].id", validationErr.Field)
			},
		},
		{
			name:     "option ids are lower kebab case",
			contents: badOptionID,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *typeerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "config.catalogs.font_family[0].id", validationErr.Field)
				require.Contains(t, err.Error(), "option_id")
			},
		},
		{
			name:     "default must exist in its catalog",
			contents: unknownDefault,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *typeerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "defaults.background_color", validationErr.Field)
				var unknown *typeerrors.UnknownOptionError
				require.True(t, errors.As(err, &unknown))
				require.Equal(t, "teal", unknown.ID)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := ParseConfig(path)

	var parseErr *typeerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, path, parseErr.Path)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(errors.New("no position")))
	require.Equal(t, 12, extractLine(errors.New("yaml: line 12: did not find expected key")))
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *typeerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, "config", validationErr.Field)
}
