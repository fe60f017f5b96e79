package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/panel"
	typeerrors "github.com/alexisbeaulieu97/typepanel/pkg/errors"
)

func TestDefaultConfigResolvesToBuiltins(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(cfg))

	set := cfg.CatalogSet()
	assert.Equal(t, catalog.Builtin(), set)

	sel, err := cfg.DefaultSelection(set)
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultSelection(), sel)
	assert.Equal(t, panel.OwnOpenState, cfg.OwnershipMode())
	assert.True(t, cfg.MouseEnabled())
}

func TestNilConfigHelpers(t *testing.T) {
	t.Parallel()

	var cfg *Config
	assert.Equal(t, catalog.Builtin(), cfg.CatalogSet())
	assert.True(t, cfg.MouseEnabled())
	assert.Equal(t, panel.OwnOpenState, cfg.OwnershipMode())

	sel, err := cfg.DefaultSelection(catalog.Builtin())
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultSelection(), sel)
}

func TestCatalogReplacementAndDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Version:   "1",
		Ownership: "external",
		Catalogs: Catalogs{
			FontSize: []OptionSpec{
				{ID: "small", Label: "Small", Value: "14px"},
				{ID: "large", Label: "Large", Value: "30px"},
			},
			ContentWidth: []OptionSpec{
				{ID: "narrow", Label: "Narrow", Value: "400px", Class: "container-narrow"},
			},
		},
		Defaults: Defaults{FontFamily: "ubuntu", FontSize: "large"},
	}
	require.NoError(t, ValidateConfig(cfg))

	set := cfg.CatalogSet()
	require.Len(t, set.Options(catalog.FontSize), 2)
	assert.Equal(t, catalog.Builtin().Options(catalog.FontFamily), set.Options(catalog.FontFamily))

	sel, err := cfg.DefaultSelection(set)
	require.NoError(t, err)
	assert.Equal(t, "Ubuntu", sel.FontFamily.Value)
	assert.Equal(t, "30px", sel.FontSize.Value)
	assert.Equal(t, "#000", sel.FontColor.Value)
	assert.Equal(t, catalog.Option{ID: "narrow", Label: "Narrow", Value: "400px", Class: "container-narrow"}, sel.ContentWidth)
	assert.True(t, sel.Complete(set))
	assert.Equal(t, panel.ExternalOpenState, cfg.OwnershipMode())
}

func TestDefaultSelectionFallsBackToFirstOption(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Version: "1",
		Catalogs: Catalogs{
			FontColor: []OptionSpec{
				{ID: "ink", Label: "Ink", Value: "#1a1a1a"},
				{ID: "sepia", Label: "Sepia", Value: "#704214"},
			},
		},
	}

	sel, err := cfg.DefaultSelection(cfg.CatalogSet())
	require.NoError(t, err)
	assert.Equal(t, "ink", sel.FontColor.ID)
}

func TestDefaultSelectionUnknownID(t *testing.T) {
	t.Parallel()

	cfg := &Config{Version: "1", Defaults: Defaults{FontSize: "99px"}}
	_, err := cfg.DefaultSelection(cfg.CatalogSet())

	var unknown *typeerrors.UnknownOptionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "99px", unknown.ID)
	assert.Contains(t, err.Error(), "defaults.font_size")
}

func TestDefaultSelectionEmptyCatalog(t *testing.T) {
	t.Parallel()

	set := catalog.Builtin()
	set[catalog.FontFamily] = nil

	_, err := Default().DefaultSelection(set)
	var validationErr *typeerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "catalogs.font_family", validationErr.Field)
}
