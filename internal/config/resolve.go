package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/panel"
	typeerrors "github.com/alexisbeaulieu97/typepanel/pkg/errors"
)

func (c Catalogs) options(category catalog.Category) []OptionSpec {
	switch category {
	case catalog.FontFamily:
		return c.FontFamily
	case catalog.FontSize:
		return c.FontSize
	case catalog.FontColor:
		return c.FontColor
	case catalog.BackgroundColor:
		return c.BackgroundColor
	case catalog.ContentWidth:
		return c.ContentWidth
	}
	return nil
}

func (d Defaults) id(category catalog.Category) string {
	switch category {
	case catalog.FontFamily:
		return d.FontFamily
	case catalog.FontSize:
		return d.FontSize
	case catalog.FontColor:
		return d.FontColor
	case catalog.BackgroundColor:
		return d.BackgroundColor
	case catalog.ContentWidth:
		return d.ContentWidth
	}
	return ""
}

// CatalogSet returns the built-in catalogs with every configured category replaced.
func (c *Config) CatalogSet() catalog.Set {
	set := catalog.Builtin()
	if c == nil {
		return set
	}

	for _, category := range catalog.Categories() {
		specs := c.Catalogs.options(category)
		if len(specs) == 0 {
			continue
		}
		opts := make([]catalog.Option, 0, len(specs))
		for _, spec := range specs {
			opts = append(opts, catalog.Option{ID: spec.ID, Label: spec.Label, Value: spec.Value, Class: spec.Class})
		}
		set[category] = opts
	}

	return set
}

// DefaultSelection resolves the configured defaults against set. A category
// without a configured default keeps the built-in one when set still offers
// it, and falls back to the first option otherwise.
func (c *Config) DefaultSelection(set catalog.Set) (catalog.Selection, error) {
	builtin := catalog.DefaultSelection()
	sel := builtin

	for _, category := range catalog.Categories() {
		var id string
		if c != nil {
			id = c.Defaults.id(category)
		}

		if id == "" {
			if set.Contains(category, builtin.Get(category)) {
				continue
			}
			opts := set.Options(category)
			if len(opts) == 0 {
				return catalog.Selection{}, typeerrors.NewValidationError("catalogs."+categoryKey(category), "catalog is empty", nil)
			}
			sel = sel.With(category, opts[0])
			continue
		}

		opt, err := set.Lookup(category, id)
		if err != nil {
			return catalog.Selection{}, fmt.Errorf("resolve %s: %w", fieldForDefault(category), err)
		}
		sel = sel.With(category, opt)
	}

	return sel, nil
}

// OwnershipMode maps the ownership setting onto the controller's mode.
func (c *Config) OwnershipMode() panel.Ownership {
	if c != nil && c.Ownership == "external" {
		return panel.ExternalOpenState
	}
	return panel.OwnOpenState
}
