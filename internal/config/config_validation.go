package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	typeerrors "github.com/alexisbeaulieu97/typepanel/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return typeerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for _, category := range catalog.Categories() {
		if err := validateCatalog(category, cfg.Catalogs.options(category)); err != nil {
			return err
		}
	}

	set := cfg.CatalogSet()
	for _, category := range catalog.Categories() {
		id := cfg.Defaults.id(category)
		if id == "" {
			continue
		}
		if _, err := set.Lookup(category, id); err != nil {
			return typeerrors.NewValidationError(fieldForDefault(category),
				fmt.Sprintf("default %q is not in the %s catalog", id, categoryKey(category)),
				err)
		}
	}

	return nil
}

func validateCatalog(category catalog.Category, specs []OptionSpec) error {
	v := validatorInstance()
	seen := make(map[string]struct{}, len(specs))

	for i, spec := range specs {
		if _, exists := seen[spec.ID]; exists {
			return typeerrors.NewValidationError(fieldForOption(category, i, "id"), fmt.Sprintf("duplicate option id %q", spec.ID), nil)
		}
		seen[spec.ID] = struct{}{}

		tag := valueTag(category)
		if err := v.Var(spec.Value, tag); err != nil {
			field := fieldForOption(category, i, "value")
			return typeerrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, tag), err)
		}
	}

	return nil
}
