package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	typeerrors "github.com/alexisbeaulieu97/typepanel/pkg/errors"
)

// convertValidationError normalizes validator errors into typepanel validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return typeerrors.NewValidationError(field, msg, err)
	}

	return typeerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

// snakeCase turns "BackgroundColor[2]" into "background_color[2]".
func snakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		prevLower = !upper && r != '[' && r != ']'
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForOption(category catalog.Category, index int, field string) string {
	return fmt.Sprintf("catalogs.%s[%d].%s", categoryKey(category), index, field)
}

func fieldForDefault(category catalog.Category) string {
	return "defaults." + categoryKey(category)
}

// categoryKey is the YAML key a category is written under.
func categoryKey(category catalog.Category) string {
	return snakeCase(string(category))
}

// valueTag is the validator tag option values of a category must satisfy.
func valueTag(category catalog.Category) string {
	switch category {
	case catalog.FontColor, catalog.BackgroundColor:
		return "css_color"
	case catalog.FontSize, catalog.ContentWidth:
		return "css_length"
	default:
		return "required"
	}
}
