package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("typepanel.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "typepanel.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: typepanel.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("typepanel.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: typepanel.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("defaults.fontsize", "references unknown option", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "defaults.fontsize", validationErr.Field)
	require.Contains(t, err.Error(), "references unknown option")
}

func TestUnknownOptionErrorNamesCategory(t *testing.T) {
	t.Parallel()

	err := NewUnknownOptionError("fontFamily", "comic-sans")

	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "fontFamily", unknown.Category)
	require.Equal(t, `unknown option "comic-sans" for fontFamily`, err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var unknown *UnknownOptionError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, unknown.Error())
	require.NoError(t, parseErr.Unwrap())
}
