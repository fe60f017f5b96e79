// Package catalog holds the selectable typography and layout options and the
// Selection type that records one chosen option per category.
package catalog

import (
	"fmt"
	"strings"

	typeerrors "github.com/alexisbeaulieu97/typepanel/pkg/errors"
)

// Category identifies one of the five independent option lists.
type Category string

const (
	FontFamily      Category = "fontFamily"
	FontSize        Category = "fontSize"
	FontColor       Category = "fontColor"
	BackgroundColor Category = "backgroundColor"
	ContentWidth    Category = "contentWidth"
)

var categoryOrder = []Category{FontFamily, FontSize, FontColor, BackgroundColor, ContentWidth}

var categoryTitles = map[Category]string{
	FontFamily:      "Font",
	FontSize:        "Font size",
	FontColor:       "Font color",
	BackgroundColor: "Background color",
	ContentWidth:    "Content width",
}

// Categories returns every category in panel order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves a category key, accepting the lower-case form used in config files.
func ParseCategory(key string) (Category, error) {
	for _, c := range categoryOrder {
		if string(c) == key || lowerKey(c) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", key)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title is the human readable field label.
func (c Category) Title() string {
	if title, ok := categoryTitles[c]; ok {
		return title
	}
	return string(c)
}

func lowerKey(c Category) string {
	return strings.ToLower(string(c))
}

// Option is an immutable catalog entry.
type Option struct {
	ID    string
	Label string
	Value string
	// Class is an optional presentation hint carried through to the host.
	Class string
}

// IsZero reports whether o is the zero Option.
func (o Option) IsZero() bool {
	return o == Option{}
}

// Set maps each category to its ordered, mutually exclusive options.
type Set map[Category][]Option

// Options returns the options of a category in display order.
func (s Set) Options(c Category) []Option {
	return s[c]
}

// Lookup finds an option by ID within a category.
func (s Set) Lookup(c Category, id string) (Option, error) {
	for _, opt := range s[c] {
		if opt.ID == id {
			return opt, nil
		}
	}
	return Option{}, typeerrors.NewUnknownOptionError(string(c), id)
}

// IndexOf returns the position of an option in its category, or -1.
func (s Set) IndexOf(c Category, opt Option) int {
	for i, candidate := range s[c] {
		if candidate == opt {
			return i
		}
	}
	return -1
}

// Contains reports whether opt belongs to the category's catalog.
func (s Set) Contains(c Category, opt Option) bool {
	return s.IndexOf(c, opt) >= 0
}
