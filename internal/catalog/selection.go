package catalog

// Selection records exactly one option per category. The struct shape keeps
// every category present at all times.
type Selection struct {
	FontFamily      Option
	FontSize        Option
	FontColor       Option
	BackgroundColor Option
	ContentWidth    Option
}

// Get returns the option chosen for a category.
func (s Selection) Get(c Category) Option {
	switch c {
	case FontFamily:
		return s.FontFamily
	case FontSize:
		return s.FontSize
	case FontColor:
		return s.FontColor
	case BackgroundColor:
		return s.BackgroundColor
	case ContentWidth:
		return s.ContentWidth
	default:
		return Option{}
	}
}

// With returns a copy of s with one category replaced. Unknown categories leave s unchanged.
func (s Selection) With(c Category, opt Option) Selection {
	switch c {
	case FontFamily:
		s.FontFamily = opt
	case FontSize:
		s.FontSize = opt
	case FontColor:
		s.FontColor = opt
	case BackgroundColor:
		s.BackgroundColor = opt
	case ContentWidth:
		s.ContentWidth = opt
	}
	return s
}

// Complete reports whether every category resolves to an option of set.
func (s Selection) Complete(set Set) bool {
	for _, c := range categoryOrder {
		if !set.Contains(c, s.Get(c)) {
			return false
		}
	}
	return true
}

// Variable is a named presentation value derived from a Selection.
type Variable struct {
	Name  string
	Value string
}

// Variables maps the selection onto the style variables applied to the content region.
func (s Selection) Variables() []Variable {
	return []Variable{
		{Name: "--font-family", Value: s.FontFamily.Value},
		{Name: "--font-size", Value: s.FontSize.Value},
		{Name: "--font-color", Value: s.FontColor.Value},
		{Name: "--container-width", Value: s.ContentWidth.Value},
		{Name: "--bg-color", Value: s.BackgroundColor.Value},
	}
}
