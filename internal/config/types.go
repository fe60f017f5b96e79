package config

// Config represents the typepanel configuration document.
type Config struct {
	Version   string        `yaml:"version" validate:"required,oneof=1"`
	Ownership string        `yaml:"ownership,omitempty" validate:"omitempty,oneof=internal external"`
	Mouse     *bool         `yaml:"mouse,omitempty"`
	Log       LogSettings   `yaml:"log,omitempty"`
	Catalogs  Catalogs      `yaml:"catalogs,omitempty"`
	Defaults  Defaults      `yaml:"defaults,omitempty"`
	Article   ArticleSource `yaml:"article,omitempty"`
}

// LogSettings configures the file logger.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// OptionSpec is one catalog entry as written in the config file.
type OptionSpec struct {
	ID    string `yaml:"id" validate:"required,option_id"`
	Label string `yaml:"label" validate:"required,max=40"`
	Value string `yaml:"value" validate:"required"`
	Class string `yaml:"class,omitempty"`
}

// Catalogs replaces built-in option lists. A category left empty keeps its built-in list.
type Catalogs struct {
	FontFamily      []OptionSpec `yaml:"font_family,omitempty" validate:"omitempty,dive"`
	FontSize        []OptionSpec `yaml:"font_size,omitempty" validate:"omitempty,dive"`
	FontColor       []OptionSpec `yaml:"font_color,omitempty" validate:"omitempty,dive"`
	BackgroundColor []OptionSpec `yaml:"background_color,omitempty" validate:"omitempty,dive"`
	ContentWidth    []OptionSpec `yaml:"content_width,omitempty" validate:"omitempty,dive"`
}

// Defaults names the default option of each category by ID.
type Defaults struct {
	FontFamily      string `yaml:"font_family,omitempty" validate:"omitempty,option_id"`
	FontSize        string `yaml:"font_size,omitempty" validate:"omitempty,option_id"`
	FontColor       string `yaml:"font_color,omitempty" validate:"omitempty,option_id"`
	BackgroundColor string `yaml:"background_color,omitempty" validate:"omitempty,option_id"`
	ContentWidth    string `yaml:"content_width,omitempty" validate:"omitempty,option_id"`
}

// ArticleSource points at the text shown next to the panel.
type ArticleSource struct {
	Title string `yaml:"title,omitempty" validate:"omitempty,max=120"`
	Path  string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Version: "1"}
}

// MouseEnabled reports whether mouse reporting should be turned on. It
// defaults to true.
func (c *Config) MouseEnabled() bool {
	if c == nil || c.Mouse == nil {
		return true
	}
	return *c.Mouse
}
