package theme

// Typography carries the base typographic scale. LineHeight is the unit
// of vertical rhythm: every vertical spacing value the style engine
// produces is a multiple of it, so stacked components keep a shared
// baseline grid.
type Typography struct {
	FontSize   float64 `yaml:"fontSize" validate:"gte=0"`
	LineHeight float64 `yaml:"lineHeight" validate:"required,gt=0"`
}

// Rhythm converts a rhythm multiple into a concrete pixel length.
func (t Typography) Rhythm(n float64) float64 {
	return t.LineHeight * n
}

// Border holds the default border stroke width and corner radius used
// when a style request does not override them.
type Border struct {
	Width  float64 `yaml:"width" validate:"gte=0"`
	Radius float64 `yaml:"radius" validate:"gte=0"`
}

// Theme is the read-only styling contract consumed by the style engine.
// A theme is constructed once and treated as immutable for the session;
// resolution never mutates it.
type Theme struct {
	Name       string            `yaml:"name"`
	Typography Typography        `yaml:"typography"`
	Colors     map[string]string `yaml:"colors" validate:"required,dive,keys,required,endkeys,required"`
	Border     Border            `yaml:"border"`
}

// FallbackColor is the palette key every theme must define. The border
// compensator falls back to it when a request names no border color.
const FallbackColor = "gray"

// Color looks up a palette entry by name.
func (t Theme) Color(name string) (string, bool) {
	value, ok := t.Colors[name]
	return value, ok
}
