package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme is the effective style configuration for one render. Construct a
// full theme with Default and layer partial overrides on top with Merge;
// the result is read-only for the rest of the render.
type Theme struct {
	Font      Font      `json:"font" yaml:"font"`
	Colors    Colors    `json:"colors" yaml:"colors"`
	Container Container `json:"container" yaml:"container"`
	Button    Button    `json:"button" yaml:"button"`
}

// Font configures typography. Sizes are pixels.
type Font struct {
	Family     string  `json:"family" yaml:"family"`
	Size       int     `json:"size" yaml:"size"`
	LineHeight float64 `json:"lineHeight" yaml:"lineHeight"`
	H1Size     int     `json:"h1Size" yaml:"h1Size"`
	H2Size     int     `json:"h2Size" yaml:"h2Size"`
	H3Size     int     `json:"h3Size" yaml:"h3Size"`
}

// Colors configures the palette. Values are CSS colors.
type Colors struct {
	Background string `json:"background" yaml:"background"` // page background behind the container
	Surface    string `json:"surface" yaml:"surface"`       // container background
	Text       string `json:"text" yaml:"text"`
	Heading    string `json:"heading" yaml:"heading"`
	Link       string `json:"link" yaml:"link"`
	Border     string `json:"border" yaml:"border"`
}

// Container configures the centered content column. Values are pixels.
type Container struct {
	Width        int `json:"width" yaml:"width"`
	Padding      int `json:"padding" yaml:"padding"`
	BorderRadius int `json:"borderRadius" yaml:"borderRadius"`
}

// Button configures call-to-action buttons.
type Button struct {
	Background   string `json:"background" yaml:"background"`
	Text         string `json:"text" yaml:"text"`
	BorderRadius int    `json:"borderRadius" yaml:"borderRadius"`
	PaddingX     int    `json:"paddingX" yaml:"paddingX"`
	PaddingY     int    `json:"paddingY" yaml:"paddingY"`
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Font: Font{
			Family:     "Helvetica, Arial, sans-serif",
			Size:       16,
			LineHeight: 1.5,
			H1Size:     32,
			H2Size:     24,
			H3Size:     20,
		},
		Colors: Colors{
			Background: "#f4f4f5",
			Surface:    "#ffffff",
			Text:       "#3f3f46",
			Heading:    "#18181b",
			Link:       "#2563eb",
			Border:     "#e4e4e7",
		},
		Container: Container{
			Width:        600,
			Padding:      32,
			BorderRadius: 8,
		},
		Button: Button{
			Background:   "#18181b",
			Text:         "#ffffff",
			BorderRadius: 6,
			PaddingX:     24,
			PaddingY:     12,
		},
	}
}

// Merge deep-merges override onto def: every non-zero override leaf wins,
// unset leaves keep the default. Merge is pure and total — merging the
// zero Theme returns def unchanged.
func Merge(def, override Theme) Theme {
	return Theme{
		Font:      mergeFont(def.Font, override.Font),
		Colors:    mergeColors(def.Colors, override.Colors),
		Container: mergeContainer(def.Container, override.Container),
		Button:    mergeButton(def.Button, override.Button),
	}
}

func mergeFont(def, o Font) Font {
	return Font{
		Family:     pick(def.Family, o.Family),
		Size:       pick(def.Size, o.Size),
		LineHeight: pick(def.LineHeight, o.LineHeight),
		H1Size:     pick(def.H1Size, o.H1Size),
		H2Size:     pick(def.H2Size, o.H2Size),
		H3Size:     pick(def.H3Size, o.H3Size),
	}
}

func mergeColors(def, o Colors) Colors {
	return Colors{
		Background: pick(def.Background, o.Background),
		Surface:    pick(def.Surface, o.Surface),
		Text:       pick(def.Text, o.Text),
		Heading:    pick(def.Heading, o.Heading),
		Link:       pick(def.Link, o.Link),
		Border:     pick(def.Border, o.Border),
	}
}

func mergeContainer(def, o Container) Container {
	return Container{
		Width:        pick(def.Width, o.Width),
		Padding:      pick(def.Padding, o.Padding),
		BorderRadius: pick(def.BorderRadius, o.BorderRadius),
	}
}

func mergeButton(def, o Button) Button {
	return Button{
		Background:   pick(def.Background, o.Background),
		Text:         pick(def.Text, o.Text),
		BorderRadius: pick(def.BorderRadius, o.BorderRadius),
		PaddingX:     pick(def.PaddingX, o.PaddingX),
		PaddingY:     pick(def.PaddingY, o.PaddingY),
	}
}

func pick[T comparable](def, override T) T {
	var zero T
	if override == zero {
		return def
	}
	return override
}

// FromYAML parses a partial theme override from YAML (or JSON) bytes.
// The result is typically passed through Merge on top of Default.
func FromYAML(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("theme: failed to parse yaml: %w", err)
	}
	return t, nil
}
