// Package theme holds the card color palettes.
//
// Themes are a read-only table built at package initialization. Each theme
// has a five-color palette and a five-step activity ramp used to recolor
// contribution calendar cells.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Default is the theme used when a request does not name one.
const Default = "catppuccin-macchiato"

// Palette holds the five base colors of a card.
type Palette struct {
	Background        string
	SurfaceBackground string
	Text              string
	Header            string
	MonoIcon          string
}

// Activity is one step of the contribution intensity scale.
type Activity int

const (
	Inactive Activity = iota
	Small
	Medium
	High
	VeryHigh
)

// Ramp maps each Activity step to a color.
type Ramp [5]string

// Theme is a named palette plus activity ramp.
type Theme struct {
	Name     string
	Palette  Palette
	Activity Ramp
}

// ActivityColor returns the theme's color for an intensity step.
func (t Theme) ActivityColor(a Activity) string {
	return t.Activity[a]
}

// CalendarColor recolors an upstream calendar cell color. The five stock
// GitHub intensity colors are remapped through the theme's ramp; any other
// color is returned unchanged.
func (t Theme) CalendarColor(upstream string) string {
	if a, ok := calendarKeys[strings.ToLower(upstream)]; ok {
		return t.ActivityColor(a)
	}
	return upstream
}

// calendarKeys are the stock GitHub contribution colors.
var calendarKeys = map[string]Activity{
	"#ebedf0": Inactive,
	"#9be9a8": Small,
	"#40c463": Medium,
	"#30a14e": High,
	"#216e39": VeryHigh,
}

// aliases accept historical misspellings of theme names.
var aliases = map[string]string{
	"catpuccin-macchiato": "catppuccin-macchiato",
}

var themes = map[string]Theme{
	"catppuccin-macchiato": {
		Palette:  Palette{"#24273A", "#363a4f", "#CAD3F5", "#C6A0F6", "#8087a2"},
		Activity: Ramp{"#494d64", "#42583c", "#7ea072", "#a6da95", "#8ddb73"},
	},
	"catppuccin-mocha": {
		Palette:  Palette{"#1e1e2e", "#313244", "#cdd6f4", "#cba6f7", "#7f849c"},
		Activity: Ramp{"#45475a", "#42583c", "#7ea072", "#a6e3a1", "#8ddb73"},
	},
	"catppuccin-latte": {
		Palette:  Palette{"#eff1f5", "#ccd0da", "#4c4f69", "#8839ef", "#8c8fa1"},
		Activity: Ramp{"#bcc0cc", "#9be9a8", "#40c463", "#40a02b", "#216e39"},
	},
	"catppuccin-frappe": {
		Palette:  Palette{"#303446", "#414559", "#c6d0f5", "#ca9ee6", "#838ba7"},
		Activity: Ramp{"#51576d", "#42583c", "#7ea072", "#a6d189", "#8ddb73"},
	},
	"dark": {
		Palette:  Palette{"#1D1D1D", "#27272A", "#cfcfcf", "#FF6363", "#A5A5A5"},
		Activity: Ramp{"#27272A", "#42583c", "#7ea072", "#a6da95", "#8ddb73"},
	},
	"white": {
		Palette:  Palette{"#fff", "#e5e5e5", "#05010d", "#FF6363", "#A5A5A5"},
		Activity: Ramp{"#e5e5e5", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
	},
	"onedark-pro-flat": {
		Palette:  Palette{"#282c34", "#404754", "#c7ccd6", "#e06c75", "#abb2bf"},
		Activity: Ramp{"#404754", "#42583c", "#7ea072", "#98c379", "#8ddb73"},
	},
	"dracula": {
		Palette:  Palette{"#282A36", "#44475A", "#F8F8F2", "#8be9fd", "#8b949e"},
		Activity: Ramp{"#44475A", "#6272a4", "#8be9fd", "#bd93f9", "#ff79c6"},
	},
	"kanagawa-wave": {
		Palette:  Palette{"#1F1F28", "#363646", "#DCD7BA", "#E6C384", "#727169"},
		Activity: Ramp{"#363646", "#7B6B45", "#C0A36E", "#DCA561", "#E6C384"},
	},
	"ayu-mirage": {
		Palette:  Palette{"#242936", "#69758C1F", "#CCCAC2", "#FFCC66", "#8A9199CC"},
		Activity: Ramp{"#8A919959", "#EACA88", "#F29E74", "#F27983", "#FF6666"},
	},
	"ayu-white": {
		Palette:  Palette{"#FCFCFC", "#6B7D8F1F", "#5C6166", "#FFAA33", "#8A9199CC"},
		Activity: Ramp{"#8A919959", "#F4C989", "#ED9366", "#FF7383", "#E65050"},
	},
	"monokai-classic": {
		Palette:  Palette{"#272822", "#414339", "#f8f8f2", "#E6DB74", "#75715e"},
		Activity: Ramp{"#75715E", "#848528", "#E6DB74", "#e2e22e", "#A6E22E"},
	},
}

func init() {
	for name, t := range themes {
		t.Name = name
		themes[name] = t
	}
}

// Lookup returns the theme registered under name. Aliases are resolved.
func Lookup(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	t, ok := themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// Resolve returns the named theme, or the fallback theme when name is empty.
func Resolve(name, fallback string) (Theme, error) {
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = Default
	}
	return Lookup(name)
}

// Names returns all theme identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
