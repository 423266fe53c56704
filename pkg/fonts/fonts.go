// Package fonts provides the embedded typeface used to measure card text.
//
// The face ships inside the binary (Go Regular from golang.org/x/image), so
// text widths are identical on every host. The parsed font is shared
// read-only state: it is parsed once on first use and never mutated, and each
// measurement uses its own sfnt.Buffer, so Measure is safe for concurrent use.
package fonts

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontFamily is the CSS font-family used by the card templates. The first
// entry matches the measured face; the rest are fallbacks for viewers that
// do not have it installed.
const FontFamily = `'Go', 'Segoe UI', Ubuntu, 'Helvetica Neue', sans-serif`

var (
	regular     *sfnt.Font
	regularOnce sync.Once
)

// Regular returns the parsed embedded face.
// A missing or corrupt embedded font is a build defect, so it panics.
func Regular() *sfnt.Font {
	regularOnce.Do(func() {
		f, err := sfnt.Parse(goregular.TTF)
		if err != nil {
			panic("fonts: parse embedded face: " + err.Error())
		}
		regular = f
	})
	return regular
}

// Metrics measures text with a single face.
type Metrics struct {
	face *sfnt.Font
}

// Default is the Metrics for the embedded face.
func Default() *Metrics {
	return &Metrics{face: Regular()}
}

// Measure returns the advance width of text at size pixels, rounded up to a
// whole pixel. Runes missing from the face contribute the advance of the
// face's notdef glyph.
func (m *Metrics) Measure(text string, size float64) int {
	if text == "" || size <= 0 {
		return 0
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(math.Round(size * 64))
	var total fixed.Int26_6
	for _, r := range text {
		idx, err := m.face.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := m.face.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		total += adv
	}
	return total.Ceil()
}

// Measure measures text with the embedded face.
func Measure(text string, size float64) int {
	return Default().Measure(text, size)
}
