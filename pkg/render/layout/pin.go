package layout

import "github.com/matzehuels/statcards/pkg/render/text"

// Pin text geometry.
const (
	PinFontSize      = 13.0
	PinTextWidth     = 365
	PinMaxLines      = 3
	counterIndentPad = 35
)

// NoDescription replaces a missing pin description.
const NoDescription = "No description provided"

// PinInput is the data a repository or gist pin lays out.
type PinInput struct {
	Description string
	Language    string
	Stars       int
	Forks       int
}

// PinLayout is the computed text geometry of a pin.
type PinLayout struct {
	Lines      []string
	SingleLine bool

	Language      string
	LanguageWidth int

	// Stars and Forks are compact counter strings, empty when the count is zero.
	Stars string
	Forks string

	// MetaX is where the counters start after the language label; ForksX is
	// the forks counter offset relative to the stars counter.
	MetaX  int
	ForksX int
}

// Pin wraps the description and measures the metadata row.
func Pin(m text.Measurer, in PinInput) PinLayout {
	l := PinLayout{Language: in.Language}

	if in.Description == "" {
		l.Lines = []string{NoDescription}
	} else {
		l.Lines = text.Wrap(m, in.Description, PinFontSize, PinTextWidth, PinMaxLines)
		if len(l.Lines) == 0 {
			l.Lines = []string{NoDescription}
		}
	}
	l.SingleLine = len(l.Lines) == 1

	if in.Language != "" {
		l.LanguageWidth = m.Measure(in.Language, PinFontSize)
		l.MetaX = l.LanguageWidth + counterIndentPad
	}
	if in.Stars != 0 {
		l.Stars = text.FormatCount(in.Stars)
		l.ForksX = m.Measure(l.Stars, PinFontSize) + counterIndentPad
	}
	if in.Forks != 0 {
		l.Forks = text.FormatCount(in.Forks)
	}
	return l
}
