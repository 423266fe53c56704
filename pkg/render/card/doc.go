// Package card renders statistics into SVG cards.
//
// Each card binds a geometry result from [layout], a resolved [theme.Theme]
// and raw text into one of a fixed set of embedded templates: activity
// calendar, language bar, repository pin, gist pin, Hugging Face pin and the
// error card. All user-supplied text is XML-escaped at bind time.
//
// A template execution failure is reported as RENDER_FAILED. It is the only
// failure this package produces; upstream failures are rendered with
// [Error] instead.
//
// [layout]: github.com/matzehuels/statcards/pkg/render/layout
package card
