package card

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"
	"time"

	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/fonts"
	"github.com/matzehuels/statcards/pkg/observability"
	"github.com/matzehuels/statcards/pkg/render/text"
	"github.com/matzehuels/statcards/pkg/render/theme"
)

// ContentType is the media type of every rendered card.
const ContentType = "image/svg+xml; charset=utf-8"

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"esc":     text.EscapeXML,
	"percent": func(p float64) string { return fmt.Sprintf("%.2f%%", p) },
	"px":      func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"add":     func(a, b int) int { return a + b },

	"fontFamily": func() string { return text.EscapeXML(fonts.FontFamily) },
}

var templates = template.Must(
	template.New("cards").Funcs(funcs).ParseFS(templateFS, "templates/*.svg.tmpl"),
)

// Option configures a render call.
type Option func(*renderer)

type renderer struct {
	ctx       context.Context
	theme     theme.Theme
	measurer  text.Measurer
	title     bool
	showOwner bool
}

// WithTheme sets the card palette. The default theme is used otherwise.
func WithTheme(t theme.Theme) Option { return func(r *renderer) { r.theme = t } }

// WithContext attaches ctx to the render hooks.
func WithContext(ctx context.Context) Option { return func(r *renderer) { r.ctx = ctx } }

// WithMeasurer replaces the default font metrics.
func WithMeasurer(m text.Measurer) Option { return func(r *renderer) { r.measurer = m } }

// WithTitle toggles the activity card's title row. It is on by default.
func WithTitle(on bool) Option { return func(r *renderer) { r.title = on } }

// WithOwner prefixes pin names with their owner.
func WithOwner(on bool) Option { return func(r *renderer) { r.showOwner = on } }

func newRenderer(opts []Option) *renderer {
	def, _ := theme.Lookup(theme.Default)
	r := &renderer{ctx: context.Background(), theme: def, measurer: fonts.Default(), title: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// execute runs one named template and reports the outcome to the render hooks.
func (r *renderer) execute(t *template.Template, name string, data any) ([]byte, error) {
	start := time.Now()
	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, name+".svg.tmpl", data)
	if err != nil {
		err = errs.Wrap(errs.ErrCodeRenderFailed, err, "render %s card", name)
		observability.Pipeline().OnRenderComplete(r.ctx, name, 0, time.Since(start), err)
		return nil, err
	}
	observability.Pipeline().OnRenderComplete(r.ctx, name, buf.Len(), time.Since(start), nil)
	return buf.Bytes(), nil
}
