package card

import (
	"github.com/matzehuels/statcards/pkg/render/layout"
	"github.com/matzehuels/statcards/pkg/render/text"
	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

const (
	hubWidth       = 440
	hubHeight      = 120
	counterPadding = 35
)

type hubView struct {
	Palette       theme.Palette
	Width, Height int
	Kind          stats.HubKind
	Name          string
	Likes         string
	Downloads     string
	DownloadsX    int
	Tags          []layout.Tag
	TagHeight     int
}

// Hub renders a Hugging Face model, dataset or space pin. Tags that would
// overflow the row are dropped.
func Hub(h stats.Hub, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	name := h.Name
	if r.showOwner {
		name = h.ID
	}
	v := hubView{
		Palette:   r.theme.Palette,
		Width:     hubWidth,
		Height:    hubHeight,
		Kind:      h.Kind,
		Name:      name,
		Likes:     text.FormatCount(h.Likes),
		Tags:      layout.VisibleTags(layout.Tags(r.measurer, h.Tags, layout.TagBudget)),
		TagHeight: 22,
	}
	if h.Kind.HasDownloads() {
		v.Downloads = text.FormatCount(h.Downloads)
		v.DownloadsX = r.measurer.Measure(v.Likes, layout.PinFontSize) + counterPadding
	}
	return r.execute(templates, "hub", v)
}
