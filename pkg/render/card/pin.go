package card

import (
	"github.com/matzehuels/statcards/pkg/languages"
	"github.com/matzehuels/statcards/pkg/render/layout"
	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

const (
	pinWidth        = 400
	pinHeightSingle = 110
	pinHeightMulti  = 145
	pinMetaSingle   = 90
	pinMetaMulti    = 125
)

type pinIcon string

const (
	iconRepo pinIcon = "repo"
	iconGist pinIcon = "gist"
)

type pinView struct {
	layout.PinLayout
	Palette       theme.Palette
	Width, Height int
	MetaY         int
	Icon          pinIcon
	Name          string
	LanguageColor string
}

func (r *renderer) pin(icon pinIcon, name string, in layout.PinInput) ([]byte, error) {
	l := layout.Pin(r.measurer, in)
	v := pinView{
		PinLayout: l,
		Palette:   r.theme.Palette,
		Width:     pinWidth,
		Height:    pinHeightMulti,
		MetaY:     pinMetaMulti,
		Icon:      icon,
		Name:      name,
	}
	if l.SingleLine {
		v.Height, v.MetaY = pinHeightSingle, pinMetaSingle
	}
	if l.Language != "" {
		v.LanguageColor = languages.Color(l.Language)
	}
	return r.execute(templates, "pin", v)
}

// Repo renders a GitHub repository pin.
func Repo(repo stats.Repo, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	name := repo.Name
	if r.showOwner {
		name = repo.Owner + "/" + repo.Name
	}
	return r.pin(iconRepo, name, layout.PinInput{
		Description: repo.Description,
		Language:    repo.Language,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
	})
}

// Gist renders a gist pin named after its largest file.
func Gist(g stats.Gist, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	name := g.Name
	if r.showOwner && g.Owner != "" {
		name = g.Owner + "/" + g.Name
	}
	return r.pin(iconGist, name, layout.PinInput{
		Description: g.Description,
		Language:    g.Language,
		Stars:       g.Stars,
		Forks:       g.Forks,
	})
}
