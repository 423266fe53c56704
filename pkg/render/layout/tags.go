package layout

import "github.com/matzehuels/statcards/pkg/render/text"

// Tag row geometry in pixels.
const (
	TagFontSize = 13.0
	TagPadding  = 8
	TagGap      = 10
	TagBudget   = 400
)

// Tag is a positioned pin tag.
type Tag struct {
	Name    string
	Width   int
	Offset  int
	Visible bool
}

// Tags places names on one row in order. Every tag takes the running cursor
// as its offset and advances it, visible or not; a tag is visible when its
// own right edge stays within budget. Each tag is checked independently.
func Tags(m text.Measurer, names []string, budget int) []Tag {
	tags := make([]Tag, 0, len(names))
	cursor := 0
	for _, name := range names {
		w := m.Measure(name, TagFontSize) + TagPadding
		tags = append(tags, Tag{
			Name:    name,
			Width:   w,
			Offset:  cursor,
			Visible: cursor+w <= budget,
		})
		cursor += w + TagGap
	}
	return tags
}

// VisibleTags filters out tags that overflow the budget.
func VisibleTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.Visible {
			out = append(out, t)
		}
	}
	return out
}
