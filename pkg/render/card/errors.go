package card

import (
	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/render/theme"
)

const (
	errorWidth  = 340
	errorHeight = 100
)

// Lines is the two-line message of an error card.
type Lines struct {
	First  string
	Second string
}

var errorLines = map[errs.Code]Lines{
	errs.ErrCodeUserNotFound:         {"Failed to find a user.", "Check if it’s spelled correctly"},
	errs.ErrCodeRepoNotFound:         {"Failed to find a repo.", "Check if it’s spelled correctly"},
	errs.ErrCodeLanguagesUnavailable: {"Failed to find a user languages.", "Maybe the user is inactive"},
	errs.ErrCodeBadCredentials:       {"Bad credentials.", "Problems with service API token"},
	errs.ErrCodeRateLimited:          {"Failed to fetch.", "Maybe our API ratelimited :("},
	errs.ErrCodeUnknown:              {"Unknown API error.", "Let us know about it"},
}

// LinesFor returns the message for an ErrorClass. Codes outside the
// taxonomy get the UNKNOWN lines.
func LinesFor(code errs.Code) Lines {
	if l, ok := errorLines[code]; ok {
		return l
	}
	return errorLines[errs.ErrCodeUnknown]
}

type errorView struct {
	Lines
	Palette       theme.Palette
	Width, Height int
}

// Error renders the themed card for err's ErrorClass.
func Error(err error, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	return r.execute(templates, "error", errorView{
		Lines:   LinesFor(errs.ClassOf(err)),
		Palette: r.theme.Palette,
		Width:   errorWidth,
		Height:  errorHeight,
	})
}
