package normalize

import (
	"cmp"
	"slices"

	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/integrations/wakatime"
	"github.com/matzehuels/statcards/pkg/languages"
	"github.com/matzehuels/statcards/pkg/stats"
)

const sourceWakaTime = "wakatime"

var wakaTimeRules = []rule{
	{equals("not found."), errs.ErrCodeUserNotFound},
	{equals("time range not matching user's public stats range."), errs.ErrCodeLanguagesUnavailable},
}

// WakaTimeLanguages keeps the six entries with the largest share and
// rescales them so the displayed entries total 100.
func WakaTimeLanguages(resp wakatime.Response, err error) ([]stats.Language, error) {
	if err != nil {
		return nil, transportError(sourceWakaTime, err)
	}
	switch {
	case resp.Failure != "":
		return nil, upstreamError(sourceWakaTime, resp.Failure, wakaTimeRules)
	case resp.NoData || resp.Stats == nil:
		return nil, errs.New(errs.ErrCodeLanguagesUnavailable, "wakatime: language stats hidden")
	}

	entries := slices.Clone(resp.Stats.Languages)
	slices.SortStableFunc(entries, func(a, b wakatime.Entry) int { return cmp.Compare(b.Percent, a.Percent) })
	entries = entries[:min(len(entries), stats.MaxLanguages)]

	sum := 0.0
	for _, e := range entries {
		sum += e.Percent
	}
	if sum <= 0 {
		return nil, errs.New(errs.ErrCodeLanguagesUnavailable, "wakatime: no languages")
	}

	out := make([]stats.Language, len(entries))
	for i, e := range entries {
		out[i] = stats.Language{
			Name:    e.Name,
			Color:   languages.Color(e.Name),
			Percent: e.Percent / sum * 100,
		}
	}
	return out, nil
}
