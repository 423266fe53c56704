package normalize

import (
	"strings"

	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/integrations/huggingface"
	"github.com/matzehuels/statcards/pkg/stats"
)

const sourceHub = "huggingface"

var hubRules = []rule{
	{equals("not found"), errs.ErrCodeRepoNotFound},
	{contains("does not exist"), errs.ErrCodeRepoNotFound},
}

// Hub normalizes a Hub repository response. Downloads are kept for models
// and datasets only.
func Hub(kind stats.HubKind, owner, name string, resp huggingface.Response, err error) (stats.Hub, error) {
	if err != nil {
		return stats.Hub{}, transportError(sourceHub, err)
	}
	if resp.Failure != "" {
		return stats.Hub{}, upstreamError(sourceHub, resp.Failure, hubRules)
	}
	if resp.Repo == nil {
		return stats.Hub{}, errs.New(errs.ErrCodeRepoNotFound, "huggingface: %s %s/%s not found", kind, owner, name)
	}

	r := resp.Repo
	out := stats.Hub{
		Kind:  kind,
		ID:    r.ID,
		Owner: owner,
		Name:  name,
		Likes: r.Likes,
		Tags:  hubTags(kind, r),
	}
	if out.ID == "" {
		out.ID = owner + "/" + name
	}
	if kind.HasDownloads() {
		out.Downloads = r.Downloads
	}
	return out, nil
}

// hubTags derives the pin's tag row: the kind-specific tags, then the
// license unless it is "other". When both are missing the first generic
// Hub tag stands in.
func hubTags(kind stats.HubKind, r *huggingface.Repo) []string {
	var tags []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			tags = append(tags, s)
		}
	}

	switch kind {
	case stats.HubModel:
		if r.Config != nil {
			add(r.Config.ModelType)
		}
		if r.PipelineTag != "" {
			add(displayName(pipelineNames, r.PipelineTag))
		}
	case stats.HubDataset:
		if r.CardData != nil {
			add(r.CardData.TaskCategories.First())
		}
	case stats.HubSpace:
		if r.Runtime != nil && r.Runtime.Hardware.Current != "" {
			add("Running on " + displayName(hardwareNames, r.Runtime.Hardware.Current))
		}
	}

	if r.CardData != nil {
		if license := r.CardData.License.First(); license != "" && !strings.EqualFold(license, "other") {
			add(strings.ToUpper(license))
		}
	}

	if len(tags) == 0 {
		for _, t := range r.Tags {
			if strings.TrimSpace(t) != "" {
				add(t)
				break
			}
		}
	}
	return tags
}
