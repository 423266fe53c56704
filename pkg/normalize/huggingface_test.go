package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/integrations/huggingface"
	"github.com/matzehuels/statcards/pkg/stats"
)

func decodeHub(t *testing.T, raw string) huggingface.Response {
	t.Helper()
	resp, err := huggingface.Decode([]byte(raw))
	require.NoError(t, err)
	return resp
}

func TestHubModel(t *testing.T) {
	resp := decodeHub(t, `{"id":"meta/llama","likes":1500,"downloads":42,
		"pipeline_tag":"text-generation","config":{"model_type":"llama"},
		"cardData":{"license":"apache-2.0"},"tags":["transformers"]}`)

	hub, err := Hub(stats.HubModel, "meta", "llama", resp, nil)
	require.NoError(t, err)
	assert.Equal(t, "meta/llama", hub.ID)
	assert.Equal(t, 42, hub.Downloads)
	assert.Equal(t, []string{"llama", "Text Generation", "APACHE-2.0"}, hub.Tags)
}

func TestHubDataset(t *testing.T) {
	resp := decodeHub(t, `{"id":"org/set","downloads":9,
		"cardData":{"license":"other","task_categories":["translation","summarization"]}}`)

	hub, err := Hub(stats.HubDataset, "org", "set", resp, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"translation"}, hub.Tags)
	assert.Equal(t, 9, hub.Downloads)
}

func TestHubSpaceHasNoDownloads(t *testing.T) {
	resp := decodeHub(t, `{"id":"org/demo","likes":5,"downloads":100,
		"runtime":{"stage":"RUNNING","hardware":{"current":"zero-a10g"}}}`)

	hub, err := Hub(stats.HubSpace, "org", "demo", resp, nil)
	require.NoError(t, err)
	assert.Zero(t, hub.Downloads)
	assert.Equal(t, []string{"Running on Zero"}, hub.Tags)
}

func TestHubFallsBackToGenericTag(t *testing.T) {
	resp := decodeHub(t, `{"id":"a/b","tags":["","pytorch","region:us"]}`)
	hub, err := Hub(stats.HubModel, "a", "b", resp, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pytorch"}, hub.Tags)
}

func TestHubUnknownPipelineTagKeepsRawValue(t *testing.T) {
	resp := decodeHub(t, `{"id":"a/b","pipeline_tag":"brand-new-task"}`)
	hub, err := Hub(stats.HubModel, "a", "b", resp, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"brand-new-task"}, hub.Tags)
}

func TestHubFailures(t *testing.T) {
	_, err := Hub(stats.HubModel, "a", "b", huggingface.Response{Failure: "Repository not found"}, nil)
	assert.True(t, errs.Is(err, errs.ErrCodeRepoNotFound))

	_, err = Hub(stats.HubModel, "a", "b", huggingface.Response{Failure: "Invalid username or password."}, nil)
	assert.True(t, errs.Is(err, errs.ErrCodeBadCredentials))

	_, err = Hub(stats.HubModel, "a", "b", huggingface.Response{}, nil)
	assert.True(t, errs.Is(err, errs.ErrCodeRepoNotFound))
}
