package huggingface

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/statcards/pkg/httputil"
	"github.com/matzehuels/statcards/pkg/integrations"
	"github.com/matzehuels/statcards/pkg/stats"
)

func TestRepoPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/models/google/gemma":
			_, _ = w.Write([]byte(`{"id":"google/gemma","likes":1500,"downloads":20000,
				"pipeline_tag":"text-generation","config":{"model_type":"gemma"},
				"cardData":{"license":"apache-2.0"},"tags":["transformers"]}`))
		case "/spaces/team/demo":
			_, _ = w.Write([]byte(`{"id":"team/demo","likes":3,"runtime":{"stage":"RUNNING","hardware":{"current":"t4-small"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Repository not found"}`))
		}
	}))
	defer srv.Close()

	c := NewClient("", integrations.Options{RPS: 1000, Retry: httputil.NoRetry}).WithBaseURL(srv.URL)
	ctx := context.Background()

	resp, err := c.Repo(ctx, stats.HubModel, "google", "gemma")
	require.NoError(t, err)
	require.NotNil(t, resp.Repo)
	assert.Equal(t, "gemma", resp.Repo.Config.ModelType)
	assert.Equal(t, "apache-2.0", resp.Repo.CardData.License.First())

	resp, err = c.Repo(ctx, stats.HubSpace, "team", "demo")
	require.NoError(t, err)
	assert.Equal(t, "t4-small", resp.Repo.Runtime.Hardware.Current)

	resp, err = c.Repo(ctx, stats.HubDataset, "team", "missing")
	require.NoError(t, err)
	assert.Equal(t, "Repository not found", resp.Failure)

	_, err = c.Repo(ctx, stats.HubKind("collection"), "a", "b")
	assert.Error(t, err)
}

func TestStringList(t *testing.T) {
	resp, err := Decode([]byte(`{"id":"a/b","cardData":{"license":["mit","apache-2.0"],"task_categories":"translation"}}`))
	require.NoError(t, err)
	assert.Equal(t, StringList{"mit", "apache-2.0"}, resp.Repo.CardData.License)
	assert.Equal(t, "translation", resp.Repo.CardData.TaskCategories.First())

	resp, err = Decode([]byte(`{"id":"a/b","cardData":{"license":null}}`))
	require.NoError(t, err)
	assert.Empty(t, resp.Repo.CardData.License.First())
}

func TestDecodeRejectsUnknownShape(t *testing.T) {
	_, err := Decode([]byte(`{"likes":3}`))
	assert.ErrorIs(t, err, integrations.ErrDecode)
}
