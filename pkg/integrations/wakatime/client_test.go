package wakatime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/statcards/pkg/httputil"
	"github.com/matzehuels/statcards/pkg/integrations"
)

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/someone/stats/all_time", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"username":"someone","range":"all_time",
			"languages":[{"name":"Go","percent":70.5},{"name":"YAML","percent":29.5}]}}`))
	}))
	defer srv.Close()

	c := NewClient(integrations.Options{RPS: 1000, Retry: httputil.NoRetry}).WithBaseURL(srv.URL)
	resp, err := c.Stats(context.Background(), "someone")
	require.NoError(t, err)
	require.NotNil(t, resp.Stats)
	require.Len(t, resp.Stats.Languages, 2)
	assert.Equal(t, "Go", resp.Stats.Languages[0].Name)
	assert.InDelta(t, 70.5, resp.Stats.Languages[0].Percent, 1e-9)
}

func TestDecodeShapes(t *testing.T) {
	resp, err := Decode([]byte(`{"error":"Not found."}`))
	require.NoError(t, err)
	assert.Equal(t, "Not found.", resp.Failure)

	resp, err = Decode([]byte(`{"errors":["Unauthorized."]}`))
	require.NoError(t, err)
	assert.Equal(t, "Unauthorized.", resp.Failure)

	resp, err = Decode([]byte(`{"data":{"is_language_usage_visible":false,"status":"ok"}}`))
	require.NoError(t, err)
	assert.True(t, resp.NoData)
	assert.Nil(t, resp.Stats)

	resp, err = Decode([]byte(`{"data":{"languages":[]}}`))
	require.NoError(t, err)
	require.NotNil(t, resp.Stats)
	assert.Empty(t, resp.Stats.Languages)

	_, err = Decode([]byte(`{}`))
	assert.ErrorIs(t, err, integrations.ErrDecode)
}
