package observability

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnFetchStart(ctx, "github", "octocat")
	p.OnFetchComplete(ctx, "github", "octocat", time.Second, nil)
	p.OnRenderComplete(ctx, "activity", 2048, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "github:langs")
	c.OnCacheMiss(ctx, "github:repo")
	c.OnCacheSet(ctx, "wakatime:langs", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "api.github.com", "/graphql")
	h.OnResponse(ctx, "POST", "api.github.com", "/graphql", 200, time.Second)
	h.OnError(ctx, "POST", "api.github.com", "/graphql", nil)
}

type countingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (c *countingCacheHooks) OnCacheHit(context.Context, string) { c.hits++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, ok := Pipeline().(NoopPipelineHooks)
	assert.True(t, ok)
	_, ok = Cache().(NoopCacheHooks)
	assert.True(t, ok)
	_, ok = HTTP().(NoopHTTPHooks)
	assert.True(t, ok)

	custom := &countingCacheHooks{}
	SetCacheHooks(custom)
	Cache().OnCacheHit(context.Background(), "github:langs")
	assert.Equal(t, 1, custom.hits)

	SetCacheHooks(nil)
	assert.Same(t, custom, Cache(), "nil must not replace registered hooks")

	Reset()
	_, ok = Cache().(NoopCacheHooks)
	assert.True(t, ok)
}

func TestLogHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	SetAll(NewLogHooks(logger))

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "github:activity")
	Pipeline().OnFetchComplete(ctx, "wakatime", "someone", time.Millisecond, errors.New("boom"))
	HTTP().OnResponse(ctx, "GET", "huggingface.co", "/api/models/a/b", 404, time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "cache miss")
	assert.Contains(t, out, "github:activity")
	assert.Contains(t, out, "fetch failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "upstream response")
}
