package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failures are
// logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnFetchStart(_ context.Context, source, subject string) {
	h.logger.Debug("fetch", "source", source, "subject", subject)
}

func (h *LogHooks) OnFetchComplete(_ context.Context, source, subject string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("fetch failed", "source", source, "subject", subject, "duration", d, "err", err)
		return
	}
	h.logger.Debug("fetched", "source", source, "subject", subject, "duration", d)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, card string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "card", card, "err", err)
		return
	}
	h.logger.Debug("rendered", "card", card, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "key", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("upstream request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("upstream response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("upstream error", "method", method, "host", host, "path", path, "err", err)
}
