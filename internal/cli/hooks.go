package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports routing and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBatchStart(_ context.Context, size int) {
	h.logger.Debug("batch started", "connectors", size)
}

func (h *logHooks) OnRouteComplete(_ context.Context, points int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("route failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("route complete", "points", points, "duration", d)
}

func (h *logHooks) OnBatchComplete(_ context.Context, size, failed int, d time.Duration) {
	h.logger.Debug("batch complete", "connectors", size, "failed", failed, "duration", d)
}

func (h *logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request started", "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("request finished", "method", method, "path", path, "status", status, "duration", d)
}
