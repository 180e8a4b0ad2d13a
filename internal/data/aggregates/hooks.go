package aggregates

import (
	"strings"
	"time"

	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

// Hooks captures aggregate-level observability events.
type Hooks interface {
	ObserveOperation(name, status string, dur time.Duration)
	IncConflict(name string)
	IncLimitExceeded(name string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}
func (noopHooks) IncLimitExceeded(string)                        {}

type logHooks struct {
	log *logger.Logger
}

// NewLogHooks reports aggregate operations through the structured logger.
func NewLogHooks(log *logger.Logger) Hooks {
	if log == nil {
		return noopHooks{}
	}
	return &logHooks{log: log.With("component", "AggregateHooks")}
}

func (h *logHooks) ObserveOperation(name, status string, dur time.Duration) {
	name = strings.TrimSpace(name)
	if status == "success" {
		h.log.Debug("aggregate operation", "op", name, "status", status, "duration_ms", dur.Milliseconds())
		return
	}
	h.log.Warn("aggregate operation failed", "op", name, "status", status, "duration_ms", dur.Milliseconds())
}

func (h *logHooks) IncConflict(name string) {
	h.log.Info("aggregate conflict", "op", strings.TrimSpace(name))
}

func (h *logHooks) IncLimitExceeded(name string) {
	h.log.Info("aggregate limit reached", "op", strings.TrimSpace(name))
}
