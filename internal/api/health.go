package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	source port_persistence.Store
	dest   port_persistence.Store
	log    *zap.Logger
}

func NewHealthHandler(source, dest port_persistence.Store, log *zap.Logger) *HealthHandler {
	return &HealthHandler{source: source, dest: dest, log: log}
}

// Check reports liveness of both stores. Degraded if either store is down:
// transfers need both sides, so one unhealthy store means no transfers.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	stores := map[string]string{
		"source": "up",
		"dest":   "up",
	}
	healthy := true

	if err := h.source.Ping(ctx); err != nil {
		h.log.Warn("source store unhealthy", zap.Error(err))
		stores["source"] = "down"
		healthy = false
	}
	if err := h.dest.Ping(ctx); err != nil {
		h.log.Warn("dest store unhealthy", zap.Error(err))
		stores["dest"] = "down"
		healthy = false
	}

	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}

	writeJSON(w, status, map[string]any{"status": state, "stores": stores})
}
