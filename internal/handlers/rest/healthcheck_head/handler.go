package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"parcel-service/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	pinger         Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, pinger Pinger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "healthcheck_head"))

	return &Handler{
		log:            handlerLog,
		isShuttingDown: isShuttingDown,
		pinger:         pinger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	err := h.pinger.Ping(ctx)
	if err != nil {
		h.log.Warn("database ping failed", logger.NewField("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
