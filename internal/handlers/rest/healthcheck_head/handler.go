package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	pingTimeout = time.Second

	HeaderReason         = "X-Health-Reason"
	ReasonShuttingDown   = "shutting_down"
	ReasonStoreUnhealthy = "store_unavailable"
)

// Pinger - хранилище, без которого экраны не работают.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	isShuttingDown *atomic.Bool
	store          Pinger
	timeout        time.Duration
}

func New(isShuttingDown *atomic.Bool, store Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		store:          store,
		timeout:        pingTimeout,
	}
}

// WithTimeout ограничивает ожидание Ping.
func (h *Handler) WithTimeout(timeout time.Duration) *Handler {
	h.timeout = timeout
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	// балансировщик должен увести трафик до закрытия сервера
	if h.isShuttingDown.Load() {
		w.Header().Set(HeaderReason, ReasonShuttingDown)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		w.Header().Set(HeaderReason, ReasonStoreUnhealthy)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
