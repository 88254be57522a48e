package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"tracker/internal/dto"
	"tracker/pkg/logger"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Handler struct {
	log       handlerLogger
	clock     Clock
	startedAt time.Time
}

// New запоминает момент старта: uptime в ответе считается от него.
func New(log handlerLogger) *Handler {
	return NewWithClock(log, systemClock{})
}

func NewWithClock(log handlerLogger, clock Clock) *Handler {
	return &Handler{
		log:       log.With(logger.NewField("handler", "ping_get")),
		clock:     clock,
		startedAt: clock.Now(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message:       "pong",
		UptimeSeconds: int64(h.clock.Now().Sub(h.startedAt) / time.Second),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
