package orders_stream_get

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"tracker/internal/entities"
	"tracker/internal/pkg/datefmt"
	"tracker/internal/presenter"
	"tracker/internal/service/orderlist"
	"tracker/pkg/logger"
)

const (
	eventState        = "state"
	defaultHeartbeat  = 15 * time.Second
	clientRetryMillis = 3000
)

// Handler держит живой экран списка поверх SSE: каждое изменение состояния
// binder уходит клиенту событием "state". Поток живет, пока жив запрос.
type Handler struct {
	log        handlerLogger
	subscriber Subscriber
	presenter  *presenter.Presenter
	location   *time.Location
	heartbeat  time.Duration
	stop       <-chan struct{}
}

type Option func(*Handler)

func WithHeartbeat(d time.Duration) Option {
	return func(h *Handler) {
		h.heartbeat = d
	}
}

// WithStop завершает все открытые потоки при закрытии stop.
// Без него server.Shutdown ждал бы, пока клиенты отключатся сами.
func WithStop(stop <-chan struct{}) Option {
	return func(h *Handler) {
		h.stop = stop
	}
}

func New(log handlerLogger, subscriber Subscriber, presenter *presenter.Presenter, location *time.Location, opts ...Option) *Handler {
	handlerLog := log.With()

	h := &Handler{
		log:        handlerLog,
		subscriber: subscriber,
		presenter:  presenter,
		location:   location,
		heartbeat:  defaultHeartbeat,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, ok := entities.ParseOrderStatus(r.URL.Query().Get("status"))
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rc := http.NewResponseController(w)
	// у сервера есть WriteTimeout, для потока он не нужен
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.log.With(logger.NewField("error", err)).Warn("disable write deadline")
	}

	ctx := r.Context()
	tag := h.presenter.Locale(r.Header.Get("Accept-Language"))
	streamLog := h.log.With(
		logger.NewField("status", status),
		logger.NewField("locale", tag.String()),
	)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(w, "retry: %d\n\n", clientRetryMillis); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		streamLog.With(logger.NewField("error", err)).Error("stream flush not supported")
		return
	}

	updates := newLatestState()
	binder := orderlist.NewBinder(h.subscriber, datefmt.New(tag, h.location), streamLog, updates.put)
	defer binder.Close()

	// ошибка подписки уже лежит в состоянии и уйдет клиенту событием
	if err := binder.SetFilter(ctx, status); err != nil {
		streamLog.With(logger.NewField("error", err)).Warn("order stream subscribe")
	}

	streamLog.Debug("order stream opened")
	defer streamLog.Debug("order stream closed")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-h.stop:
			return

		case <-updates.ready:
			screen := h.presenter.OrderList(tag, updates.take())
			payload, err := json.Marshal(screen)
			if err != nil {
				streamLog.With(logger.NewField("error", err)).Error("encode JSON event")
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventState, payload); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

// latestState хранит только последнее состояние: медленный клиент
// пропускает промежуточные, но всегда получает актуальное.
type latestState struct {
	mu    sync.Mutex
	state orderlist.State
	ready chan struct{}
}

func newLatestState() *latestState {
	return &latestState{ready: make(chan struct{}, 1)}
}

func (l *latestState) put(s orderlist.State) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()

	select {
	case l.ready <- struct{}{}:
	default:
	}
}

func (l *latestState) take() orderlist.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
