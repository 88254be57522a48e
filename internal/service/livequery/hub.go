package livequery

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"tracker/internal/entities"
	"tracker/pkg/logger"
)

// Unsubscribe освобождает подписку и ждет, пока ее горутина завершится.
// После возврата снимков больше не будет. Повторный вызов безопасен.
type Unsubscribe func()

// Hub держит постоянные запросы "все заявки со статусом S" и перезапускает
// их, когда источник изменений сообщает, что выборка S могла поменяться.
type Hub struct {
	querier      OrderQuerier
	log          hubLogger
	queryTimeout time.Duration

	mu     sync.Mutex
	subs   map[entities.OrderStatusType]map[string]*subscription
	closed bool
}

type subscription struct {
	id     string
	status entities.OrderStatusType
	sink   Sink
	// емкость 1: пока снимок не пересчитан, повторные сигналы схлопываются
	dirty  chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewHub(querier OrderQuerier, log hubLogger, queryTimeout time.Duration) *Hub {
	return &Hub{
		querier:      querier,
		log:          log,
		queryTimeout: queryTimeout,
		subs:         make(map[entities.OrderStatusType]map[string]*subscription),
	}
}

// Subscribe открывает подписку и сразу запрашивает первый снимок.
// Подписка живет, пока не вызван Unsubscribe или не отменен ctx.
func (h *Hub) Subscribe(ctx context.Context, status entities.OrderStatusType, sink Sink) (Unsubscribe, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		id:     uuid.NewString(),
		status: status,
		sink:   sink,
		dirty:  make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		cancel()
		return nil, ErrHubClosed
	}
	if h.subs[status] == nil {
		h.subs[status] = make(map[string]*subscription)
	}
	h.subs[status][sub.id] = sub
	h.mu.Unlock()

	activeSubscriptions.WithLabelValues(status.String()).Inc()
	h.log.Debug("subscription opened",
		logger.NewField("subscription", sub.id),
		logger.NewField("status", status),
	)

	go h.run(subCtx, sub)

	return func() { h.release(sub) }, nil
}

// Invalidate просит пересчитать снимки всех подписок на status.
func (h *Hub) Invalidate(status entities.OrderStatusType) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[status] {
		sub.markDirty()
	}
}

// InvalidateAll используется после потери уведомлений и периодическим ресинком.
func (h *Hub) InvalidateAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, byID := range h.subs {
		for _, sub := range byID {
			sub.markDirty()
		}
	}
}

// Active возвращает число открытых подписок на status.
func (h *Hub) Active(status entities.OrderStatusType) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[status])
}

// Close закрывает все подписки и запрещает новые.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	all := make([]*subscription, 0)
	for _, byID := range h.subs {
		for _, sub := range byID {
			all = append(all, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range all {
		h.release(sub)
	}
}

func (h *Hub) run(ctx context.Context, sub *subscription) {
	defer close(sub.done)
	defer h.remove(sub)

	for {
		h.deliver(ctx, sub)

		select {
		case <-ctx.Done():
			return
		case <-sub.dirty:
		}
	}
}

func (h *Hub) deliver(ctx context.Context, sub *subscription) {
	status := sub.status.String()

	queryCtx, cancel := ctx, context.CancelFunc(func() {})
	if h.queryTimeout > 0 {
		queryCtx, cancel = context.WithTimeout(ctx, h.queryTimeout)
	}
	start := time.Now()
	orders, err := h.querier.GetOrders(queryCtx, sub.status)
	cancel()
	snapshotDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	// подписку уже освободили, результат никому не нужен
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		snapshotErrorsTotal.WithLabelValues(status).Inc()
		h.log.Warn("snapshot query failed",
			logger.NewField("subscription", sub.id),
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
		sub.sink.OnError(err)
		return
	}

	snapshotsTotal.WithLabelValues(status).Inc()
	sub.sink.OnSnapshot(orders)
}

func (h *Hub) release(sub *subscription) {
	sub.once.Do(func() {
		sub.cancel()
		<-sub.done
		h.log.Debug("subscription released",
			logger.NewField("subscription", sub.id),
			logger.NewField("status", sub.status),
		)
	})
}

func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	byID := h.subs[sub.status]
	if _, ok := byID[sub.id]; !ok {
		return
	}
	delete(byID, sub.id)
	if len(byID) == 0 {
		delete(h.subs, sub.status)
	}
	activeSubscriptions.WithLabelValues(sub.status.String()).Dec()
}

func (s *subscription) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}
