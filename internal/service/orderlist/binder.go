package orderlist

import (
	"context"
	"fmt"
	"sync"

	"tracker/internal/entities"
	"tracker/internal/service/livequery"
	"tracker/pkg/logger"
)

// Binder связывает экран списка с подпиской на заявки одного статуса.
//
// Каждый SetFilter открывает новое поколение подписки. Колбэки старых
// поколений отбрасываются, так что после переключения фильтра на экран
// не просачиваются снимки чужого статуса.
type Binder struct {
	subscriber Subscriber
	formatter  DateFormatter
	log        binderLogger
	onChange   func(State)

	mu          sync.Mutex
	state       State
	generation  uint64
	unsubscribe livequery.Unsubscribe
	closed      bool
}

// NewBinder. onChange вызывается после каждого изменения состояния под
// внутренней блокировкой: он не должен обращаться к Binder и блокироваться.
func NewBinder(subscriber Subscriber, formatter DateFormatter, log binderLogger, onChange func(State)) *Binder {
	if onChange == nil {
		onChange = func(State) {}
	}
	return &Binder{
		subscriber: subscriber,
		formatter:  formatter,
		log:        log,
		onChange:   onChange,
	}
}

// SetFilter переключает экран на статус: loading, освобождение старой
// подписки, открытие новой. Ошибка подписки также отражается в State.
func (b *Binder) SetFilter(ctx context.Context, status entities.OrderStatusType) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBinderClosed
	}
	b.generation++
	gen := b.generation
	previous := b.unsubscribe
	b.unsubscribe = nil
	b.setState(State{Status: status, Loading: true})
	b.mu.Unlock()

	// вне блокировки: старая горутина может ждать mu в колбэке
	if previous != nil {
		previous()
	}

	unsubscribe, err := b.subscriber.Subscribe(ctx, status, &generationSink{binder: b, generation: gen})

	b.mu.Lock()
	if err != nil {
		if gen == b.generation && !b.closed {
			b.fail(status, err)
		}
		b.mu.Unlock()
		return fmt.Errorf("subscribe to %s orders: %w", status, err)
	}

	if gen != b.generation || b.closed {
		// пока подписывались, фильтр сменили или экран закрыли
		b.mu.Unlock()
		unsubscribe()
		return nil
	}
	b.unsubscribe = unsubscribe
	b.mu.Unlock()
	return nil
}

// Retry переоткрывает подписку для текущего фильтра.
func (b *Binder) Retry(ctx context.Context) error {
	b.mu.Lock()
	status := b.state.Status
	b.mu.Unlock()

	if status == "" {
		return ErrNoFilter
	}
	return b.SetFilter(ctx, status)
}

func (b *Binder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.clone()
}

// Close освобождает подписку. Повторный вызов ничего не делает.
func (b *Binder) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.generation++
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (b *Binder) applySnapshot(gen uint64, docs []entities.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.current(gen) {
		return
	}

	views, err := ProjectAll(docs, b.formatter)
	if err != nil {
		snapshotsRejected.Inc()
		b.log.Error("order snapshot rejected",
			logger.NewField("status", b.state.Status),
			logger.NewField("documents", len(docs)),
			logger.NewField("error", err),
		)
		b.setState(State{Status: b.state.Status, Err: err, Retryable: false})
		return
	}

	b.setState(State{Status: b.state.Status, Orders: views})
}

func (b *Binder) applyError(gen uint64, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.current(gen) {
		return
	}
	b.fail(b.state.Status, err)
}

// fail: loading снимается, список прошлого снимка остается на экране.
func (b *Binder) fail(status entities.OrderStatusType, err error) {
	subscriptionErrors.Inc()
	b.log.Warn("order subscription failed",
		logger.NewField("status", status),
		logger.NewField("error", err),
	)
	b.setState(State{
		Status:    status,
		Orders:    b.state.Orders,
		Err:       err,
		Retryable: true,
	})
}

func (b *Binder) current(gen uint64) bool {
	if b.closed || gen != b.generation {
		staleCallbacks.Inc()
		return false
	}
	return true
}

func (b *Binder) setState(s State) {
	b.state = s
	b.onChange(s.clone())
}

type generationSink struct {
	binder     *Binder
	generation uint64
}

func (s *generationSink) OnSnapshot(orders []entities.Order) {
	s.binder.applySnapshot(s.generation, orders)
}

func (s *generationSink) OnError(err error) {
	s.binder.applyError(s.generation, err)
}
