package dto

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/entities"
)

const EventTypeOrderStatusChanged = "order.status.changed"

var ErrInvalidEvent = errors.New("invalid order status event")

// OrderStatusChangedEvent - сообщение топика order.status.changed, ключ - id заявки.
type OrderStatusChangedEvent struct {
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	PreviousStatus *string   `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func NewOrderStatusChangedEvent(e entities.OrderStatusChanged) OrderStatusChangedEvent {
	event := OrderStatusChangedEvent{
		OrderID:    e.OrderID,
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.PreviousStatus != nil {
		prev := e.PreviousStatus.String()
		event.PreviousStatus = &prev
	}
	return event
}

func (e OrderStatusChangedEvent) ToDomain() (entities.OrderStatusChanged, error) {
	if e.OrderID == "" {
		return entities.OrderStatusChanged{}, fmt.Errorf("%w: empty order_id", ErrInvalidEvent)
	}

	status := entities.OrderStatusType(e.Status)
	if !status.Valid() {
		return entities.OrderStatusChanged{}, fmt.Errorf("%w: status %q", ErrInvalidEvent, e.Status)
	}

	result := entities.OrderStatusChanged{
		OrderID:    e.OrderID,
		Status:     status,
		OccurredAt: e.OccurredAt,
	}

	if e.PreviousStatus != nil {
		prev := entities.OrderStatusType(*e.PreviousStatus)
		if !prev.Valid() {
			return entities.OrderStatusChanged{}, fmt.Errorf("%w: previous_status %q", ErrInvalidEvent, *e.PreviousStatus)
		}
		result.PreviousStatus = &prev
	}

	return result, nil
}
