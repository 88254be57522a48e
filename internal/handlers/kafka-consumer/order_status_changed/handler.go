package order_status_changed

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"tracker/internal/dto"
	"tracker/pkg/logger"
)

// Handler превращает события order.status.changed в инвалидации хаба.
// Сами заявки он не читает: снимки пересчитывает хаб.
type Handler struct {
	hub Invalidator
	log handlerLogger
}

func New(log handlerLogger, hub Invalidator) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", dto.EventTypeOrderStatusChanged),
	)

	return &Handler{
		hub: hub,
		log: handlerLog,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			h.messageProcessing(message)
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing не возвращает ошибок: битое сообщение пропускается,
// пропущенное изменение догонит периодический ресинк.
func (h *Handler) messageProcessing(message *sarama.ConsumerMessage) {
	var event dto.OrderStatusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		return
	}

	changed, err := event.ToDomain()
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Warn("order.status.changed handler received invalid event")
		return
	}

	for _, status := range changed.AffectedStatuses() {
		h.hub.Invalidate(status)
	}

	h.log.With(
		logger.NewField("order", changed.OrderID),
		logger.NewField("status", changed.Status),
		logger.NewField("offset", message.Offset),
	).Info("order.status.changed: processed")
}
