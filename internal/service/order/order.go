package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"tracker/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
	publisher  EventPublisher
	newID      func() string
	now        func() time.Time
}

func New(repository Repository, txManager TxManager, publisher EventPublisher) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// GetOrders - разовый запрос заявок с заданным статусом.
// Порядок не задается, его определяет хранилище.
func (s *Service) GetOrders(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get orders by status %q: %w", status, err)
	}
	return orders, nil
}

func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Patrimony == nil || orderModify.Description == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isNotBlank(*orderModify.Patrimony) {
		return nil, ErrInvalidPatrimony
	}
	if !isNotBlank(*orderModify.Description) {
		return nil, ErrInvalidDescription
	}

	create := entities.OrderModify{
		ID:          pointer.To(s.newID()),
		Patrimony:   pointer.To(strings.TrimSpace(*orderModify.Patrimony)),
		Description: pointer.To(strings.TrimSpace(*orderModify.Description)),
		Status:      pointer.To(entities.OrderOpen),
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repository.Create(ctx, create)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	err = s.publish(ctx, entities.OrderStatusChanged{
		OrderID: order.ID,
		Status:  order.Status,
	})
	return order, err
}

func (s *Service) CloseOrder(ctx context.Context, id string, solution string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}
	if !isNotBlank(solution) {
		return nil, ErrInvalidSolution
	}

	var (
		closed   *entities.Order
		previous entities.OrderStatusType
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.Status == entities.OrderClosed {
			return ErrOrderAlreadyClosed
		}
		previous = current.Status

		closed, err = s.repository.Close(ctx, id, strings.TrimSpace(solution))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("close order %s: %w", id, err)
	}

	err = s.publish(ctx, entities.OrderStatusChanged{
		OrderID:        closed.ID,
		Status:         closed.Status,
		PreviousStatus: pointer.To(previous),
	})
	return closed, err
}

func (s *Service) publish(ctx context.Context, event entities.OrderStatusChanged) error {
	event.OccurredAt = s.now().UTC()

	err := s.publisher.PublishStatusChanged(ctx, event)
	if err != nil {
		return errors.Join(ErrEventNotPublished, err)
	}
	return nil
}
