package order

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"tracker/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:          o.ID,
		Patrimony:   o.Patrimony,
		Description: o.Description,
		Status:      entities.OrderStatusType(o.Status),
		Solution:    o.Solution,
		CreatedAt:   toTimestamp(o.CreatedAt),
		ClosedAt:    toTimestamp(o.ClosedAt),
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	orderDB := &OrderModifyDB{
		ID:          orderModify.ID,
		Patrimony:   orderModify.Patrimony,
		Description: orderModify.Description,
		Solution:    orderModify.Solution,
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	return orderDB
}

// NULL остается nil: отсутствие метки времени решает потребитель.
func toTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
