package entities

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Order - документ заявки в том виде, в каком его хранит бэкенд.
// Nil в CreatedAt означает нарушение контракта хранилища.
type Order struct {
	ID          string
	Patrimony   string
	Description string
	Status      OrderStatusType
	Solution    *string
	CreatedAt   *timestamppb.Timestamp
	ClosedAt    *timestamppb.Timestamp
}

type OrderStatusType string

const (
	OrderOpen   OrderStatusType = "open"
	OrderClosed OrderStatusType = "closed"
)

const DefaultOrderStatus = OrderOpen

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Valid() bool {
	return s == OrderOpen || s == OrderClosed
}

// ParseOrderStatus: пустая строка - статус по умолчанию.
func ParseOrderStatus(raw string) (OrderStatusType, bool) {
	if raw == "" {
		return DefaultOrderStatus, true
	}
	status := OrderStatusType(raw)
	return status, status.Valid()
}

// OrderStatuses - все статусы, на которые можно подписаться.
func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{OrderOpen, OrderClosed}
}

type OrderModify struct {
	ID          *string
	Patrimony   *string
	Description *string
	Status      *OrderStatusType
	Solution    *string
}

// OrderView - проекция заявки для экрана списка.
type OrderView struct {
	ID          string
	Patrimony   string
	Description string
	Status      OrderStatusType
	When        string
}
