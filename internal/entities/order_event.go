package entities

import "time"

type OrderStatusChanged struct {
	OrderID        string
	Status         OrderStatusType
	PreviousStatus *OrderStatusType
	OccurredAt     time.Time
}

// AffectedStatuses возвращает статусы, чьи выборки поменялись.
func (e OrderStatusChanged) AffectedStatuses() []OrderStatusType {
	affected := []OrderStatusType{e.Status}
	if e.PreviousStatus != nil && *e.PreviousStatus != e.Status {
		affected = append(affected, *e.PreviousStatus)
	}
	return affected
}
