package order

import "time"

type OrderDB struct {
	ID          string
	Patrimony   string
	Description string
	Status      string
	Solution    *string
	CreatedAt   *time.Time
	ClosedAt    *time.Time
}

type OrderModifyDB struct {
	ID          *string
	Patrimony   *string
	Description *string
	Status      *string
	Solution    *string
}
