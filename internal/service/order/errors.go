package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidPatrimony      = errors.New("invalid patrimony")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidSolution       = errors.New("invalid solution")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyClosed = errors.New("order already closed")
	ErrConflict           = errors.New("resource already exists")

	// заявка сохранена, но событие об изменении не ушло
	ErrEventNotPublished = errors.New("order event not published")
)
