package orderlist

import (
	"slices"

	"tracker/internal/entities"
)

// State - то, что экран списка показывает в данный момент.
type State struct {
	Status  entities.OrderStatusType
	Orders  []entities.OrderView
	Loading bool
	Err     error
	// true - ошибка временная, можно предложить "Tentar novamente"
	Retryable bool
}

func (s State) Empty() bool {
	return !s.Loading && s.Err == nil && len(s.Orders) == 0
}

func (s State) ContractViolation() bool {
	return s.Err != nil && IsContractViolation(s.Err)
}

func (s State) clone() State {
	s.Orders = slices.Clone(s.Orders)
	return s
}
