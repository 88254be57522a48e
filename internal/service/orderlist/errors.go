package orderlist

import "errors"

var (
	// документ из хранилища не соответствует ожидаемой форме
	ErrContractViolation = errors.New("order document contract violation")
	ErrBinderClosed      = errors.New("order list binder is closed")
	ErrNoFilter          = errors.New("no status filter selected")
)

func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContractViolation)
}
