package order

import (
	"strings"

	"github.com/google/uuid"
)

func isNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func isValidOrderID(id string) bool {
	return uuid.Validate(id) == nil
}
