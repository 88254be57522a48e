//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import "context"

type AuthProvider interface {
	Revoke(ctx context.Context, token string) error
}
