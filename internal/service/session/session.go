package session

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	auth AuthProvider
}

func New(auth AuthProvider) *Service {
	return &Service{
		auth: auth,
	}
}

// SignOut отзывает сессию. Повторов нет: решение о повторе за пользователем.
func (s *Service) SignOut(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}

	if err := s.auth.Revoke(ctx, token); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
