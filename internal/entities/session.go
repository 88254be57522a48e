package entities

import "time"

type Session struct {
	Token     string
	CreatedAt time.Time
	RevokedAt *time.Time
}
