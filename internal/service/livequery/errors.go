package livequery

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid subscription status")
	ErrNilSink       = errors.New("subscription sink is nil")
	ErrHubClosed     = errors.New("live query hub is closed")
)
