package livequery_resync

import (
	"context"
	"time"

	"tracker/pkg/logger"
)

type Hub interface {
	InvalidateAll()
}

// LiveQueryResync периодически пересчитывает все живые снимки:
// так догоняются уведомления, потерянные между переподключениями.
type LiveQueryResync struct {
	log      logger.Logger
	hub      Hub
	interval time.Duration
}

func NewLiveQueryResync(log logger.Logger, hub Hub, interval time.Duration) *LiveQueryResync {
	return &LiveQueryResync{
		log:      log,
		hub:      hub,
		interval: interval,
	}
}

func (l *LiveQueryResync) TTL() time.Duration {
	return l.interval
}

func (l *LiveQueryResync) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.hub.InvalidateAll()
	l.log.Debug("live query resync")
	return nil
}

func (l *LiveQueryResync) Info() string {
	return "live query resync"
}

// SkipWarmup: при старте подписок еще нет, пересчитывать нечего.
func (l *LiveQueryResync) SkipWarmup() bool {
	return true
}
