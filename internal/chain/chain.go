// Package chain maintains the logical block clock. Every state change in the
// system is stamped with the persisted height, wall-clock time is never used.
package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/onsocial/trustd/internal/metrics"
	"github.com/onsocial/trustd/internal/storage"
)

var log = logrus.WithField("package", "chain")

// DefaultBlockInterval matches a typical block production rate.
const DefaultBlockInterval = 5 * time.Second

// Ticker advances the persisted block height at a fixed interval.
type Ticker struct {
	s        storage.Storage
	interval time.Duration
}

// NewTicker creates new instance of Ticker.
func NewTicker(s storage.Storage, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultBlockInterval
	}

	return &Ticker{
		s:        s,
		interval: interval,
	}
}

// Run advances the height until the context is done.
func (t *Ticker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := t.advance(ctx); err != nil {
				log.WithError(err).Error("failed to advance height")
			}
		}
	}
}

func (t *Ticker) advance(ctx context.Context) error {
	return t.s.InTx(ctx, func(s storage.Storage) error {
		h, err := s.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		h++

		if err := s.SetHeight(ctx, h); err != nil {
			return fmt.Errorf("failed to set height: %w", err)
		}

		metrics.BlockHeight.Set(float64(h))

		return nil
	})
}
