// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/service"
	"github.com/onsocial/trustd/internal/storage"
)

var log = logrus.WithField("layer", "service")

// Defaults for the rolling rate-limit window. Both are abuse-resistance
// knobs, not correctness constants.
const (
	DefaultRateLimitWindow     = 144
	DefaultRateLimitMaxActions = 50
)

// Config carries deployment-fixed parameters of the core.
type Config struct {
	// Admin is the principal allowed to invoke administrator-gated
	// operations. Checked by equality.
	Admin string
	// RateLimitWindow is the rolling window length in blocks.
	RateLimitWindow uint64
	// RateLimitMaxActions caps mutating graph actions per window.
	RateLimitMaxActions uint32
}

type srv struct {
	s   storage.Storage
	cfg Config
}

// New creates new instance of service.
func New(s storage.Storage, cfg Config) service.Service {
	if cfg.RateLimitWindow == 0 {
		cfg.RateLimitWindow = DefaultRateLimitWindow
	}
	if cfg.RateLimitMaxActions == 0 {
		cfg.RateLimitMaxActions = DefaultRateLimitMaxActions
	}

	return srv{
		s:   s,
		cfg: cfg,
	}
}

func (s srv) GetHeight(ctx context.Context) (uint64, error) {
	h, err := s.s.GetHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get height: %w", err)
	}

	return h, nil
}

func (s srv) Admin() string {
	return s.cfg.Admin
}

func (s srv) adminOnly(caller string) error {
	if caller != s.cfg.Admin {
		return service.ErrUnauthorized
	}

	return nil
}

// requireProfile maps a missing profile to ErrUserNotRegistered.
func requireProfile(ctx context.Context, s storage.Storage, address string) (*entities.Profile, error) {
	p, err := s.GetProfile(ctx, address)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", service.ErrUserNotRegistered, address)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// consumeRateBudget enforces the rolling window and reserves one action.
// The reservation is persisted by the surrounding transaction, so a call
// that fails later leaves the counter untouched.
func (s srv) consumeRateBudget(ctx context.Context, tx storage.Storage, caller string, height uint64) error {
	c, err := tx.GetRateCounter(ctx, caller)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c = &entities.RateCounter{WindowStart: height}
	case err != nil:
		return fmt.Errorf("failed to get rate counter: %w", err)
	case height >= c.WindowStart+s.cfg.RateLimitWindow:
		c = &entities.RateCounter{WindowStart: height}
	}

	if c.Count >= s.cfg.RateLimitMaxActions {
		return service.ErrRateLimited
	}

	c.Count++

	if err := tx.SetRateCounter(ctx, caller, c); err != nil {
		return fmt.Errorf("failed to set rate counter: %w", err)
	}

	return nil
}
