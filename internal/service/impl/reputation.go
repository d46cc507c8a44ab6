package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/service"
	"github.com/onsocial/trustd/internal/storage"
)

// Ledger constants. Scores never go below zero, negative deltas clamp.
const (
	initialScore           = 50
	profileCompletionBonus = 50
	followPoints           = 10
	unfollowPenalty        = -2
	blockPenalty           = -5

	historyLimit = 50
)

const (
	reasonInitial           = "initial bonus"
	reasonProfileCompletion = "profile completion bonus"
	reasonFollowed          = "gained follower"
	reasonUnfollowed        = "lost follower"
	reasonBlockedByFollower = "blocked by follower"
	reasonManual            = "manual adjustment"
	reasonReset             = "reset"
)

func (s srv) InitializeReputation(ctx context.Context, user string) (*service.ReputationSummary, error) {
	var out *service.ReputationSummary

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := requireProfile(ctx, tx, user); err != nil {
			return err
		}

		if _, err := tx.GetReputation(ctx, user); err == nil {
			return service.ErrDuplicateInitialization
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to get reputation: %w", err)
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		// The initial score is the profile completion bonus, granted up
		// front. Awarding it again later must report false.
		r := &entities.Reputation{
			Address:      user,
			Score:        initialScore,
			BonusAwarded: true,
			CreatedAt:    h,
			UpdatedAt:    h,
		}

		if err := tx.CreateReputation(ctx, r); err != nil {
			return fmt.Errorf("failed to create reputation: %w", err)
		}

		if err := tx.AddReputationHistory(ctx, &entities.ReputationHistoryEntry{
			Address: user,
			Delta:   initialScore,
			Reason:  reasonInitial,
			Height:  h,
		}); err != nil {
			return fmt.Errorf("failed to add reputation history: %w", err)
		}

		out = summaryOf(r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) AwardProfileCompletionBonus(ctx context.Context, user string) (bool, error) {
	var awarded bool

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := requireProfile(ctx, tx, user); err != nil {
			return err
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		r, err := tx.GetReputation(ctx, user)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: %s", service.ErrReputationNotInitialized, user)
			}
			return fmt.Errorf("failed to get reputation: %w", err)
		}

		if r.BonusAwarded {
			return nil
		}

		r.BonusAwarded = true
		if err := s.applyDelta(ctx, tx, r, profileCompletionBonus, reasonProfileCompletion, h); err != nil {
			return err
		}

		awarded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return awarded, nil
}

func (s srv) AddPointsManual(ctx context.Context, caller, user string, delta int64, reason string) (*service.ReputationSummary, error) {
	if err := s.adminOnly(caller); err != nil {
		return nil, err
	}

	if delta == 0 {
		return nil, service.ErrInvalidPoints
	}

	if reason == "" {
		reason = reasonManual
	}

	var out *service.ReputationSummary

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := requireProfile(ctx, tx, user); err != nil {
			return err
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		r, err := s.getOrCreateReputation(ctx, tx, user, h)
		if err != nil {
			return err
		}

		if err := s.applyDelta(ctx, tx, r, delta, reason, h); err != nil {
			return err
		}

		out = summaryOf(r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) ResetReputation(ctx context.Context, caller, user string) (*service.ReputationSummary, error) {
	if err := s.adminOnly(caller); err != nil {
		return nil, err
	}

	var out *service.ReputationSummary

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := requireProfile(ctx, tx, user); err != nil {
			return err
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		r, err := tx.GetReputation(ctx, user)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("failed to get reputation: %w", err)
			}
			r = &entities.Reputation{Address: user, CreatedAt: h}
			r.Score = initialScore
			r.BonusAwarded = true
			r.UpdatedAt = h
			if err := tx.CreateReputation(ctx, r); err != nil {
				return fmt.Errorf("failed to create reputation: %w", err)
			}
		} else {
			// The baseline score includes the completion bonus.
			r.Score = initialScore
			r.BonusAwarded = true
			r.UpdatedAt = h
			if err := tx.UpdateReputation(ctx, r); err != nil {
				return fmt.Errorf("failed to update reputation: %w", err)
			}
		}

		if err := tx.AddReputationHistory(ctx, &entities.ReputationHistoryEntry{
			Address: user,
			Delta:   initialScore,
			Reason:  reasonReset,
			Height:  h,
		}); err != nil {
			return fmt.Errorf("failed to add reputation history: %w", err)
		}

		out = summaryOf(r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) ReprocessFollowEvent(ctx context.Context, caller, follower, followee string) error {
	return s.reprocess(ctx, caller, followee, followPoints, reasonFollowed)
}

func (s srv) ReprocessUnfollowEvent(ctx context.Context, caller, follower, followee string) error {
	return s.reprocess(ctx, caller, followee, unfollowPenalty, reasonUnfollowed)
}

func (s srv) ReprocessBlockEvent(ctx context.Context, caller, blocker, blocked string) error {
	return s.reprocess(ctx, caller, blocked, blockPenalty, reasonBlockedByFollower)
}

// reprocess replays a graph event's ledger effect out of band. Used to
// repair a ledger that drifted from the graph.
func (s srv) reprocess(ctx context.Context, caller, user string, delta int64, reason string) error {
	if err := s.adminOnly(caller); err != nil {
		return err
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		r, err := tx.GetReputation(ctx, user)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: %s", service.ErrUserNotRegistered, user)
			}
			return fmt.Errorf("failed to get reputation: %w", err)
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		return s.applyDelta(ctx, tx, r, delta, reason, h)
	})
}

// onFollowed, onUnfollowed and onBlocked are the synchronous ledger hooks
// fired by graph mutations within the same transaction. Users that never
// initialized a ledger record accrue nothing.

func (s srv) onFollowed(ctx context.Context, tx storage.Storage, followee string, height uint64) error {
	return s.applyEvent(ctx, tx, followee, followPoints, reasonFollowed, height)
}

func (s srv) onUnfollowed(ctx context.Context, tx storage.Storage, followee string, height uint64) error {
	return s.applyEvent(ctx, tx, followee, unfollowPenalty, reasonUnfollowed, height)
}

func (s srv) onBlocked(ctx context.Context, tx storage.Storage, blocked string, height uint64) error {
	return s.applyEvent(ctx, tx, blocked, blockPenalty, reasonBlockedByFollower, height)
}

func (s srv) applyEvent(ctx context.Context, tx storage.Storage, user string, delta int64, reason string, height uint64) error {
	r, err := tx.GetReputation(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get reputation: %w", err)
	}

	return s.applyDelta(ctx, tx, r, delta, reason, height)
}

// applyDelta mutates r in place, clamps the score at zero and records the
// originally requested delta in history.
func (s srv) applyDelta(ctx context.Context, tx storage.Storage, r *entities.Reputation, delta int64, reason string, height uint64) error {
	if delta < 0 && uint64(-delta) > r.Score {
		r.Score = 0
	} else {
		r.Score = uint64(int64(r.Score) + delta)
	}
	r.UpdatedAt = height

	if err := tx.UpdateReputation(ctx, r); err != nil {
		return fmt.Errorf("failed to update reputation: %w", err)
	}

	if err := tx.AddReputationHistory(ctx, &entities.ReputationHistoryEntry{
		Address: r.Address,
		Delta:   delta,
		Reason:  reason,
		Height:  height,
	}); err != nil {
		return fmt.Errorf("failed to add reputation history: %w", err)
	}

	return nil
}

func (s srv) getOrCreateReputation(ctx context.Context, tx storage.Storage, user string, height uint64) (*entities.Reputation, error) {
	r, err := tx.GetReputation(ctx, user)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get reputation: %w", err)
	}

	r = &entities.Reputation{
		Address:   user,
		CreatedAt: height,
		UpdatedAt: height,
	}

	if err := tx.CreateReputation(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create reputation: %w", err)
	}

	return r, nil
}

func summaryOf(r *entities.Reputation) *service.ReputationSummary {
	t := r.Tier()

	return &service.ReputationSummary{
		Address:  r.Address,
		Score:    r.Score,
		Tier:     t,
		TierName: t.Name(),
	}
}

func (s srv) ReputationScore(ctx context.Context, user string) (uint64, error) {
	r, err := s.GetReputation(ctx, user)
	if err != nil {
		return 0, err
	}

	return r.Score, nil
}

func (s srv) ReputationTier(ctx context.Context, user string) (entities.Tier, error) {
	r, err := s.GetReputation(ctx, user)
	if err != nil {
		return 0, err
	}

	return r.Tier(), nil
}

// GetReputation never fails on unknown users, they read as an empty record.
func (s srv) GetReputation(ctx context.Context, user string) (*entities.Reputation, error) {
	r, err := s.s.GetReputation(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &entities.Reputation{Address: user}, nil
		}
		return nil, fmt.Errorf("failed to get reputation: %w", err)
	}

	return r, nil
}

func (s srv) ReputationHistory(ctx context.Context, user string, limit uint32) ([]*entities.ReputationHistoryEntry, error) {
	if limit == 0 || limit > historyLimit {
		limit = historyLimit
	}

	out, err := s.s.ListReputationHistory(ctx, user, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reputation history: %w", err)
	}

	return out, nil
}

func (s srv) ReputationStats(ctx context.Context) (*entities.ReputationStats, error) {
	out, err := s.s.GetReputationStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reputation stats: %w", err)
	}

	return out, nil
}

func (s srv) TierThresholds() service.TierThresholds {
	return service.TierThresholds{
		Rising:     100,
		Popular:    500,
		Influencer: 1000,
		Legendary:  5000,
	}
}

func (s srv) PointValues() service.PointValues {
	return service.PointValues{
		ProfileCompletion: profileCompletionBonus,
		Follow:            followPoints,
		Unfollow:          unfollowPenalty,
		Block:             blockPenalty,
	}
}

func (s srv) UpdatePointValues(_ context.Context, caller string, _ service.PointValues) (string, error) {
	if err := s.adminOnly(caller); err != nil {
		return "", err
	}

	return service.NotImplemented, nil
}
