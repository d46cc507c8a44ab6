package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/service"
	"github.com/onsocial/trustd/internal/storage"
)

func (s srv) Register(ctx context.Context, caller string, p service.ProfileParams) (*entities.Profile, error) {
	var out *entities.Profile

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := tx.GetProfile(ctx, caller); err == nil {
			return service.ErrAlreadyRegistered
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to get profile: %w", err)
		}

		if err := s.checkUsername(ctx, tx, caller, p.Username); err != nil {
			return err
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		out = &entities.Profile{
			Address:     caller,
			Username:    p.Username,
			DisplayName: p.DisplayName,
			Bio:         p.Bio,
			AvatarURL:   p.AvatarURL,
			IsPrivate:   p.IsPrivate,
			CreatedAt:   h,
			UpdatedAt:   h,
		}

		if err := tx.CreateProfile(ctx, out); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) UpdateProfile(ctx context.Context, caller string, p service.ProfileParams) (*entities.Profile, error) {
	var out *entities.Profile

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		existing, err := requireProfile(ctx, tx, caller)
		if err != nil {
			return err
		}

		if err := s.checkUsername(ctx, tx, caller, p.Username); err != nil {
			return err
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		out = &entities.Profile{
			Address:     caller,
			Username:    p.Username,
			DisplayName: p.DisplayName,
			Bio:         p.Bio,
			AvatarURL:   p.AvatarURL,
			IsPrivate:   p.IsPrivate,
			CreatedAt:   existing.CreatedAt,
			UpdatedAt:   h,
		}

		if err := tx.UpdateProfile(ctx, out); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// checkUsername enforces non-empty, globally unique usernames. The caller's
// own current username stays claimable on update.
func (s srv) checkUsername(ctx context.Context, tx storage.Storage, caller, username string) error {
	if username == "" {
		return service.ErrInvalidUsername
	}

	owner, err := tx.GetProfileByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get profile by username: %w", err)
	}

	if owner.Address != caller {
		return fmt.Errorf("%w: %s is taken", service.ErrInvalidUsername, username)
	}

	return nil
}

func (s srv) Follow(ctx context.Context, caller, target string) (*service.FollowResult, error) {
	var out *service.FollowResult

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := requireProfile(ctx, tx, caller); err != nil {
			return err
		}

		targetProfile, err := requireProfile(ctx, tx, target)
		if err != nil {
			return err
		}

		if caller == target {
			return service.ErrSelfFollowNotAllowed
		}

		if err := s.checkNotBlocked(ctx, tx, caller, target); err != nil {
			return err
		}

		if ok, err := tx.HasFollow(ctx, caller, target); err != nil {
			return fmt.Errorf("failed to check follow: %w", err)
		} else if ok {
			return service.ErrAlreadyFollowing
		}

		if ok, err := tx.HasFollowRequest(ctx, caller, target); err != nil {
			return fmt.Errorf("failed to check follow request: %w", err)
		} else if ok {
			return service.ErrDuplicateRequest
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		if err := s.consumeRateBudget(ctx, tx, caller, h); err != nil {
			return err
		}

		if targetProfile.IsPrivate && !s.autoApproves(ctx, tx, target) {
			if err := tx.CreateFollowRequest(ctx, caller, target, h); err != nil {
				return fmt.Errorf("failed to create follow request: %w", err)
			}

			out = &service.FollowResult{Follower: caller, Followee: target, Status: entities.RequestSent}
			return nil
		}

		if err := tx.CreateFollow(ctx, caller, target, h); err != nil {
			return fmt.Errorf("failed to create follow: %w", err)
		}

		if err := s.onFollowed(ctx, tx, target, h); err != nil {
			return err
		}

		out = &service.FollowResult{Follower: caller, Followee: target, Status: entities.Following}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) checkNotBlocked(ctx context.Context, tx storage.Storage, a, b string) error {
	for _, p := range [][2]string{{a, b}, {b, a}} {
		if ok, err := tx.HasBlock(ctx, p[0], p[1]); err != nil {
			return fmt.Errorf("failed to check block: %w", err)
		} else if ok {
			return service.ErrBlocked
		}
	}

	return nil
}

// autoApproves reports whether the target opted into auto-approving
// followers. Absent settings mean the default, which does not auto-approve.
func (s srv) autoApproves(ctx context.Context, tx storage.Storage, target string) bool {
	ps, err := tx.GetPrivacySettings(ctx, target)
	if err != nil {
		return false
	}

	return ps.AutoApproveFollower
}

func (s srv) Unfollow(ctx context.Context, caller, target string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if ok, err := tx.HasFollow(ctx, caller, target); err != nil {
			return fmt.Errorf("failed to check follow: %w", err)
		} else if !ok {
			return service.ErrNotFollowing
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		if err := s.consumeRateBudget(ctx, tx, caller, h); err != nil {
			return err
		}

		if err := tx.DeleteFollow(ctx, caller, target); err != nil {
			return fmt.Errorf("failed to delete follow: %w", err)
		}

		return s.onUnfollowed(ctx, tx, target, h)
	})
}

func (s srv) ApproveFollowRequest(ctx context.Context, caller, requester string) (*service.FollowResult, error) {
	var out *service.FollowResult

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if ok, err := tx.HasFollowRequest(ctx, requester, caller); err != nil {
			return fmt.Errorf("failed to check follow request: %w", err)
		} else if !ok {
			return service.ErrRequestNotFound
		}

		if err := tx.DeleteFollowRequest(ctx, requester, caller); err != nil {
			return fmt.Errorf("failed to delete follow request: %w", err)
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		if err := tx.CreateFollow(ctx, requester, caller, h); err != nil {
			return fmt.Errorf("failed to create follow: %w", err)
		}

		if err := s.onFollowed(ctx, tx, caller, h); err != nil {
			return err
		}

		out = &service.FollowResult{Follower: requester, Followee: caller, Status: entities.Following}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) RejectFollowRequest(ctx context.Context, caller, requester string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.DeleteFollowRequest(ctx, requester, caller); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrRequestNotFound
			}
			return fmt.Errorf("failed to delete follow request: %w", err)
		}

		return nil
	})
}

func (s srv) Block(ctx context.Context, caller, target string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := requireProfile(ctx, tx, caller); err != nil {
			return err
		}

		if _, err := requireProfile(ctx, tx, target); err != nil {
			return err
		}

		if caller == target {
			return service.ErrSelfFollowNotAllowed
		}

		if ok, err := tx.HasBlock(ctx, caller, target); err != nil {
			return fmt.Errorf("failed to check block: %w", err)
		} else if ok {
			return service.ErrAlreadyBlocked
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		if err := s.consumeRateBudget(ctx, tx, caller, h); err != nil {
			return err
		}

		// The block penalty applies to the target only when the caller
		// actually followed it.
		followedTarget, err := tx.HasFollow(ctx, caller, target)
		if err != nil {
			return fmt.Errorf("failed to check follow: %w", err)
		}

		for _, p := range [][2]string{{caller, target}, {target, caller}} {
			if err := tx.DeleteFollow(ctx, p[0], p[1]); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("failed to delete follow: %w", err)
			}
			if err := tx.DeleteFollowRequest(ctx, p[0], p[1]); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("failed to delete follow request: %w", err)
			}
		}

		if err := tx.CreateBlock(ctx, caller, target, h); err != nil {
			return fmt.Errorf("failed to create block: %w", err)
		}

		if followedTarget {
			return s.onBlocked(ctx, tx, target, h)
		}

		return nil
	})
}

func (s srv) Unblock(ctx context.Context, caller, target string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.DeleteBlock(ctx, caller, target); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrNotBlocked
			}
			return fmt.Errorf("failed to delete block: %w", err)
		}

		return nil
	})
}

func (s srv) GetProfile(ctx context.Context, address string) (*entities.Profile, error) {
	return requireProfile(ctx, s.s, address)
}

func (s srv) FollowerCount(ctx context.Context, address string) (uint32, error) {
	c, err := s.s.FollowerCount(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return c, nil
}

func (s srv) FollowingCount(ctx context.Context, address string) (uint32, error) {
	c, err := s.s.FollowingCount(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}

	return c, nil
}

func (s srv) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	ok, err := s.s.HasFollow(ctx, follower, followee)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return ok, nil
}

func (s srv) IsBlocked(ctx context.Context, blocker, blocked string) (bool, error) {
	ok, err := s.s.HasBlock(ctx, blocker, blocked)
	if err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}

	return ok, nil
}

func (s srv) HasPendingRequest(ctx context.Context, requester, target string) (bool, error) {
	ok, err := s.s.HasFollowRequest(ctx, requester, target)
	if err != nil {
		return false, fmt.Errorf("failed to check follow request: %w", err)
	}

	return ok, nil
}

func (s srv) GraphStats(ctx context.Context) (*entities.GraphStats, error) {
	users, err := s.s.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	follows, err := s.s.CountFollows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count follows: %w", err)
	}

	return &entities.GraphStats{TotalUsers: users, TotalFollows: follows}, nil
}

func (s srv) EmergencyPause(_ context.Context, caller string) (string, error) {
	if err := s.adminOnly(caller); err != nil {
		return "", err
	}

	return service.NotImplemented, nil
}

func (s srv) UpdateGraphParameters(_ context.Context, caller string, _ uint64, _ uint32) (string, error) {
	if err := s.adminOnly(caller); err != nil {
		return "", err
	}

	return service.NotImplemented, nil
}
