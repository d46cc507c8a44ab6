package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/service"
	"github.com/onsocial/trustd/internal/storage"
)

const (
	listStatusWhitelisted = "whitelisted"
	listStatusBlacklisted = "blacklisted"
	listStatusRemoved     = "removed"
)

func (s srv) SetPrivacySettings(ctx context.Context, caller string, ps entities.PrivacySettings) (*entities.PrivacySettings, error) {
	if !ps.Level.Valid() {
		return nil, service.ErrInvalidPrivacyLevel
	}

	var out *entities.PrivacySettings

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := requireProfile(ctx, tx, caller); err != nil {
			return err
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		ps.Address = caller
		ps.UpdatedAt = h

		if err := tx.SetPrivacySettings(ctx, &ps); err != nil {
			return fmt.Errorf("failed to set privacy settings: %w", err)
		}

		out = &ps
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) AddToWhitelist(ctx context.Context, caller, user string) (*service.ListChange, error) {
	var out *service.ListChange

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := s.checkListTarget(ctx, tx, caller, user); err != nil {
			return err
		}

		if ok, err := tx.IsWhitelisted(ctx, caller, user); err != nil {
			return fmt.Errorf("failed to check whitelist: %w", err)
		} else if ok {
			return service.ErrAlreadyWhitelisted
		}

		// An address cannot sit on both lists, whitelisting lifts a blacklisting.
		if err := tx.RemoveFromBlacklist(ctx, caller, user); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to remove from blacklist: %w", err)
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		if err := tx.AddToWhitelist(ctx, caller, user, h); err != nil {
			return fmt.Errorf("failed to add to whitelist: %w", err)
		}

		out = &service.ListChange{Owner: caller, Address: user, Status: listStatusWhitelisted}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) RemoveFromWhitelist(ctx context.Context, caller, user string) (*service.ListChange, error) {
	var out *service.ListChange

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.RemoveFromWhitelist(ctx, caller, user); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrNotWhitelisted
			}
			return fmt.Errorf("failed to remove from whitelist: %w", err)
		}

		out = &service.ListChange{Owner: caller, Address: user, Status: listStatusRemoved}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) AddToBlacklist(ctx context.Context, caller, user string) (*service.ListChange, error) {
	var out *service.ListChange

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := s.checkListTarget(ctx, tx, caller, user); err != nil {
			return err
		}

		if ok, err := tx.IsBlacklisted(ctx, caller, user); err != nil {
			return fmt.Errorf("failed to check blacklist: %w", err)
		} else if ok {
			return service.ErrAlreadyBlacklisted
		}

		if err := tx.RemoveFromWhitelist(ctx, caller, user); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to remove from whitelist: %w", err)
		}

		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		if err := tx.AddToBlacklist(ctx, caller, user, h); err != nil {
			return fmt.Errorf("failed to add to blacklist: %w", err)
		}

		out = &service.ListChange{Owner: caller, Address: user, Status: listStatusBlacklisted}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) RemoveFromBlacklist(ctx context.Context, caller, user string) (*service.ListChange, error) {
	var out *service.ListChange

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.RemoveFromBlacklist(ctx, caller, user); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrNotBlacklisted
			}
			return fmt.Errorf("failed to remove from blacklist: %w", err)
		}

		out = &service.ListChange{Owner: caller, Address: user, Status: listStatusRemoved}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) checkListTarget(ctx context.Context, tx storage.Storage, caller, user string) error {
	if _, err := requireProfile(ctx, tx, caller); err != nil {
		return err
	}

	if caller == user {
		return service.ErrSelfReferenceNotAllowed
	}

	return nil
}

// CanAccessProfile evaluates the composite profile-visibility decision.
// Blacklisting dominates everything, a disabled public-profile toggle
// hides the profile even from its owner.
func (s srv) CanAccessProfile(ctx context.Context, accessor, target string) (bool, error) {
	allowed, err := s.evalProfileAccess(ctx, accessor, target)
	if err != nil {
		return false, err
	}

	s.recordAccessDecision(ctx, accessor, target, allowed)

	return allowed, nil
}

func (s srv) evalProfileAccess(ctx context.Context, accessor, target string) (bool, error) {
	if ok, err := s.s.IsBlacklisted(ctx, target, accessor); err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	} else if ok {
		return false, nil
	}

	ps, err := s.settingsOf(ctx, s.s, target)
	if err != nil {
		return false, err
	}

	if !ps.ShowProfileToPublic {
		return false, nil
	}

	if accessor == target {
		return true, nil
	}

	if ok, err := s.s.IsWhitelisted(ctx, target, accessor); err != nil {
		return false, fmt.Errorf("failed to check whitelist: %w", err)
	} else if ok {
		return true, nil
	}

	switch ps.Level {
	case entities.PrivacyLevelPublic:
		return true, nil
	case entities.PrivacyLevelFollowersOnly:
		ok, err := s.s.HasFollow(ctx, accessor, target)
		if err != nil {
			return false, fmt.Errorf("failed to check follow: %w", err)
		}
		return ok, nil
	default:
		return false, nil
	}
}

// recordAccessDecision keeps an advisory trail of the last decision per
// accessor. It never fails the check itself.
func (s srv) recordAccessDecision(ctx context.Context, accessor, target string, allowed bool) {
	h, err := s.s.GetHeight(ctx)
	if err != nil {
		log.WithError(err).Error("failed to get height for access decision")
		return
	}

	d := &entities.AccessDecision{
		Owner:    target,
		Accessor: accessor,
		Allowed:  allowed,
		Height:   h,
	}

	if err := s.s.SetAccessDecision(ctx, d); err != nil {
		log.WithError(err).Error("failed to record access decision")
	}
}

func (s srv) CanSeeFollowerCount(ctx context.Context, accessor, target string) (bool, error) {
	return s.evalToggle(ctx, accessor, target, func(ps *entities.PrivacySettings) bool {
		return ps.ShowFollowerCount
	})
}

func (s srv) CanSeeFollowingCount(ctx context.Context, accessor, target string) (bool, error) {
	return s.evalToggle(ctx, accessor, target, func(ps *entities.PrivacySettings) bool {
		return ps.ShowFollowingCount
	})
}

func (s srv) CanSendDirectMessage(ctx context.Context, accessor, target string) (bool, error) {
	return s.evalToggle(ctx, accessor, target, func(ps *entities.PrivacySettings) bool {
		return ps.AllowDirectMessages
	})
}

func (s srv) evalToggle(ctx context.Context, accessor, target string, toggle func(*entities.PrivacySettings) bool) (bool, error) {
	if ok, err := s.s.IsBlacklisted(ctx, target, accessor); err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	} else if ok {
		return false, nil
	}

	ps, err := s.settingsOf(ctx, s.s, target)
	if err != nil {
		return false, err
	}

	return toggle(ps), nil
}

// settingsOf resolves a user's settings, falling back to the defaults when
// none were ever stored.
func (s srv) settingsOf(ctx context.Context, st storage.Storage, user string) (*entities.PrivacySettings, error) {
	ps, err := st.GetPrivacySettings(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			d := entities.DefaultPrivacySettings(user)
			return &d, nil
		}
		return nil, fmt.Errorf("failed to get privacy settings: %w", err)
	}

	return ps, nil
}

func (s srv) PrivacySettingsOf(ctx context.Context, user string) (*entities.PrivacySettings, error) {
	return s.settingsOf(ctx, s.s, user)
}

func (s srv) IsWhitelisted(ctx context.Context, owner, user string) (bool, error) {
	ok, err := s.s.IsWhitelisted(ctx, owner, user)
	if err != nil {
		return false, fmt.Errorf("failed to check whitelist: %w", err)
	}

	return ok, nil
}

func (s srv) IsBlacklisted(ctx context.Context, owner, user string) (bool, error) {
	ok, err := s.s.IsBlacklisted(ctx, owner, user)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}

	return ok, nil
}

func (s srv) LastAccessDecision(ctx context.Context, owner, accessor string) (*entities.AccessDecision, error) {
	d, err := s.s.GetAccessDecision(ctx, owner, accessor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get access decision: %w", err)
	}

	return d, nil
}

func (s srv) PrivacyRecommendations(ctx context.Context, user string) (*entities.PrivacyRecommendation, error) {
	if _, err := requireProfile(ctx, s.s, user); err != nil {
		return nil, err
	}

	ps, err := s.settingsOf(ctx, s.s, user)
	if err != nil {
		return nil, err
	}

	followers, err := s.s.FollowerCount(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}

	following, err := s.s.FollowingCount(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}

	out := &entities.PrivacyRecommendation{
		Address:        user,
		Level:          ps.Level,
		FollowerCount:  followers,
		FollowingCount: following,
		SuggestedLevel: ps.Level,
		Suggestion:     "current settings match your audience",
	}

	switch {
	case ps.Level == entities.PrivacyLevelPublic && followers >= 1000:
		out.SuggestedLevel = entities.PrivacyLevelFollowersOnly
		out.Suggestion = "large audiences attract scraping, consider limiting the profile to followers"
	case ps.Level == entities.PrivacyLevelPrivate && followers == 0 && following == 0:
		out.SuggestedLevel = entities.PrivacyLevelPublic
		out.Suggestion = "a private empty profile is hard to discover, consider opening it up"
	}

	return out, nil
}

func (s srv) PrivacyStats(ctx context.Context) (*entities.PrivacyStats, error) {
	out, err := s.s.GetPrivacyStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get privacy stats: %w", err)
	}

	return out, nil
}

func (s srv) EmergencyPrivacyReset(ctx context.Context, caller, user string) error {
	if err := s.adminOnly(caller); err != nil {
		return err
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.DeletePrivacySettings(ctx, user); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrSettingsNotFound
			}
			return fmt.Errorf("failed to delete privacy settings: %w", err)
		}

		return nil
	})
}

func (s srv) UpdatePrivacyParameters(_ context.Context, caller string, _, _ uint32) (string, error) {
	if err := s.adminOnly(caller); err != nil {
		return "", err
	}

	return service.NotImplemented, nil
}
