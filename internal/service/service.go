// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/onsocial/trustd/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock github.com/onsocial/trustd/internal/service Service

// Existence failures.
var (
	ErrUserNotRegistered        = errors.New("user not registered")
	ErrAlreadyRegistered        = errors.New("user already registered")
	ErrReputationNotInitialized = errors.New("reputation not initialized")
	ErrRequestNotFound          = errors.New("follow request not found")
	ErrNotFollowing             = errors.New("not following")
	ErrNotBlocked               = errors.New("not blocked")
	ErrNotWhitelisted           = errors.New("not whitelisted")
	ErrNotBlacklisted           = errors.New("not blacklisted")
	ErrSettingsNotFound         = errors.New("privacy settings not found")
)

// Conflict failures.
var (
	ErrAlreadyFollowing        = errors.New("already following")
	ErrAlreadyBlocked          = errors.New("already blocked")
	ErrDuplicateRequest        = errors.New("follow request already pending")
	ErrAlreadyWhitelisted      = errors.New("already whitelisted")
	ErrAlreadyBlacklisted      = errors.New("already blacklisted")
	ErrDuplicateInitialization = errors.New("reputation already initialized")
)

// Validation failures.
var (
	ErrInvalidUsername         = errors.New("invalid username")
	ErrInvalidPrivacyLevel     = errors.New("invalid privacy level")
	ErrInvalidPoints           = errors.New("invalid points")
	ErrSelfFollowNotAllowed    = errors.New("self follow not allowed")
	ErrSelfReferenceNotAllowed = errors.New("self reference not allowed")
)

// Policy and authorization failures.
var (
	ErrBlocked      = errors.New("blocked")
	ErrRateLimited  = errors.New("rate limited")
	ErrUnauthorized = errors.New("unauthorized")
)

// NotImplemented marks an administrative entry point that is reserved but
// not yet functional. It is reported as a success payload, not a failure.
const NotImplemented = "not yet implemented"

// ProfileParams are the caller-supplied profile fields.
type ProfileParams struct {
	Username    string
	DisplayName string
	Bio         string
	AvatarURL   string
	IsPrivate   bool
}

// FollowResult reports the branch a follow attempt took.
type FollowResult struct {
	Follower string
	Followee string
	Status   entities.FollowStatus
}

// ReputationSummary echoes a ledger mutation.
type ReputationSummary struct {
	Address  string
	Score    uint64
	Tier     entities.Tier
	TierName string
}

// ListChange echoes a whitelist or blacklist mutation.
type ListChange struct {
	Owner   string
	Address string
	Status  string
}

// TierThresholds are the lower bounds of the non-default tiers.
type TierThresholds struct {
	Rising     uint64
	Popular    uint64
	Influencer uint64
	Legendary  uint64
}

// PointValues are the fixed deltas applied by ledger events.
type PointValues struct {
	ProfileCompletion uint64
	Follow            uint64
	Unfollow          int64
	Block             int64
}

// Service is the trust layer core: follow graph, reputation ledger and
// privacy policy over one consistent store. The caller principal is trusted,
// identity verification happens outside the core.
type Service interface {
	FollowGraph
	ReputationLedger
	PrivacyPolicy

	GetHeight(ctx context.Context) (uint64, error)
	Admin() string
}

// FollowGraph manages profiles, follow/block edges and pending requests.
type FollowGraph interface {
	Register(ctx context.Context, caller string, p ProfileParams) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, caller string, p ProfileParams) (*entities.Profile, error)

	Follow(ctx context.Context, caller, target string) (*FollowResult, error)
	Unfollow(ctx context.Context, caller, target string) error
	ApproveFollowRequest(ctx context.Context, caller, requester string) (*FollowResult, error)
	RejectFollowRequest(ctx context.Context, caller, requester string) error
	Block(ctx context.Context, caller, target string) error
	Unblock(ctx context.Context, caller, target string) error

	GetProfile(ctx context.Context, address string) (*entities.Profile, error)
	FollowerCount(ctx context.Context, address string) (uint32, error)
	FollowingCount(ctx context.Context, address string) (uint32, error)
	IsFollowing(ctx context.Context, follower, followee string) (bool, error)
	IsBlocked(ctx context.Context, blocker, blocked string) (bool, error)
	HasPendingRequest(ctx context.Context, requester, target string) (bool, error)
	GraphStats(ctx context.Context) (*entities.GraphStats, error)

	EmergencyPause(ctx context.Context, caller string) (string, error)
	UpdateGraphParameters(ctx context.Context, caller string, window uint64, maxActions uint32) (string, error)
}

// ReputationLedger maintains scores, tiers and bounded history.
type ReputationLedger interface {
	InitializeReputation(ctx context.Context, user string) (*ReputationSummary, error)
	AwardProfileCompletionBonus(ctx context.Context, user string) (bool, error)
	AddPointsManual(ctx context.Context, caller, user string, delta int64, reason string) (*ReputationSummary, error)
	ResetReputation(ctx context.Context, caller, user string) (*ReputationSummary, error)

	ReprocessFollowEvent(ctx context.Context, caller, follower, followee string) error
	ReprocessUnfollowEvent(ctx context.Context, caller, follower, followee string) error
	ReprocessBlockEvent(ctx context.Context, caller, blocker, blocked string) error

	ReputationScore(ctx context.Context, user string) (uint64, error)
	ReputationTier(ctx context.Context, user string) (entities.Tier, error)
	GetReputation(ctx context.Context, user string) (*entities.Reputation, error)
	ReputationHistory(ctx context.Context, user string, limit uint32) ([]*entities.ReputationHistoryEntry, error)
	ReputationStats(ctx context.Context) (*entities.ReputationStats, error)
	TierThresholds() TierThresholds
	PointValues() PointValues

	UpdatePointValues(ctx context.Context, caller string, v PointValues) (string, error)
}

// PrivacyPolicy maintains visibility settings and evaluates access decisions.
type PrivacyPolicy interface {
	SetPrivacySettings(ctx context.Context, caller string, s entities.PrivacySettings) (*entities.PrivacySettings, error)
	AddToWhitelist(ctx context.Context, caller, user string) (*ListChange, error)
	RemoveFromWhitelist(ctx context.Context, caller, user string) (*ListChange, error)
	AddToBlacklist(ctx context.Context, caller, user string) (*ListChange, error)
	RemoveFromBlacklist(ctx context.Context, caller, user string) (*ListChange, error)

	CanAccessProfile(ctx context.Context, accessor, target string) (bool, error)
	CanSeeFollowerCount(ctx context.Context, accessor, target string) (bool, error)
	CanSeeFollowingCount(ctx context.Context, accessor, target string) (bool, error)
	CanSendDirectMessage(ctx context.Context, accessor, target string) (bool, error)

	PrivacySettingsOf(ctx context.Context, user string) (*entities.PrivacySettings, error)
	IsWhitelisted(ctx context.Context, owner, user string) (bool, error)
	IsBlacklisted(ctx context.Context, owner, user string) (bool, error)
	LastAccessDecision(ctx context.Context, owner, accessor string) (*entities.AccessDecision, error)
	PrivacyRecommendations(ctx context.Context, user string) (*entities.PrivacyRecommendation, error)
	PrivacyStats(ctx context.Context) (*entities.PrivacyStats, error)

	EmergencyPrivacyReset(ctx context.Context, caller, user string) error
	UpdatePrivacyParameters(ctx context.Context, caller string, maxWhitelist, maxBlacklist uint32) (string, error)
}
