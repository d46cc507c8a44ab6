// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"

	"github.com/onsocial/trustd/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// Storage provides methods for interacting with database.
//
// Every method is safe to call inside the function passed to InTx; mutating
// service operations run entirely within one InTx call so a failure leaves
// no partial state behind.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	GetHeight(ctx context.Context) (uint64, error)
	SetHeight(ctx context.Context, height uint64) error

	GetProfile(ctx context.Context, address string) (*entities.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*entities.Profile, error)
	CreateProfile(ctx context.Context, p *entities.Profile) error
	UpdateProfile(ctx context.Context, p *entities.Profile) error
	CountProfiles(ctx context.Context) (uint64, error)

	CreateFollow(ctx context.Context, follower, followee string, height uint64) error
	DeleteFollow(ctx context.Context, follower, followee string) error
	HasFollow(ctx context.Context, follower, followee string) (bool, error)
	FollowerCount(ctx context.Context, address string) (uint32, error)
	FollowingCount(ctx context.Context, address string) (uint32, error)
	CountFollows(ctx context.Context) (uint64, error)

	CreateFollowRequest(ctx context.Context, requester, target string, height uint64) error
	DeleteFollowRequest(ctx context.Context, requester, target string) error
	HasFollowRequest(ctx context.Context, requester, target string) (bool, error)

	CreateBlock(ctx context.Context, blocker, blocked string, height uint64) error
	DeleteBlock(ctx context.Context, blocker, blocked string) error
	HasBlock(ctx context.Context, blocker, blocked string) (bool, error)

	GetRateCounter(ctx context.Context, address string) (*entities.RateCounter, error)
	SetRateCounter(ctx context.Context, address string, c *entities.RateCounter) error

	GetReputation(ctx context.Context, address string) (*entities.Reputation, error)
	CreateReputation(ctx context.Context, r *entities.Reputation) error
	UpdateReputation(ctx context.Context, r *entities.Reputation) error
	AddReputationHistory(ctx context.Context, e *entities.ReputationHistoryEntry) error
	ListReputationHistory(ctx context.Context, address string, limit uint32) ([]*entities.ReputationHistoryEntry, error)
	GetReputationStats(ctx context.Context) (*entities.ReputationStats, error)

	GetPrivacySettings(ctx context.Context, address string) (*entities.PrivacySettings, error)
	SetPrivacySettings(ctx context.Context, s *entities.PrivacySettings) error
	DeletePrivacySettings(ctx context.Context, address string) error
	GetPrivacyStats(ctx context.Context) (*entities.PrivacyStats, error)

	AddToWhitelist(ctx context.Context, owner, address string, height uint64) error
	RemoveFromWhitelist(ctx context.Context, owner, address string) error
	IsWhitelisted(ctx context.Context, owner, address string) (bool, error)

	AddToBlacklist(ctx context.Context, owner, address string, height uint64) error
	RemoveFromBlacklist(ctx context.Context, owner, address string) error
	IsBlacklisted(ctx context.Context, owner, address string) (bool, error)

	SetAccessDecision(ctx context.Context, d *entities.AccessDecision) error
	GetAccessDecision(ctx context.Context, owner, accessor string) (*entities.AccessDecision, error)
}
