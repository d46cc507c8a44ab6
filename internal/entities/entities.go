// Package entities contains main entities of service.
package entities

// Profile is a registered user of the social graph.
// Heights are logical block heights, not wall-clock time.
type Profile struct {
	Address     string
	Username    string
	DisplayName string
	Bio         string
	AvatarURL   string
	IsPrivate   bool
	CreatedAt   uint64
	UpdatedAt   uint64
}

// FollowStatus reports the outcome of a follow attempt.
type FollowStatus string

const (
	// Following means an active follow edge was created.
	Following FollowStatus = "following"
	// RequestSent means the target requires approval and a request is pending.
	RequestSent FollowStatus = "request-sent"
)

// RateCounter tracks mutating graph actions of a principal within a window.
type RateCounter struct {
	WindowStart uint64
	Count       uint32
}

// Tier is a named band of reputation score.
type Tier uint8

const (
	TierNewcomer Tier = iota + 1
	TierRising
	TierPopular
	TierInfluencer
	TierLegendary
)

// Name returns the display name of the tier.
func (t Tier) Name() string {
	switch t {
	case TierNewcomer:
		return "Newcomer"
	case TierRising:
		return "Rising"
	case TierPopular:
		return "Popular"
	case TierInfluencer:
		return "Influencer"
	case TierLegendary:
		return "Legendary"
	}

	return "Unknown"
}

// Reputation is a user's reputation record. Tier is derived from Score on
// read, it is never stored.
type Reputation struct {
	Address      string
	Score        uint64
	BonusAwarded bool
	CreatedAt    uint64
	UpdatedAt    uint64
}

// Tier returns the tier band the current score falls into.
func (r Reputation) Tier() Tier {
	return TierForScore(r.Score)
}

// TierForScore maps a score to its tier band.
func TierForScore(score uint64) Tier {
	switch {
	case score >= 5000:
		return TierLegendary
	case score >= 1000:
		return TierInfluencer
	case score >= 500:
		return TierPopular
	case score >= 100:
		return TierRising
	default:
		return TierNewcomer
	}
}

// ReputationHistoryEntry is a signed point delta applied to a user's score.
type ReputationHistoryEntry struct {
	Address string
	Delta   int64
	Reason  string
	Height  uint64
}

// PrivacyLevel is the coarse visibility policy of a profile.
type PrivacyLevel uint8

const (
	PrivacyLevelPublic PrivacyLevel = iota + 1
	PrivacyLevelFollowersOnly
	PrivacyLevelPrivate
)

// Valid reports whether the level is one of the three defined policies.
func (l PrivacyLevel) Valid() bool {
	return l >= PrivacyLevelPublic && l <= PrivacyLevelPrivate
}

// Name returns the display name of the privacy level.
func (l PrivacyLevel) Name() string {
	switch l {
	case PrivacyLevelPublic:
		return "Public"
	case PrivacyLevelFollowersOnly:
		return "FollowersOnly"
	case PrivacyLevelPrivate:
		return "Private"
	}

	return "Unknown"
}

// PrivacySettings is a user's visibility policy record.
type PrivacySettings struct {
	Address             string
	Level               PrivacyLevel
	AllowFollowRequests bool
	ShowFollowerCount   bool
	ShowFollowingCount  bool
	ShowProfileToPublic bool
	AllowDirectMessages bool
	AutoApproveFollower bool
	UpdatedAt           uint64
}

// DefaultPrivacySettings are the settings assumed when no record exists.
func DefaultPrivacySettings(address string) PrivacySettings {
	return PrivacySettings{
		Address:             address,
		Level:               PrivacyLevelPublic,
		AllowFollowRequests: true,
		ShowFollowerCount:   true,
		ShowFollowingCount:  true,
		ShowProfileToPublic: true,
		AllowDirectMessages: true,
		AutoApproveFollower: false,
	}
}

// AccessDecision is the advisory record of the last access check per accessor.
type AccessDecision struct {
	Owner    string
	Accessor string
	Allowed  bool
	Height   uint64
}

// PrivacyRecommendation is a read-only advisory for a user's settings.
type PrivacyRecommendation struct {
	Address        string
	Level          PrivacyLevel
	FollowerCount  uint32
	FollowingCount uint32
	SuggestedLevel PrivacyLevel
	Suggestion     string
}

// GraphStats are global follow-graph aggregates.
type GraphStats struct {
	TotalUsers   uint64
	TotalFollows uint64
}

// ReputationStats are global ledger aggregates.
type ReputationStats struct {
	TotalUsers  uint64
	TotalPoints uint64
}

// PrivacyStats are global policy aggregates.
type PrivacyStats struct {
	TotalAccounts   uint64
	PrivateAccounts uint64
}
