package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForScore(t *testing.T) {
	tt := []struct {
		score uint64
		tier  Tier
		name  string
	}{
		{0, TierNewcomer, "Newcomer"},
		{99, TierNewcomer, "Newcomer"},
		{100, TierRising, "Rising"},
		{499, TierRising, "Rising"},
		{500, TierPopular, "Popular"},
		{999, TierPopular, "Popular"},
		{1000, TierInfluencer, "Influencer"},
		{4999, TierInfluencer, "Influencer"},
		{5000, TierLegendary, "Legendary"},
		{1 << 40, TierLegendary, "Legendary"},
	}

	for _, tc := range tt {
		tier := TierForScore(tc.score)
		assert.Equal(t, tc.tier, tier, "score %d", tc.score)
		assert.Equal(t, tc.name, tier.Name(), "score %d", tc.score)
	}
}

func TestPrivacyLevel_Valid(t *testing.T) {
	assert.False(t, PrivacyLevel(0).Valid())
	assert.True(t, PrivacyLevelPublic.Valid())
	assert.True(t, PrivacyLevelFollowersOnly.Valid())
	assert.True(t, PrivacyLevelPrivate.Valid())
	assert.False(t, PrivacyLevel(4).Valid())
}
