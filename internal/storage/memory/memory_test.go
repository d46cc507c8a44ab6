package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/storage"
)

var ctx = context.Background()

func TestMem_InTx(t *testing.T) {
	s := New()

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.SetHeight(ctx, 5))
		return tx.CreateProfile(ctx, &entities.Profile{Address: "addr", Username: "name"})
	}))

	h, err := s.GetHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, h)

	p, err := s.GetProfile(ctx, "addr")
	require.NoError(t, err)
	require.Equal(t, "name", p.Username)
}

func TestMem_InTx_Rollback(t *testing.T) {
	s := New()

	require.NoError(t, s.SetHeight(ctx, 1))

	boom := errors.New("boom")

	err := s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.SetHeight(ctx, 100))
		require.NoError(t, tx.CreateProfile(ctx, &entities.Profile{Address: "addr", Username: "name"}))
		require.NoError(t, tx.CreateFollow(ctx, "a", "b", 1))
		return boom
	})
	require.ErrorIs(t, err, boom)

	h, err := s.GetHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, h)

	_, err = s.GetProfile(ctx, "addr")
	require.ErrorIs(t, err, storage.ErrNotFound)

	ok, err := s.HasFollow(ctx, "a", "b")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMem_InTx_Nested(t *testing.T) {
	s := New()

	err := s.InTx(ctx, func(tx storage.Storage) error {
		return tx.InTx(ctx, func(storage.Storage) error { return nil })
	})
	require.Error(t, err)
}

func TestMem_NotFound(t *testing.T) {
	s := New()

	_, err := s.GetProfile(ctx, "addr")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetProfileByUsername(ctx, "name")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.ErrorIs(t, s.UpdateProfile(ctx, &entities.Profile{Address: "addr"}), storage.ErrNotFound)
	require.ErrorIs(t, s.DeleteFollow(ctx, "a", "b"), storage.ErrNotFound)
	require.ErrorIs(t, s.DeleteFollowRequest(ctx, "a", "b"), storage.ErrNotFound)
	require.ErrorIs(t, s.DeleteBlock(ctx, "a", "b"), storage.ErrNotFound)
	require.ErrorIs(t, s.DeletePrivacySettings(ctx, "addr"), storage.ErrNotFound)
	require.ErrorIs(t, s.RemoveFromWhitelist(ctx, "a", "b"), storage.ErrNotFound)
	require.ErrorIs(t, s.RemoveFromBlacklist(ctx, "a", "b"), storage.ErrNotFound)
	require.ErrorIs(t, s.UpdateReputation(ctx, &entities.Reputation{Address: "addr"}), storage.ErrNotFound)

	_, err = s.GetRateCounter(ctx, "addr")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetAccessDecision(ctx, "a", "b")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMem_FollowCounts(t *testing.T) {
	s := New()

	require.NoError(t, s.CreateFollow(ctx, "a", "c", 1))
	require.NoError(t, s.CreateFollow(ctx, "b", "c", 1))
	require.NoError(t, s.CreateFollow(ctx, "c", "a", 1))

	followers, err := s.FollowerCount(ctx, "c")
	require.NoError(t, err)
	require.EqualValues(t, 2, followers)

	following, err := s.FollowingCount(ctx, "c")
	require.NoError(t, err)
	require.EqualValues(t, 1, following)

	total, err := s.CountFollows(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
}

func TestMem_ReputationHistory(t *testing.T) {
	s := New()

	for i := 1; i <= 60; i++ {
		require.NoError(t, s.AddReputationHistory(ctx, &entities.ReputationHistoryEntry{
			Address: "addr",
			Delta:   int64(i),
			Reason:  fmt.Sprintf("r%d", i),
			Height:  uint64(i),
		}))
	}

	// newest first, oldest entries beyond the cap dropped
	out, err := s.ListReputationHistory(ctx, "addr", 100)
	require.NoError(t, err)
	require.Len(t, out, 50)
	require.EqualValues(t, 60, out[0].Delta)
	require.EqualValues(t, 11, out[len(out)-1].Delta)

	out, err = s.ListReputationHistory(ctx, "addr", 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.EqualValues(t, 60, out[0].Delta)
}

func TestMem_Stats(t *testing.T) {
	s := New()

	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Address: "a", Username: "a"}))
	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Address: "b", Username: "b"}))

	users, err := s.CountProfiles(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, users)

	require.NoError(t, s.CreateReputation(ctx, &entities.Reputation{Address: "a", Score: 50}))
	require.NoError(t, s.CreateReputation(ctx, &entities.Reputation{Address: "b", Score: 150}))

	rs, err := s.GetReputationStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, rs.TotalUsers)
	require.EqualValues(t, 200, rs.TotalPoints)

	require.NoError(t, s.SetPrivacySettings(ctx, &entities.PrivacySettings{Address: "a", Level: entities.PrivacyLevelPrivate}))
	require.NoError(t, s.SetPrivacySettings(ctx, &entities.PrivacySettings{Address: "b", Level: entities.PrivacyLevelPublic}))

	ps, err := s.GetPrivacyStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, ps.TotalAccounts)
	require.EqualValues(t, 1, ps.PrivateAccounts)
}
