package impl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/service"
)

func TestSrv_InitializeReputation(t *testing.T) {
	srv, _ := newTestService(t)

	_, err := srv.InitializeReputation(ctx, "alice")
	require.ErrorIs(t, err, service.ErrUserNotRegistered)

	register(t, srv, "alice")

	sum, err := srv.InitializeReputation(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, initialScore, sum.Score)
	require.Equal(t, entities.TierNewcomer, sum.Tier)
	require.Equal(t, "Newcomer", sum.TierName)

	_, err = srv.InitializeReputation(ctx, "alice")
	require.ErrorIs(t, err, service.ErrDuplicateInitialization)

	history, err := srv.ReputationHistory(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.EqualValues(t, initialScore, history[0].Delta)
}

func TestSrv_AwardProfileCompletionBonus(t *testing.T) {
	srv, _ := newTestService(t)

	_, err := srv.AwardProfileCompletionBonus(ctx, "alice")
	require.ErrorIs(t, err, service.ErrUserNotRegistered)

	register(t, srv, "alice")

	// registered but with no ledger record
	_, err = srv.AwardProfileCompletionBonus(ctx, "alice")
	require.ErrorIs(t, err, service.ErrReputationNotInitialized)

	_, err = srv.InitializeReputation(ctx, "alice")
	require.NoError(t, err)

	// the initial score already contains the bonus
	awarded, err := srv.AwardProfileCompletionBonus(ctx, "alice")
	require.NoError(t, err)
	require.False(t, awarded)

	score, err := srv.ReputationScore(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, initialScore, score)

	history, err := srv.ReputationHistory(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestSrv_AddPointsManual(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.AddPointsManual(ctx, "alice", "alice", 10, "")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = srv.AddPointsManual(ctx, testAdmin, "alice", 0, "")
	require.ErrorIs(t, err, service.ErrInvalidPoints)

	_, err = srv.AddPointsManual(ctx, testAdmin, "ghost", 10, "")
	require.ErrorIs(t, err, service.ErrUserNotRegistered)

	sum, err := srv.AddPointsManual(ctx, testAdmin, "alice", 150, "good citizen")
	require.NoError(t, err)
	require.EqualValues(t, 150, sum.Score)
	require.Equal(t, entities.TierRising, sum.Tier)

	// negative adjustments clamp at zero
	sum, err = srv.AddPointsManual(ctx, testAdmin, "alice", -1000, "")
	require.NoError(t, err)
	require.Zero(t, sum.Score)
	require.Equal(t, entities.TierNewcomer, sum.Tier)

	history, err := srv.ReputationHistory(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// newest first, the recorded delta is the requested one, not the clamped one
	require.EqualValues(t, -1000, history[0].Delta)
	require.Equal(t, "good citizen", history[1].Reason)
}

func TestSrv_ResetReputation(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.ResetReputation(ctx, "alice", "alice")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = srv.InitializeReputation(ctx, "alice")
	require.NoError(t, err)

	_, err = srv.AddPointsManual(ctx, testAdmin, "alice", 200, "")
	require.NoError(t, err)

	sum, err := srv.ResetReputation(ctx, testAdmin, "alice")
	require.NoError(t, err)
	require.EqualValues(t, initialScore, sum.Score)

	// the restored baseline includes the completion bonus
	awarded, err := srv.AwardProfileCompletionBonus(ctx, "alice")
	require.NoError(t, err)
	require.False(t, awarded)

	score, err := srv.ReputationScore(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, initialScore, score)
}

func TestSrv_ReprocessEvents(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	require.ErrorIs(t, srv.ReprocessFollowEvent(ctx, "alice", "alice", "bob"), service.ErrUnauthorized)
	require.ErrorIs(t, srv.ReprocessFollowEvent(ctx, testAdmin, "alice", "bob"), service.ErrUserNotRegistered)

	_, err := srv.InitializeReputation(ctx, "bob")
	require.NoError(t, err)

	require.NoError(t, srv.ReprocessFollowEvent(ctx, testAdmin, "alice", "bob"))
	require.NoError(t, srv.ReprocessUnfollowEvent(ctx, testAdmin, "alice", "bob"))
	require.NoError(t, srv.ReprocessBlockEvent(ctx, testAdmin, "alice", "bob"))

	score, err := srv.ReputationScore(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, initialScore+followPoints+unfollowPenalty+blockPenalty, score)
}

func TestSrv_ReputationReads(t *testing.T) {
	srv, _ := newTestService(t)

	// unknown users read as an empty ledger, not an error
	score, err := srv.ReputationScore(ctx, "ghost")
	require.NoError(t, err)
	require.Zero(t, score)

	tier, err := srv.ReputationTier(ctx, "ghost")
	require.NoError(t, err)
	require.Equal(t, entities.TierNewcomer, tier)

	r, err := srv.GetReputation(ctx, "ghost")
	require.NoError(t, err)
	require.Zero(t, r.Score)
	require.False(t, r.BonusAwarded)

	history, err := srv.ReputationHistory(ctx, "ghost", 0)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestSrv_ReputationStats(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	_, err := srv.InitializeReputation(ctx, "alice")
	require.NoError(t, err)
	_, err = srv.InitializeReputation(ctx, "bob")
	require.NoError(t, err)

	stats, err := srv.ReputationStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalUsers)
	require.EqualValues(t, 2*initialScore, stats.TotalPoints)
}

func TestSrv_HistoryBounded(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.InitializeReputation(ctx, "alice")
	require.NoError(t, err)

	for i := 0; i < historyLimit+10; i++ {
		_, err := srv.AddPointsManual(ctx, testAdmin, "alice", 1, "drip")
		require.NoError(t, err)
	}

	history, err := srv.ReputationHistory(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, history, historyLimit)

	// a smaller limit is honored, an oversized one is capped
	history, err = srv.ReputationHistory(ctx, "alice", 5)
	require.NoError(t, err)
	require.Len(t, history, 5)

	history, err = srv.ReputationHistory(ctx, "alice", historyLimit*10)
	require.NoError(t, err)
	require.Len(t, history, historyLimit)
}

func TestSrv_TierConstants(t *testing.T) {
	srv, _ := newTestService(t)

	th := srv.TierThresholds()
	require.EqualValues(t, 100, th.Rising)
	require.EqualValues(t, 500, th.Popular)
	require.EqualValues(t, 1000, th.Influencer)
	require.EqualValues(t, 5000, th.Legendary)

	pv := srv.PointValues()
	require.EqualValues(t, profileCompletionBonus, pv.ProfileCompletion)
	require.EqualValues(t, followPoints, pv.Follow)
	require.EqualValues(t, unfollowPenalty, pv.Unfollow)
	require.EqualValues(t, blockPenalty, pv.Block)

	msg, err := srv.UpdatePointValues(ctx, testAdmin, pv)
	require.NoError(t, err)
	require.Equal(t, service.NotImplemented, msg)
}
