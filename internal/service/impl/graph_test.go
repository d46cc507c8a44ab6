package impl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/service"
	"github.com/onsocial/trustd/internal/storage"
	"github.com/onsocial/trustd/internal/storage/memory"
)

const testAdmin = "admin"

var ctx = context.Background()

func newTestService(t *testing.T) (service.Service, storage.Storage) {
	t.Helper()

	s := memory.New()
	require.NoError(t, s.SetHeight(ctx, 1))

	return New(s, Config{Admin: testAdmin}), s
}

func register(t *testing.T, srv service.Service, address string) {
	t.Helper()

	_, err := srv.Register(ctx, address, service.ProfileParams{Username: "u-" + address})
	require.NoError(t, err)
}

func TestSrv_Register(t *testing.T) {
	srv, s := newTestService(t)

	p, err := srv.Register(ctx, "alice", service.ProfileParams{
		Username:    "alice",
		DisplayName: "Alice",
		Bio:         "hi",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", p.Address)
	require.EqualValues(t, 1, p.CreatedAt)

	_, err = srv.Register(ctx, "alice", service.ProfileParams{Username: "alice2"})
	require.ErrorIs(t, err, service.ErrAlreadyRegistered)

	_, err = srv.Register(ctx, "bob", service.ProfileParams{Username: ""})
	require.ErrorIs(t, err, service.ErrInvalidUsername)

	_, err = srv.Register(ctx, "bob", service.ProfileParams{Username: "alice"})
	require.ErrorIs(t, err, service.ErrInvalidUsername)

	// a failed registration leaves nothing behind
	_, err = s.GetProfile(ctx, "bob")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSrv_UpdateProfile(t *testing.T) {
	srv, _ := newTestService(t)

	_, err := srv.UpdateProfile(ctx, "alice", service.ProfileParams{Username: "alice"})
	require.ErrorIs(t, err, service.ErrUserNotRegistered)

	register(t, srv, "alice")
	register(t, srv, "bob")

	// keeping your own username is not a conflict
	p, err := srv.UpdateProfile(ctx, "alice", service.ProfileParams{Username: "u-alice", Bio: "updated"})
	require.NoError(t, err)
	require.Equal(t, "updated", p.Bio)

	_, err = srv.UpdateProfile(ctx, "alice", service.ProfileParams{Username: "u-bob"})
	require.ErrorIs(t, err, service.ErrInvalidUsername)
}

func TestSrv_Follow(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	_, err := srv.Follow(ctx, "alice", "ghost")
	require.ErrorIs(t, err, service.ErrUserNotRegistered)

	_, err = srv.Follow(ctx, "alice", "alice")
	require.ErrorIs(t, err, service.ErrSelfFollowNotAllowed)

	res, err := srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Equal(t, entities.Following, res.Status)

	ok, err := srv.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.ErrorIs(t, err, service.ErrAlreadyFollowing)
}

func TestSrv_Follow_AwardsPoints(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	_, err := srv.InitializeReputation(ctx, "bob")
	require.NoError(t, err)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)

	score, err := srv.ReputationScore(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, initialScore+followPoints, score)

	// follower without a ledger record accrues nothing, silently
	score, err = srv.ReputationScore(ctx, "alice")
	require.NoError(t, err)
	require.Zero(t, score)
}

func TestSrv_Follow_PrivateTarget(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.Register(ctx, "bob", service.ProfileParams{Username: "bob", IsPrivate: true})
	require.NoError(t, err)

	res, err := srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Equal(t, entities.RequestSent, res.Status)

	ok, err := srv.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = srv.HasPendingRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.ErrorIs(t, err, service.ErrDuplicateRequest)
}

func TestSrv_Follow_PrivateAutoApprove(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.Register(ctx, "bob", service.ProfileParams{Username: "bob", IsPrivate: true})
	require.NoError(t, err)

	ps := entities.DefaultPrivacySettings("bob")
	ps.AutoApproveFollower = true
	_, err = srv.SetPrivacySettings(ctx, "bob", ps)
	require.NoError(t, err)

	res, err := srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Equal(t, entities.Following, res.Status)
}

func TestSrv_FollowRequestLifecycle(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "carol")

	_, err := srv.Register(ctx, "bob", service.ProfileParams{Username: "bob", IsPrivate: true})
	require.NoError(t, err)

	_, err = srv.InitializeReputation(ctx, "bob")
	require.NoError(t, err)

	_, err = srv.ApproveFollowRequest(ctx, "bob", "alice")
	require.ErrorIs(t, err, service.ErrRequestNotFound)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = srv.Follow(ctx, "carol", "bob")
	require.NoError(t, err)

	res, err := srv.ApproveFollowRequest(ctx, "bob", "alice")
	require.NoError(t, err)
	require.Equal(t, entities.Following, res.Status)
	require.Equal(t, "alice", res.Follower)

	ok, err := srv.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	require.True(t, ok)

	// approval fires the follow hook
	score, err := srv.ReputationScore(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, initialScore+followPoints, score)

	require.NoError(t, srv.RejectFollowRequest(ctx, "bob", "carol"))

	ok, err = srv.HasPendingRequest(ctx, "carol", "bob")
	require.NoError(t, err)
	require.False(t, ok)

	// rejection costs the target nothing
	score, err = srv.ReputationScore(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, initialScore+followPoints, score)

	require.ErrorIs(t, srv.RejectFollowRequest(ctx, "bob", "carol"), service.ErrRequestNotFound)
}

func TestSrv_Unfollow(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	_, err := srv.InitializeReputation(ctx, "bob")
	require.NoError(t, err)

	require.ErrorIs(t, srv.Unfollow(ctx, "alice", "bob"), service.ErrNotFollowing)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, srv.Unfollow(ctx, "alice", "bob"))

	ok, err := srv.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	require.False(t, ok)

	score, err := srv.ReputationScore(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, initialScore+followPoints+unfollowPenalty, score)
}

func TestSrv_Block(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	_, err := srv.InitializeReputation(ctx, "bob")
	require.NoError(t, err)

	require.ErrorIs(t, srv.Block(ctx, "alice", "alice"), service.ErrSelfFollowNotAllowed)
	require.ErrorIs(t, srv.Block(ctx, "alice", "ghost"), service.ErrUserNotRegistered)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = srv.Follow(ctx, "bob", "alice")
	require.NoError(t, err)

	require.NoError(t, srv.Block(ctx, "alice", "bob"))
	require.ErrorIs(t, srv.Block(ctx, "alice", "bob"), service.ErrAlreadyBlocked)

	// both edges are severed
	ok, err := srv.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = srv.IsFollowing(ctx, "bob", "alice")
	require.NoError(t, err)
	require.False(t, ok)

	// the followed target takes the penalty on top of the lost-follower events
	score, err := srv.ReputationScore(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, initialScore+followPoints+blockPenalty, score)

	// neither side can follow while the block stands
	_, err = srv.Follow(ctx, "bob", "alice")
	require.ErrorIs(t, err, service.ErrBlocked)
	_, err = srv.Follow(ctx, "alice", "bob")
	require.ErrorIs(t, err, service.ErrBlocked)

	require.ErrorIs(t, srv.Unblock(ctx, "bob", "alice"), service.ErrNotBlocked)
	require.NoError(t, srv.Unblock(ctx, "alice", "bob"))

	_, err = srv.Follow(ctx, "bob", "alice")
	require.NoError(t, err)
}

func TestSrv_Block_NoPenaltyWithoutEdge(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	_, err := srv.InitializeReputation(ctx, "bob")
	require.NoError(t, err)

	require.NoError(t, srv.Block(ctx, "alice", "bob"))

	score, err := srv.ReputationScore(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, initialScore, score)
}

func TestSrv_Block_ClearsPendingRequests(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.Register(ctx, "bob", service.ProfileParams{Username: "bob", IsPrivate: true})
	require.NoError(t, err)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, srv.Block(ctx, "bob", "alice"))

	ok, err := srv.HasPendingRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSrv_RateLimit(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.SetHeight(ctx, 1))

	srv := New(s, Config{Admin: testAdmin, RateLimitWindow: 10, RateLimitMaxActions: 3})

	register(t, srv, "alice")
	for i := 0; i < 4; i++ {
		register(t, srv, fmt.Sprintf("t%d", i))
	}

	for i := 0; i < 3; i++ {
		_, err := srv.Follow(ctx, "alice", fmt.Sprintf("t%d", i))
		require.NoError(t, err)
	}

	_, err := srv.Follow(ctx, "alice", "t3")
	require.ErrorIs(t, err, service.ErrRateLimited)

	// budget opens again once the window rolls over
	require.NoError(t, s.SetHeight(ctx, 11))

	_, err = srv.Follow(ctx, "alice", "t3")
	require.NoError(t, err)
}

func TestSrv_RateLimit_FailedCallKeepsBudget(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.SetHeight(ctx, 1))

	srv := New(s, Config{Admin: testAdmin, RateLimitWindow: 10, RateLimitMaxActions: 1})

	register(t, srv, "alice")
	register(t, srv, "bob")

	// the duplicate check fires before the budget is spent
	_, err := srv.Follow(ctx, "alice", "alice")
	require.ErrorIs(t, err, service.ErrSelfFollowNotAllowed)

	_, err = srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)
}

func TestSrv_Counts(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")
	register(t, srv, "carol")

	_, err := srv.Follow(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = srv.Follow(ctx, "carol", "bob")
	require.NoError(t, err)

	followers, err := srv.FollowerCount(ctx, "bob")
	require.NoError(t, err)
	require.EqualValues(t, 2, followers)

	following, err := srv.FollowingCount(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 1, following)

	stats, err := srv.GraphStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalUsers)
	require.EqualValues(t, 2, stats.TotalFollows)
}

func TestSrv_GraphAdminStubs(t *testing.T) {
	srv, _ := newTestService(t)

	_, err := srv.EmergencyPause(ctx, "alice")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	msg, err := srv.EmergencyPause(ctx, testAdmin)
	require.NoError(t, err)
	require.Equal(t, service.NotImplemented, msg)

	msg, err = srv.UpdateGraphParameters(ctx, testAdmin, 100, 10)
	require.NoError(t, err)
	require.Equal(t, service.NotImplemented, msg)
}

func TestSrv_GetHeight(t *testing.T) {
	srv, s := newTestService(t)

	require.NoError(t, s.SetHeight(ctx, 42))

	h, err := srv.GetHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 42, h)
}

func TestSrv_AtomicRollback(t *testing.T) {
	_, s := newTestService(t)

	boom := errors.New("boom")

	err := s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.CreateProfile(ctx, &entities.Profile{Address: "alice", Username: "alice"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.GetProfile(ctx, "alice")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
