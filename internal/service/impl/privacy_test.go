package impl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/service"
	"github.com/onsocial/trustd/internal/storage"
)

func TestSrv_SetPrivacySettings(t *testing.T) {
	srv, _ := newTestService(t)

	ps := entities.DefaultPrivacySettings("alice")

	_, err := srv.SetPrivacySettings(ctx, "alice", ps)
	require.ErrorIs(t, err, service.ErrUserNotRegistered)

	register(t, srv, "alice")

	ps.Level = entities.PrivacyLevel(42)
	_, err = srv.SetPrivacySettings(ctx, "alice", ps)
	require.ErrorIs(t, err, service.ErrInvalidPrivacyLevel)

	ps.Level = entities.PrivacyLevelFollowersOnly
	ps.ShowFollowerCount = false
	got, err := srv.SetPrivacySettings(ctx, "alice", ps)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.UpdatedAt)

	stored, err := srv.PrivacySettingsOf(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, entities.PrivacyLevelFollowersOnly, stored.Level)
	require.False(t, stored.ShowFollowerCount)
}

func TestSrv_PrivacySettingsOf_Defaults(t *testing.T) {
	srv, _ := newTestService(t)

	ps, err := srv.PrivacySettingsOf(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, entities.PrivacyLevelPublic, ps.Level)
	require.True(t, ps.ShowProfileToPublic)
	require.True(t, ps.AllowDirectMessages)
	require.False(t, ps.AutoApproveFollower)
}

func TestSrv_Whitelist(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.AddToWhitelist(ctx, "alice", "alice")
	require.ErrorIs(t, err, service.ErrSelfReferenceNotAllowed)

	res, err := srv.AddToWhitelist(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Equal(t, listStatusWhitelisted, res.Status)

	_, err = srv.AddToWhitelist(ctx, "alice", "bob")
	require.ErrorIs(t, err, service.ErrAlreadyWhitelisted)

	ok, err := srv.IsWhitelisted(ctx, "alice", "bob")
	require.NoError(t, err)
	require.True(t, ok)

	res, err = srv.RemoveFromWhitelist(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Equal(t, listStatusRemoved, res.Status)

	_, err = srv.RemoveFromWhitelist(ctx, "alice", "bob")
	require.ErrorIs(t, err, service.ErrNotWhitelisted)
}

func TestSrv_Blacklist(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	res, err := srv.AddToBlacklist(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Equal(t, listStatusBlacklisted, res.Status)

	_, err = srv.AddToBlacklist(ctx, "alice", "bob")
	require.ErrorIs(t, err, service.ErrAlreadyBlacklisted)

	_, err = srv.RemoveFromBlacklist(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = srv.RemoveFromBlacklist(ctx, "alice", "bob")
	require.ErrorIs(t, err, service.ErrNotBlacklisted)
}

func TestSrv_ListsStayDisjoint(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	_, err := srv.AddToWhitelist(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = srv.AddToBlacklist(ctx, "alice", "bob")
	require.NoError(t, err)

	ok, err := srv.IsWhitelisted(ctx, "alice", "bob")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = srv.AddToWhitelist(ctx, "alice", "bob")
	require.NoError(t, err)

	ok, err = srv.IsBlacklisted(ctx, "alice", "bob")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSrv_CanAccessProfile(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "owner")
	register(t, srv, "viewer")
	register(t, srv, "follower")

	_, err := srv.Follow(ctx, "follower", "owner")
	require.NoError(t, err)

	// defaults are public
	ok, err := srv.CanAccessProfile(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	ps := entities.DefaultPrivacySettings("owner")
	ps.Level = entities.PrivacyLevelFollowersOnly
	_, err = srv.SetPrivacySettings(ctx, "owner", ps)
	require.NoError(t, err)

	ok, err = srv.CanAccessProfile(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = srv.CanAccessProfile(ctx, "follower", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = srv.CanAccessProfile(ctx, "owner", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	// whitelisting opens a private profile to a non-follower
	ps.Level = entities.PrivacyLevelPrivate
	_, err = srv.SetPrivacySettings(ctx, "owner", ps)
	require.NoError(t, err)

	ok, err = srv.CanAccessProfile(ctx, "follower", "owner")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = srv.AddToWhitelist(ctx, "owner", "viewer")
	require.NoError(t, err)

	ok, err = srv.CanAccessProfile(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	// blacklisting beats the whitelist and every level
	_, err = srv.AddToBlacklist(ctx, "owner", "viewer")
	require.NoError(t, err)

	ok, err = srv.CanAccessProfile(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSrv_CanAccessProfile_HiddenProfile(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "owner")

	ps := entities.DefaultPrivacySettings("owner")
	ps.ShowProfileToPublic = false
	_, err := srv.SetPrivacySettings(ctx, "owner", ps)
	require.NoError(t, err)

	// the toggle hides the profile from everyone, the owner included
	ok, err := srv.CanAccessProfile(ctx, "owner", "owner")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSrv_LastAccessDecision(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "owner")

	_, err := srv.LastAccessDecision(ctx, "owner", "viewer")
	require.ErrorIs(t, err, storage.ErrNotFound)

	ok, err := srv.CanAccessProfile(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	d, err := srv.LastAccessDecision(ctx, "owner", "viewer")
	require.NoError(t, err)
	require.True(t, d.Allowed)
	require.EqualValues(t, 1, d.Height)

	_, err = srv.AddToBlacklist(ctx, "owner", "viewer")
	require.NoError(t, err)

	_, err = srv.CanAccessProfile(ctx, "viewer", "owner")
	require.NoError(t, err)

	d, err = srv.LastAccessDecision(ctx, "owner", "viewer")
	require.NoError(t, err)
	require.False(t, d.Allowed)
}

func TestSrv_Toggles(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "owner")

	ok, err := srv.CanSeeFollowerCount(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	ps := entities.DefaultPrivacySettings("owner")
	ps.ShowFollowerCount = false
	ps.AllowDirectMessages = false
	_, err = srv.SetPrivacySettings(ctx, "owner", ps)
	require.NoError(t, err)

	ok, err = srv.CanSeeFollowerCount(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = srv.CanSeeFollowingCount(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = srv.CanSendDirectMessage(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.False(t, ok)

	// blacklisting denies regardless of the toggles
	_, err = srv.AddToBlacklist(ctx, "owner", "viewer")
	require.NoError(t, err)

	ok, err = srv.CanSeeFollowingCount(ctx, "viewer", "owner")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSrv_PrivacyRecommendations(t *testing.T) {
	srv, _ := newTestService(t)

	_, err := srv.PrivacyRecommendations(ctx, "ghost")
	require.ErrorIs(t, err, service.ErrUserNotRegistered)

	register(t, srv, "alice")

	rec, err := srv.PrivacyRecommendations(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, entities.PrivacyLevelPublic, rec.Level)
	require.Equal(t, rec.Level, rec.SuggestedLevel)

	ps := entities.DefaultPrivacySettings("alice")
	ps.Level = entities.PrivacyLevelPrivate
	_, err = srv.SetPrivacySettings(ctx, "alice", ps)
	require.NoError(t, err)

	rec, err = srv.PrivacyRecommendations(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, entities.PrivacyLevelPublic, rec.SuggestedLevel)
}

func TestSrv_PrivacyStats(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")
	register(t, srv, "bob")

	ps := entities.DefaultPrivacySettings("alice")
	ps.Level = entities.PrivacyLevelPrivate
	_, err := srv.SetPrivacySettings(ctx, "alice", ps)
	require.NoError(t, err)

	_, err = srv.SetPrivacySettings(ctx, "bob", entities.DefaultPrivacySettings("bob"))
	require.NoError(t, err)

	stats, err := srv.PrivacyStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalAccounts)
	require.EqualValues(t, 1, stats.PrivateAccounts)
}

func TestSrv_EmergencyPrivacyReset(t *testing.T) {
	srv, _ := newTestService(t)

	register(t, srv, "alice")

	require.ErrorIs(t, srv.EmergencyPrivacyReset(ctx, "alice", "alice"), service.ErrUnauthorized)
	require.ErrorIs(t, srv.EmergencyPrivacyReset(ctx, testAdmin, "alice"), service.ErrSettingsNotFound)

	ps := entities.DefaultPrivacySettings("alice")
	ps.Level = entities.PrivacyLevelPrivate
	_, err := srv.SetPrivacySettings(ctx, "alice", ps)
	require.NoError(t, err)

	require.NoError(t, srv.EmergencyPrivacyReset(ctx, testAdmin, "alice"))

	got, err := srv.PrivacySettingsOf(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, entities.PrivacyLevelPublic, got.Level)

	msg, err := srv.UpdatePrivacyParameters(ctx, testAdmin, 100, 100)
	require.NoError(t, err)
	require.Equal(t, service.NotImplemented, msg)
}
