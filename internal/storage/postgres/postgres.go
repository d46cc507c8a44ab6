// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const historyLimit = 50

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	Address     string `db:"address"`
	Username    string `db:"username"`
	DisplayName string `db:"display_name"`
	Bio         string `db:"bio"`
	AvatarURL   string `db:"avatar_url"`
	IsPrivate   bool   `db:"is_private"`
	CreatedAt   uint64 `db:"created_at"`
	UpdatedAt   uint64 `db:"updated_at"`
}

type reputationDTO struct {
	Address      string `db:"address"`
	Score        uint64 `db:"score"`
	BonusAwarded bool   `db:"bonus_awarded"`
	CreatedAt    uint64 `db:"created_at"`
	UpdatedAt    uint64 `db:"updated_at"`
}

type historyDTO struct {
	Address string `db:"address"`
	Delta   int64  `db:"delta"`
	Reason  string `db:"reason"`
	Height  uint64 `db:"height"`
}

type privacySettingsDTO struct {
	Address             string `db:"address"`
	Level               uint8  `db:"level"`
	AllowFollowRequests bool   `db:"allow_follow_requests"`
	ShowFollowerCount   bool   `db:"show_follower_count"`
	ShowFollowingCount  bool   `db:"show_following_count"`
	ShowProfileToPublic bool   `db:"show_profile_to_public"`
	AllowDirectMessages bool   `db:"allow_direct_messages"`
	AutoApproveFollower bool   `db:"auto_approve_follower"`
	UpdatedAt           uint64 `db:"updated_at"`
}

type accessDecisionDTO struct {
	Owner    string `db:"owner"`
	Accessor string `db:"accessor"`
	Allowed  bool   `db:"allowed"`
	Height   uint64 `db:"height"`
}

// New creates new instance of storage.
func New(db *sqlx.DB) storage.Storage {
	return pg{ext: db}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetHeight(ctx context.Context) (uint64, error) {
	var h uint64
	if err := sqlx.GetContext(ctx, s.ext, &h, `SELECT height FROM height`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return h, nil
}

func (s pg) SetHeight(ctx context.Context, h uint64) error {
	if _, err := s.ext.ExecContext(ctx, `UPDATE height SET height=$1`, h); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, address string) (*entities.Profile, error) {
	return s.getProfile(ctx, `WHERE address=$1`, address)
}

func (s pg) GetProfileByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	return s.getProfile(ctx, `WHERE username=$1`, username)
}

func (s pg) getProfile(ctx context.Context, where string, arg interface{}) (*entities.Profile, error) {
	var p profileDTO
	err := sqlx.GetContext(ctx, s.ext, &p, fmt.Sprintf(`
		SELECT address, username, display_name, bio, avatar_url, is_private, created_at, updated_at
		FROM profile %s`, where), arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Profile{
		Address:     p.Address,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		IsPrivate:   p.IsPrivate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	_, err := s.ext.ExecContext(ctx, `
		INSERT INTO profile(address, username, display_name, bio, avatar_url, is_private, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.Address, p.Username, p.DisplayName, p.Bio, p.AvatarURL, p.IsPrivate, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) UpdateProfile(ctx context.Context, p *entities.Profile) error {
	res, err := s.ext.ExecContext(ctx, `
		UPDATE profile
		SET username=$2, display_name=$3, bio=$4, avatar_url=$5, is_private=$6, updated_at=$7
		WHERE address=$1`,
		p.Address, p.Username, p.DisplayName, p.Bio, p.AvatarURL, p.IsPrivate, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return rowsAffected(res)
}

func (s pg) CountProfiles(ctx context.Context) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM profile`)
}

func (s pg) CreateFollow(ctx context.Context, follower, followee string, height uint64) error {
	return s.createEdge(ctx, `INSERT INTO follow(follower, followee, height) VALUES($1, $2, $3)`, follower, followee, height)
}

func (s pg) DeleteFollow(ctx context.Context, follower, followee string) error {
	return s.deleteEdge(ctx, `DELETE FROM follow WHERE follower=$1 AND followee=$2`, follower, followee)
}

func (s pg) HasFollow(ctx context.Context, follower, followee string) (bool, error) {
	return s.hasEdge(ctx, `SELECT EXISTS(SELECT 1 FROM follow WHERE follower=$1 AND followee=$2)`, follower, followee)
}

func (s pg) FollowerCount(ctx context.Context, address string) (uint32, error) {
	c, err := s.count(ctx, `SELECT COUNT(*) FROM follow WHERE followee=$1`, address)
	return uint32(c), err
}

func (s pg) FollowingCount(ctx context.Context, address string) (uint32, error) {
	c, err := s.count(ctx, `SELECT COUNT(*) FROM follow WHERE follower=$1`, address)
	return uint32(c), err
}

func (s pg) CountFollows(ctx context.Context) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM follow`)
}

func (s pg) CreateFollowRequest(ctx context.Context, requester, target string, height uint64) error {
	return s.createEdge(ctx, `INSERT INTO follow_request(requester, target, height) VALUES($1, $2, $3)`, requester, target, height)
}

func (s pg) DeleteFollowRequest(ctx context.Context, requester, target string) error {
	return s.deleteEdge(ctx, `DELETE FROM follow_request WHERE requester=$1 AND target=$2`, requester, target)
}

func (s pg) HasFollowRequest(ctx context.Context, requester, target string) (bool, error) {
	return s.hasEdge(ctx, `SELECT EXISTS(SELECT 1 FROM follow_request WHERE requester=$1 AND target=$2)`, requester, target)
}

func (s pg) CreateBlock(ctx context.Context, blocker, blocked string, height uint64) error {
	return s.createEdge(ctx, `INSERT INTO block_edge(blocker, blocked, height) VALUES($1, $2, $3)`, blocker, blocked, height)
}

func (s pg) DeleteBlock(ctx context.Context, blocker, blocked string) error {
	return s.deleteEdge(ctx, `DELETE FROM block_edge WHERE blocker=$1 AND blocked=$2`, blocker, blocked)
}

func (s pg) HasBlock(ctx context.Context, blocker, blocked string) (bool, error) {
	return s.hasEdge(ctx, `SELECT EXISTS(SELECT 1 FROM block_edge WHERE blocker=$1 AND blocked=$2)`, blocker, blocked)
}

func (s pg) GetRateCounter(ctx context.Context, address string) (*entities.RateCounter, error) {
	var c struct {
		WindowStart uint64 `db:"window_start"`
		Count       uint32 `db:"count"`
	}

	err := sqlx.GetContext(ctx, s.ext, &c, `SELECT window_start, count FROM rate_counter WHERE address=$1`, address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.RateCounter{WindowStart: c.WindowStart, Count: c.Count}, nil
}

func (s pg) SetRateCounter(ctx context.Context, address string, c *entities.RateCounter) error {
	_, err := s.ext.ExecContext(ctx, `
		INSERT INTO rate_counter(address, window_start, count) VALUES($1, $2, $3)
		ON CONFLICT(address) DO UPDATE SET window_start=EXCLUDED.window_start, count=EXCLUDED.count`,
		address, c.WindowStart, c.Count)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetReputation(ctx context.Context, address string) (*entities.Reputation, error) {
	var r reputationDTO
	err := sqlx.GetContext(ctx, s.ext, &r, `
		SELECT address, score, bonus_awarded, created_at, updated_at
		FROM reputation WHERE address=$1`, address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Reputation{
		Address:      r.Address,
		Score:        r.Score,
		BonusAwarded: r.BonusAwarded,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

func (s pg) CreateReputation(ctx context.Context, r *entities.Reputation) error {
	_, err := s.ext.ExecContext(ctx, `
		INSERT INTO reputation(address, score, bonus_awarded, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5)`,
		r.Address, r.Score, r.BonusAwarded, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) UpdateReputation(ctx context.Context, r *entities.Reputation) error {
	res, err := s.ext.ExecContext(ctx, `
		UPDATE reputation SET score=$2, bonus_awarded=$3, updated_at=$4 WHERE address=$1`,
		r.Address, r.Score, r.BonusAwarded, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return rowsAffected(res)
}

func (s pg) AddReputationHistory(ctx context.Context, e *entities.ReputationHistoryEntry) error {
	_, err := s.ext.ExecContext(ctx, `
		INSERT INTO reputation_history(address, delta, reason, height) VALUES($1, $2, $3, $4)`,
		e.Address, e.Delta, e.Reason, e.Height)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	// keep the trail bounded
	_, err = s.ext.ExecContext(ctx, `
		DELETE FROM reputation_history
		WHERE id IN (
			SELECT id FROM reputation_history WHERE address=$1 ORDER BY id DESC OFFSET $2
		)`, e.Address, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	return nil
}

func (s pg) ListReputationHistory(ctx context.Context, address string, limit uint32) ([]*entities.ReputationHistoryEntry, error) {
	var h []*historyDTO
	err := sqlx.SelectContext(ctx, s.ext, &h, `
		SELECT address, delta, reason, height FROM reputation_history
		WHERE address=$1 ORDER BY id DESC LIMIT $2`, address, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ReputationHistoryEntry, len(h))
	for i, v := range h {
		out[i] = &entities.ReputationHistoryEntry{
			Address: v.Address,
			Delta:   v.Delta,
			Reason:  v.Reason,
			Height:  v.Height,
		}
	}

	return out, nil
}

func (s pg) GetReputationStats(ctx context.Context) (*entities.ReputationStats, error) {
	var out entities.ReputationStats
	err := sqlx.GetContext(ctx, s.ext, &out.TotalUsers, `SELECT COUNT(*) FROM reputation`)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	err = sqlx.GetContext(ctx, s.ext, &out.TotalPoints, `SELECT COALESCE(SUM(score), 0) FROM reputation`)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &out, nil
}

func (s pg) GetPrivacySettings(ctx context.Context, address string) (*entities.PrivacySettings, error) {
	var ps privacySettingsDTO
	err := sqlx.GetContext(ctx, s.ext, &ps, `
		SELECT address, level, allow_follow_requests, show_follower_count, show_following_count,
			show_profile_to_public, allow_direct_messages, auto_approve_follower, updated_at
		FROM privacy_settings WHERE address=$1`, address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.PrivacySettings{
		Address:             ps.Address,
		Level:               entities.PrivacyLevel(ps.Level),
		AllowFollowRequests: ps.AllowFollowRequests,
		ShowFollowerCount:   ps.ShowFollowerCount,
		ShowFollowingCount:  ps.ShowFollowingCount,
		ShowProfileToPublic: ps.ShowProfileToPublic,
		AllowDirectMessages: ps.AllowDirectMessages,
		AutoApproveFollower: ps.AutoApproveFollower,
		UpdatedAt:           ps.UpdatedAt,
	}, nil
}

func (s pg) SetPrivacySettings(ctx context.Context, ps *entities.PrivacySettings) error {
	_, err := s.ext.ExecContext(ctx, `
		INSERT INTO privacy_settings(address, level, allow_follow_requests, show_follower_count,
			show_following_count, show_profile_to_public, allow_direct_messages, auto_approve_follower, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT(address) DO UPDATE SET
			level=EXCLUDED.level,
			allow_follow_requests=EXCLUDED.allow_follow_requests,
			show_follower_count=EXCLUDED.show_follower_count,
			show_following_count=EXCLUDED.show_following_count,
			show_profile_to_public=EXCLUDED.show_profile_to_public,
			allow_direct_messages=EXCLUDED.allow_direct_messages,
			auto_approve_follower=EXCLUDED.auto_approve_follower,
			updated_at=EXCLUDED.updated_at`,
		ps.Address, uint8(ps.Level), ps.AllowFollowRequests, ps.ShowFollowerCount, ps.ShowFollowingCount,
		ps.ShowProfileToPublic, ps.AllowDirectMessages, ps.AutoApproveFollower, ps.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeletePrivacySettings(ctx context.Context, address string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM privacy_settings WHERE address=$1`, address)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return rowsAffected(res)
}

func (s pg) GetPrivacyStats(ctx context.Context) (*entities.PrivacyStats, error) {
	var out entities.PrivacyStats
	err := sqlx.GetContext(ctx, s.ext, &out.TotalAccounts, `SELECT COUNT(*) FROM privacy_settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	err = sqlx.GetContext(ctx, s.ext, &out.PrivateAccounts,
		`SELECT COUNT(*) FROM privacy_settings WHERE level=$1`, uint8(entities.PrivacyLevelPrivate))
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &out, nil
}

func (s pg) AddToWhitelist(ctx context.Context, owner, address string, height uint64) error {
	return s.createEdge(ctx, `INSERT INTO whitelist(owner, address, height) VALUES($1, $2, $3)`, owner, address, height)
}

func (s pg) RemoveFromWhitelist(ctx context.Context, owner, address string) error {
	return s.deleteEdge(ctx, `DELETE FROM whitelist WHERE owner=$1 AND address=$2`, owner, address)
}

func (s pg) IsWhitelisted(ctx context.Context, owner, address string) (bool, error) {
	return s.hasEdge(ctx, `SELECT EXISTS(SELECT 1 FROM whitelist WHERE owner=$1 AND address=$2)`, owner, address)
}

func (s pg) AddToBlacklist(ctx context.Context, owner, address string, height uint64) error {
	return s.createEdge(ctx, `INSERT INTO blacklist(owner, address, height) VALUES($1, $2, $3)`, owner, address, height)
}

func (s pg) RemoveFromBlacklist(ctx context.Context, owner, address string) error {
	return s.deleteEdge(ctx, `DELETE FROM blacklist WHERE owner=$1 AND address=$2`, owner, address)
}

func (s pg) IsBlacklisted(ctx context.Context, owner, address string) (bool, error) {
	return s.hasEdge(ctx, `SELECT EXISTS(SELECT 1 FROM blacklist WHERE owner=$1 AND address=$2)`, owner, address)
}

func (s pg) SetAccessDecision(ctx context.Context, d *entities.AccessDecision) error {
	_, err := s.ext.ExecContext(ctx, `
		INSERT INTO access_decision(owner, accessor, allowed, height) VALUES($1, $2, $3, $4)
		ON CONFLICT(owner, accessor) DO UPDATE SET allowed=EXCLUDED.allowed, height=EXCLUDED.height`,
		d.Owner, d.Accessor, d.Allowed, d.Height)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetAccessDecision(ctx context.Context, owner, accessor string) (*entities.AccessDecision, error) {
	var d accessDecisionDTO
	err := sqlx.GetContext(ctx, s.ext, &d, `
		SELECT owner, accessor, allowed, height FROM access_decision WHERE owner=$1 AND accessor=$2`,
		owner, accessor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.AccessDecision{
		Owner:    d.Owner,
		Accessor: d.Accessor,
		Allowed:  d.Allowed,
		Height:   d.Height,
	}, nil
}

func (s pg) createEdge(ctx context.Context, query string, args ...interface{}) error {
	if _, err := s.ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) deleteEdge(ctx context.Context, query, a, b string) error {
	res, err := s.ext.ExecContext(ctx, query, a, b)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return rowsAffected(res)
}

func (s pg) hasEdge(ctx context.Context, query, a, b string) (bool, error) {
	var ok bool
	if err := sqlx.GetContext(ctx, s.ext, &ok, query, a, b); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return ok, nil
}

func (s pg) count(ctx context.Context, query string, args ...interface{}) (uint64, error) {
	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, query, args...); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func rowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}
