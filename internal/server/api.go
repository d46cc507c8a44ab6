package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"github.com/onsocial/trustd/internal/entities"
	"github.com/onsocial/trustd/internal/server/middleware"
	"github.com/onsocial/trustd/internal/service"
	"github.com/onsocial/trustd/internal/storage"
)

// PrincipalHeader carries the verified caller address.
const PrincipalHeader = "X-Trustd-Principal"

// Error ...
type Error struct {
	Error string `json:"error"`
}

// HeightResponse ...
type HeightResponse struct {
	Height uint64 `json:"height"`
}

// ProfileRequest ...
type ProfileRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	IsPrivate   bool   `json:"is_private"`
}

// ProfileResponse ...
type ProfileResponse struct {
	Address     string `json:"address"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	IsPrivate   bool   `json:"is_private"`
	CreatedAt   uint64 `json:"created_at"`
	UpdatedAt   uint64 `json:"updated_at"`
}

// FollowResponse ...
type FollowResponse struct {
	Follower string `json:"follower"`
	Followee string `json:"followee"`
	Status   string `json:"status"`
}

// CountResponse ...
type CountResponse struct {
	Count uint32 `json:"count"`
}

// FlagResponse ...
type FlagResponse struct {
	Result bool `json:"result"`
}

// GraphStatsResponse ...
type GraphStatsResponse struct {
	TotalUsers   uint64 `json:"total_users"`
	TotalFollows uint64 `json:"total_follows"`
}

// ReputationResponse ...
type ReputationResponse struct {
	Address  string `json:"address"`
	Score    uint64 `json:"score"`
	Tier     uint8  `json:"tier"`
	TierName string `json:"tier_name"`
}

// ReputationHistoryResponse ...
type ReputationHistoryResponse struct {
	History []ReputationHistoryEntry `json:"history"`
}

// ReputationHistoryEntry ...
type ReputationHistoryEntry struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
	Height uint64 `json:"height"`
}

// ReputationParamsResponse ...
type ReputationParamsResponse struct {
	Thresholds struct {
		Rising     uint64 `json:"rising"`
		Popular    uint64 `json:"popular"`
		Influencer uint64 `json:"influencer"`
		Legendary  uint64 `json:"legendary"`
	} `json:"thresholds"`
	Points struct {
		ProfileCompletion uint64 `json:"profile_completion"`
		Follow            uint64 `json:"follow"`
		Unfollow          int64  `json:"unfollow"`
		Block             int64  `json:"block"`
	} `json:"points"`
}

// ReputationStatsResponse ...
type ReputationStatsResponse struct {
	TotalUsers  uint64 `json:"total_users"`
	TotalPoints uint64 `json:"total_points"`
}

// AddPointsRequest ...
type AddPointsRequest struct {
	Address string `json:"address"`
	Delta   int64  `json:"delta"`
	Reason  string `json:"reason"`
}

// ReprocessEventRequest ...
type ReprocessEventRequest struct {
	Event   string `json:"event"`
	Subject string `json:"subject"`
	Object  string `json:"object"`
}

// PointValuesRequest ...
type PointValuesRequest struct {
	ProfileCompletion uint64 `json:"profile_completion"`
	Follow            uint64 `json:"follow"`
	Unfollow          int64  `json:"unfollow"`
	Block             int64  `json:"block"`
}

// GraphParamsRequest ...
type GraphParamsRequest struct {
	RateLimitWindow     uint64 `json:"rate_limit_window"`
	RateLimitMaxActions uint32 `json:"rate_limit_max_actions"`
}

// PrivacyParamsRequest ...
type PrivacyParamsRequest struct {
	MaxWhitelist uint32 `json:"max_whitelist"`
	MaxBlacklist uint32 `json:"max_blacklist"`
}

// PrivacySettingsRequest ...
type PrivacySettingsRequest struct {
	Level               uint8 `json:"level"`
	AllowFollowRequests bool  `json:"allow_follow_requests"`
	ShowFollowerCount   bool  `json:"show_follower_count"`
	ShowFollowingCount  bool  `json:"show_following_count"`
	ShowProfileToPublic bool  `json:"show_profile_to_public"`
	AllowDirectMessages bool  `json:"allow_direct_messages"`
	AutoApproveFollower bool  `json:"auto_approve_follower"`
}

// PrivacySettingsResponse ...
type PrivacySettingsResponse struct {
	Address             string `json:"address"`
	Level               uint8  `json:"level"`
	LevelName           string `json:"level_name"`
	AllowFollowRequests bool   `json:"allow_follow_requests"`
	ShowFollowerCount   bool   `json:"show_follower_count"`
	ShowFollowingCount  bool   `json:"show_following_count"`
	ShowProfileToPublic bool   `json:"show_profile_to_public"`
	AllowDirectMessages bool   `json:"allow_direct_messages"`
	AutoApproveFollower bool   `json:"auto_approve_follower"`
	UpdatedAt           uint64 `json:"updated_at"`
}

// ListChangeResponse ...
type ListChangeResponse struct {
	Owner   string `json:"owner"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// AccessDecisionResponse ...
type AccessDecisionResponse struct {
	Owner    string `json:"owner"`
	Accessor string `json:"accessor"`
	Allowed  bool   `json:"allowed"`
	Height   uint64 `json:"height"`
}

// PrivacyRecommendationResponse ...
type PrivacyRecommendationResponse struct {
	Address        string `json:"address"`
	Level          uint8  `json:"level"`
	FollowerCount  uint32 `json:"follower_count"`
	FollowingCount uint32 `json:"following_count"`
	SuggestedLevel uint8  `json:"suggested_level"`
	Suggestion     string `json:"suggestion"`
}

// PrivacyStatsResponse ...
type PrivacyStatsResponse struct {
	TotalAccounts   uint64 `json:"total_accounts"`
	PrivateAccounts uint64 `json:"private_accounts"`
}

// MessageResponse ...
type MessageResponse struct {
	Message string `json:"message"`
}

func newProfileResponse(p *entities.Profile) ProfileResponse {
	return ProfileResponse{
		Address:     p.Address,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		IsPrivate:   p.IsPrivate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newPrivacySettingsResponse(ps *entities.PrivacySettings) PrivacySettingsResponse {
	return PrivacySettingsResponse{
		Address:             ps.Address,
		Level:               uint8(ps.Level),
		LevelName:           ps.Level.Name(),
		AllowFollowRequests: ps.AllowFollowRequests,
		ShowFollowerCount:   ps.ShowFollowerCount,
		ShowFollowingCount:  ps.ShowFollowingCount,
		ShowProfileToPublic: ps.ShowProfileToPublic,
		AllowDirectMessages: ps.AllowDirectMessages,
		AutoApproveFollower: ps.AutoApproveFollower,
		UpdatedAt:           ps.UpdatedAt,
	}
}

func newReputationResponse(sum *service.ReputationSummary) ReputationResponse {
	return ReputationResponse{
		Address:  sum.Address,
		Score:    sum.Score,
		Tier:     uint8(sum.Tier),
		TierName: sum.TierName,
	}
}

// principal extracts the verified caller address, empty when absent.
func principal(r *http.Request) string {
	return r.Header.Get(PrincipalHeader)
}

// requirePrincipal writes 401 and returns false when the header is missing.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (string, bool) {
	p := principal(r)
	if p == "" {
		writeError(w, r, http.StatusUnauthorized, "principal header is required")
		return "", false
	}

	return p, true
}

func writeOK(w http.ResponseWriter, r *http.Request, v interface{}) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, Error{Error: message})
}

// writeServiceError maps service failures to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case isValidationError(err):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrBlocked):
		writeError(w, r, http.StatusForbidden, err.Error())
	case isNotFoundError(err):
		writeError(w, r, http.StatusNotFound, err.Error())
	case isConflictError(err):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrRateLimited):
		writeError(w, r, http.StatusTooManyRequests, err.Error())
	default:
		logrus.WithError(err).WithField("request_id", middleware.GetRequestID(r.Context())).Error("internal error")
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		service.ErrInvalidUsername,
		service.ErrInvalidPrivacyLevel,
		service.ErrInvalidPoints,
		service.ErrSelfFollowNotAllowed,
		service.ErrSelfReferenceNotAllowed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func isNotFoundError(err error) bool {
	for _, target := range []error{
		service.ErrUserNotRegistered,
		service.ErrReputationNotInitialized,
		service.ErrRequestNotFound,
		service.ErrNotFollowing,
		service.ErrNotBlocked,
		service.ErrNotWhitelisted,
		service.ErrNotBlacklisted,
		service.ErrSettingsNotFound,
		storage.ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func isConflictError(err error) bool {
	for _, target := range []error{
		service.ErrAlreadyRegistered,
		service.ErrAlreadyFollowing,
		service.ErrAlreadyBlocked,
		service.ErrDuplicateRequest,
		service.ErrAlreadyWhitelisted,
		service.ErrAlreadyBlacklisted,
		service.ErrDuplicateInitialization,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
