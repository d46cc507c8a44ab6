package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/onsocial/trustd/internal/service"
)

func (s server) register(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	p, err := s.s.Register(r.Context(), caller, service.ProfileParams{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newProfileResponse(p))
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	p, err := s.s.UpdateProfile(r.Context(), caller, service.ProfileParams{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newProfileResponse(p))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	allowed, err := s.s.CanAccessProfile(r.Context(), principal(r), address)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !allowed {
		writeError(w, r, http.StatusForbidden, "profile is not accessible")
		return
	}

	p, err := s.s.GetProfile(r.Context(), address)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newProfileResponse(p))
}

func (s server) getFollowerCount(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	allowed, err := s.s.CanSeeFollowerCount(r.Context(), principal(r), address)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !allowed {
		writeError(w, r, http.StatusForbidden, "follower count is hidden")
		return
	}

	count, err := s.s.FollowerCount(r.Context(), address)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, CountResponse{Count: count})
}

func (s server) getFollowingCount(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	allowed, err := s.s.CanSeeFollowingCount(r.Context(), principal(r), address)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !allowed {
		writeError(w, r, http.StatusForbidden, "following count is hidden")
		return
	}

	count, err := s.s.FollowingCount(r.Context(), address)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, CountResponse{Count: count})
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.s.Follow(r.Context(), caller, chi.URLParam(r, "target"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FollowResponse{
		Follower: res.Follower,
		Followee: res.Followee,
		Status:   string(res.Status),
	})
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := s.s.Unfollow(r.Context(), caller, chi.URLParam(r, "target")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: true})
}

func (s server) getFollowEdge(w http.ResponseWriter, r *http.Request) {
	ok, err := s.s.IsFollowing(r.Context(), chi.URLParam(r, "follower"), chi.URLParam(r, "followee"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: ok})
}

func (s server) approveFollowRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.s.ApproveFollowRequest(r.Context(), caller, chi.URLParam(r, "requester"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FollowResponse{
		Follower: res.Follower,
		Followee: res.Followee,
		Status:   string(res.Status),
	})
}

func (s server) rejectFollowRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := s.s.RejectFollowRequest(r.Context(), caller, chi.URLParam(r, "requester")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: true})
}

func (s server) block(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := s.s.Block(r.Context(), caller, chi.URLParam(r, "target")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: true})
}

func (s server) unblock(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := s.s.Unblock(r.Context(), caller, chi.URLParam(r, "target")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: true})
}

func (s server) getGraphStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.s.GraphStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, GraphStatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalFollows: stats.TotalFollows,
	})
}

func (s server) emergencyPause(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	msg, err := s.s.EmergencyPause(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, MessageResponse{Message: msg})
}

func (s server) updateGraphParameters(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req GraphParamsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	msg, err := s.s.UpdateGraphParameters(r.Context(), caller, req.RateLimitWindow, req.RateLimitMaxActions)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, MessageResponse{Message: msg})
}
