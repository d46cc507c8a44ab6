package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/onsocial/trustd/internal/entities"
)

func (s server) setPrivacySettings(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req PrivacySettingsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	ps, err := s.s.SetPrivacySettings(r.Context(), caller, entities.PrivacySettings{
		Level:               entities.PrivacyLevel(req.Level),
		AllowFollowRequests: req.AllowFollowRequests,
		ShowFollowerCount:   req.ShowFollowerCount,
		ShowFollowingCount:  req.ShowFollowingCount,
		ShowProfileToPublic: req.ShowProfileToPublic,
		AllowDirectMessages: req.AllowDirectMessages,
		AutoApproveFollower: req.AutoApproveFollower,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newPrivacySettingsResponse(ps))
}

func (s server) getPrivacySettings(w http.ResponseWriter, r *http.Request) {
	ps, err := s.s.PrivacySettingsOf(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newPrivacySettingsResponse(ps))
}

func (s server) addToWhitelist(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.s.AddToWhitelist(r.Context(), caller, chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, ListChangeResponse{Owner: res.Owner, Address: res.Address, Status: res.Status})
}

func (s server) removeFromWhitelist(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.s.RemoveFromWhitelist(r.Context(), caller, chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, ListChangeResponse{Owner: res.Owner, Address: res.Address, Status: res.Status})
}

func (s server) addToBlacklist(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.s.AddToBlacklist(r.Context(), caller, chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, ListChangeResponse{Owner: res.Owner, Address: res.Address, Status: res.Status})
}

func (s server) removeFromBlacklist(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	res, err := s.s.RemoveFromBlacklist(r.Context(), caller, chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, ListChangeResponse{Owner: res.Owner, Address: res.Address, Status: res.Status})
}

func (s server) checkAccess(w http.ResponseWriter, r *http.Request) {
	accessor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	target := chi.URLParam(r, "target")

	var (
		allowed bool
		err     error
	)

	switch kind := r.URL.Query().Get("kind"); kind {
	case "", "profile":
		allowed, err = s.s.CanAccessProfile(r.Context(), accessor, target)
	case "follower-count":
		allowed, err = s.s.CanSeeFollowerCount(r.Context(), accessor, target)
	case "following-count":
		allowed, err = s.s.CanSeeFollowingCount(r.Context(), accessor, target)
	case "direct-message":
		allowed, err = s.s.CanSendDirectMessage(r.Context(), accessor, target)
	default:
		writeError(w, r, http.StatusBadRequest, "unknown check kind")
		return
	}

	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: allowed})
}

func (s server) getLastAccessDecision(w http.ResponseWriter, r *http.Request) {
	owner, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	d, err := s.s.LastAccessDecision(r.Context(), owner, chi.URLParam(r, "accessor"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, AccessDecisionResponse{
		Owner:    d.Owner,
		Accessor: d.Accessor,
		Allowed:  d.Allowed,
		Height:   d.Height,
	})
}

func (s server) getPrivacyRecommendations(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	rec, err := s.s.PrivacyRecommendations(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, PrivacyRecommendationResponse{
		Address:        rec.Address,
		Level:          uint8(rec.Level),
		FollowerCount:  rec.FollowerCount,
		FollowingCount: rec.FollowingCount,
		SuggestedLevel: uint8(rec.SuggestedLevel),
		Suggestion:     rec.Suggestion,
	})
}

func (s server) getPrivacyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.s.PrivacyStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, PrivacyStatsResponse{
		TotalAccounts:   stats.TotalAccounts,
		PrivateAccounts: stats.PrivateAccounts,
	})
}

func (s server) emergencyPrivacyReset(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := s.s.EmergencyPrivacyReset(r.Context(), caller, chi.URLParam(r, "address")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: true})
}

func (s server) updatePrivacyParameters(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req PrivacyParamsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	msg, err := s.s.UpdatePrivacyParameters(r.Context(), caller, req.MaxWhitelist, req.MaxBlacklist)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, MessageResponse{Message: msg})
}
