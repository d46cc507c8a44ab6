package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/onsocial/trustd/internal/service"
)

func (s server) initializeReputation(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	sum, err := s.s.InitializeReputation(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newReputationResponse(sum))
}

func (s server) awardProfileCompletionBonus(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	awarded, err := s.s.AwardProfileCompletionBonus(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: awarded})
}

func (s server) getReputation(w http.ResponseWriter, r *http.Request) {
	rep, err := s.s.GetReputation(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	t := rep.Tier()

	writeOK(w, r, ReputationResponse{
		Address:  rep.Address,
		Score:    rep.Score,
		Tier:     uint8(t),
		TierName: t.Name(),
	})
}

func (s server) getReputationHistory(w http.ResponseWriter, r *http.Request) {
	var limit uint32
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "failed to parse limit")
			return
		}
		limit = uint32(parsed)
	}

	history, err := s.s.ReputationHistory(r.Context(), chi.URLParam(r, "address"), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := ReputationHistoryResponse{History: make([]ReputationHistoryEntry, 0, len(history))}
	for _, e := range history {
		out.History = append(out.History, ReputationHistoryEntry{
			Delta:  e.Delta,
			Reason: e.Reason,
			Height: e.Height,
		})
	}

	writeOK(w, r, out)
}

func (s server) getReputationParams(w http.ResponseWriter, r *http.Request) {
	var out ReputationParamsResponse

	th := s.s.TierThresholds()
	out.Thresholds.Rising = th.Rising
	out.Thresholds.Popular = th.Popular
	out.Thresholds.Influencer = th.Influencer
	out.Thresholds.Legendary = th.Legendary

	pv := s.s.PointValues()
	out.Points.ProfileCompletion = pv.ProfileCompletion
	out.Points.Follow = pv.Follow
	out.Points.Unfollow = pv.Unfollow
	out.Points.Block = pv.Block

	writeOK(w, r, out)
}

func (s server) getReputationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.s.ReputationStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, ReputationStatsResponse{
		TotalUsers:  stats.TotalUsers,
		TotalPoints: stats.TotalPoints,
	})
}

func (s server) addPointsManual(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req AddPointsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	sum, err := s.s.AddPointsManual(r.Context(), caller, req.Address, req.Delta, req.Reason)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newReputationResponse(sum))
}

func (s server) resetReputation(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	sum, err := s.s.ResetReputation(r.Context(), caller, chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, newReputationResponse(sum))
}

func (s server) reprocessEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req ReprocessEventRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	var err error
	switch req.Event {
	case "follow":
		err = s.s.ReprocessFollowEvent(r.Context(), caller, req.Subject, req.Object)
	case "unfollow":
		err = s.s.ReprocessUnfollowEvent(r.Context(), caller, req.Subject, req.Object)
	case "block":
		err = s.s.ReprocessBlockEvent(r.Context(), caller, req.Subject, req.Object)
	default:
		writeError(w, r, http.StatusBadRequest, "unknown event")
		return
	}

	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, FlagResponse{Result: true})
}

func (s server) updatePointValues(w http.ResponseWriter, r *http.Request) {
	caller, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req PointValuesRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "failed to decode json")
		return
	}

	msg, err := s.s.UpdatePointValues(r.Context(), caller, service.PointValues{
		ProfileCompletion: req.ProfileCompletion,
		Follow:            req.Follow,
		Unfollow:          req.Unfollow,
		Block:             req.Block,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, MessageResponse{Message: msg})
}
