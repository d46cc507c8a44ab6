// Package server exposes the trust layer over HTTP.
//
// All mutating endpoints act on behalf of the principal carried in the
// X-Trustd-Principal header. Identity verification happens upstream, the
// server trusts the header.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/onsocial/trustd/internal/server/middleware"
	"github.com/onsocial/trustd/internal/service"
)

const maxBodySize = 4096

const statsCacheTTL = 10 * time.Minute

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router. Stats endpoints are cached in
// the given storage.
func SetupRouter(s service.Service, r chi.Router, cache middleware.Storage, timeout time.Duration, rps rate.Limit) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		chimiddleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		middleware.BodyLimit(maxBodySize),
		middleware.RateLimit(rps, int(rps)),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/height", srv.getHeight)

		r.Post("/profiles", srv.register)
		r.Put("/profiles", srv.updateProfile)
		r.Get("/profiles/{address}", srv.getProfile)
		r.Get("/profiles/{address}/followers/count", srv.getFollowerCount)
		r.Get("/profiles/{address}/following/count", srv.getFollowingCount)

		r.Post("/follows/{target}", srv.follow)
		r.Delete("/follows/{target}", srv.unfollow)
		r.Get("/follows/{follower}/{followee}", srv.getFollowEdge)
		r.Post("/follow-requests/{requester}/approve", srv.approveFollowRequest)
		r.Post("/follow-requests/{requester}/reject", srv.rejectFollowRequest)
		r.Post("/blocks/{target}", srv.block)
		r.Delete("/blocks/{target}", srv.unblock)
		r.Get("/graph/stats", middleware.CachedWith(cache, statsCacheTTL, srv.getGraphStats))

		r.Post("/reputation", srv.initializeReputation)
		r.Post("/reputation/bonus", srv.awardProfileCompletionBonus)
		r.Get("/reputation/params", srv.getReputationParams)
		r.Get("/reputation/stats", middleware.CachedWith(cache, statsCacheTTL, srv.getReputationStats))
		r.Get("/reputation/{address}", srv.getReputation)
		r.Get("/reputation/{address}/history", srv.getReputationHistory)

		r.Put("/privacy/settings", srv.setPrivacySettings)
		r.Get("/privacy/settings/{address}", srv.getPrivacySettings)
		r.Post("/privacy/whitelist/{address}", srv.addToWhitelist)
		r.Delete("/privacy/whitelist/{address}", srv.removeFromWhitelist)
		r.Post("/privacy/blacklist/{address}", srv.addToBlacklist)
		r.Delete("/privacy/blacklist/{address}", srv.removeFromBlacklist)
		r.Get("/privacy/checks/{target}", srv.checkAccess)
		r.Get("/privacy/decisions/{accessor}", srv.getLastAccessDecision)
		r.Get("/privacy/recommendations", srv.getPrivacyRecommendations)
		r.Get("/privacy/stats", middleware.CachedWith(cache, statsCacheTTL, srv.getPrivacyStats))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/pause", srv.emergencyPause)
			r.Put("/graph-params", srv.updateGraphParameters)
			r.Post("/reputation/points", srv.addPointsManual)
			r.Post("/reputation/{address}/reset", srv.resetReputation)
			r.Post("/reputation/reprocess", srv.reprocessEvent)
			r.Put("/reputation/point-values", srv.updatePointValues)
			r.Post("/privacy/{address}/reset", srv.emergencyPrivacyReset)
			r.Put("/privacy-params", srv.updatePrivacyParameters)
		})
	})
}

func (s server) getHeight(w http.ResponseWriter, r *http.Request) {
	h, err := s.s.GetHeight(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, r, HeightResponse{Height: h})
}
