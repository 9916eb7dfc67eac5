package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
)

// healthHandler returns server status, unauthenticated
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// donationRequest is the payload the monitor posts after a boost
type donationRequest struct {
	EpisodeID string `json:"episode_id"`
	Amount    int64  `json:"amount"`
}

// updateDonationsHandler records the donation total for an episode
func (s *Server) updateDonationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.EpisodeID == "" {
		renderError(w, r, fmt.Errorf("episode_id is required"), http.StatusBadRequest)
		return
	}
	if req.Amount < 0 {
		renderError(w, r, fmt.Errorf("amount must be non-negative"), http.StatusBadRequest)
		return
	}

	if err := s.db.UpdateDonations(ctx, req.EpisodeID, req.Amount); err != nil {
		lgr.Printf("[ERROR] failed to update donations: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"status":     "success",
		"message":    fmt.Sprintf("donation of %d sats recorded", req.Amount),
		"episode_id": req.EpisodeID,
		"amount":     req.Amount,
	})
}

// syncHandler pulls the episode list from the hosting API and upserts it
// into the local store
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	episodes, err := s.source.Episodes(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to fetch episodes for sync: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	synced := 0
	for i := range episodes {
		if err := s.db.UpsertEpisode(ctx, &episodes[i]); err != nil {
			lgr.Printf("[ERROR] failed to upsert episode %s: %v", episodes[i].EpisodeID, err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		synced++
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("synced %d episodes", synced),
		"count":   synced,
	})
}

// listEpisodesHandler returns all stored episodes
func (s *Server) listEpisodesHandler(w http.ResponseWriter, r *http.Request) {
	episodes, err := s.db.ListEpisodes(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list episodes: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, episodes)
}

// nextEpisodeHandler returns the next scheduled episode
func (s *Server) nextEpisodeHandler(w http.ResponseWriter, r *http.Request) {
	episode, err := s.db.GetNextScheduled(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get next episode: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if episode == nil {
		renderError(w, r, fmt.Errorf("no scheduled episode"), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, episode)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
