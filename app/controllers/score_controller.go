package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"facebeat/app/dto"
	"facebeat/app/services"
)

type ScoreController struct {
	Scores       *services.ScoreService
	DefaultLimit int
}

func NewScoreController(scores *services.ScoreService, defaultLimit int) *ScoreController {
	return &ScoreController{Scores: scores, DefaultLimit: defaultLimit}
}

func (c *ScoreController) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.ScoreRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UserID == "" || req.SongID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"missing userId or songId"}`))
		return
	}
	if _, err := c.Scores.Submit(req.UserID, req.SongID, req.Score); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScore):
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"score must be non-negative"}`))
		case errors.Is(err, services.ErrUnknownSong):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown song"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Ranking serves the leaderboard. Optional query params: songId scopes the
// board to one song, limit caps the row count (default from config).
func (c *ScoreController) Ranking(w http.ResponseWriter, r *http.Request) {
	limit := c.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	var songID *uint
	if raw := r.URL.Query().Get("songId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid songId"}`))
			return
		}
		v := uint(id)
		songID = &v
	}

	entries, err := c.Scores.TopN(limit, songID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSong) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown song"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}
