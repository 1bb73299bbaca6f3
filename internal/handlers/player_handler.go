package handlers

import (
	"net/http"
	"time"

	"wordrobe/internal/audio"
	"wordrobe/internal/models"
	"wordrobe/internal/security"
	"wordrobe/internal/service"
)

// PlayerHandler handles profile, stats and sound settings
type PlayerHandler struct {
	players *service.PlayerService
	stats   *service.StatsService
	sounds  *audio.SoundManager
	csrf    *security.CSRFGenerator
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players *service.PlayerService, stats *service.StatsService, sounds *audio.SoundManager, csrf *security.CSRFGenerator) *PlayerHandler {
	return &PlayerHandler{
		players: players,
		stats:   stats,
		sounds:  sounds,
		csrf:    csrf,
	}
}

type createPlayerResponse struct {
	Player    models.PlayerProfile `json:"player"`
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	CSRFToken string               `json:"csrf_token"`
}

type profileResponse struct {
	models.PlayerProfile
	Muted     bool   `json:"muted"`
	CSRFToken string `json:"csrf_token"`
}

// CreatePlayer creates an anonymous profile and sets the player cookie
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	created, err := h.players.Create(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	csrfToken, err := h.csrf.GenerateToken(created.Profile.PlayerID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to generate CSRF token", err)
		return
	}

	http.SetCookie(w, security.CreatePlayerCookie(r, created.Token, created.Expires))
	respondJSON(w, http.StatusCreated, createPlayerResponse{
		Player:    created.Profile,
		Token:     created.Token,
		ExpiresAt: created.Expires,
		CSRFToken: csrfToken,
	})
}

// GetProfile returns the player's points, levels and wardrobe
func (h *PlayerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	playerID := PlayerIDFromContext(r.Context())
	profile, err := h.players.Profile(r.Context(), playerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	csrfToken, err := h.csrf.GenerateToken(playerID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to generate CSRF token", err)
		return
	}

	respondJSON(w, http.StatusOK, profileResponse{
		PlayerProfile: profile,
		Muted:         h.sounds.Muted(playerID),
		CSRFToken:     csrfToken,
	})
}

// GetTodayStats returns today's solved counters
func (h *PlayerHandler) GetTodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Today(r.Context(), PlayerIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// ToggleMute flips the player's sound effect setting
func (h *PlayerHandler) ToggleMute(w http.ResponseWriter, r *http.Request) {
	muted, err := h.sounds.ToggleMute(PlayerIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"muted": muted})
}
