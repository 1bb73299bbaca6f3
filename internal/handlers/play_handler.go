package handlers

import (
	"net/http"

	"wordrobe/internal/models"
	"wordrobe/internal/service"
)

// PlayHandler exposes the mini-games
type PlayHandler struct {
	play *service.PlayService
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(play *service.PlayService) *PlayHandler {
	return &PlayHandler{play: play}
}

type startRequest struct {
	LevelID int `json:"level_id" validate:"omitempty,min=1,max=10"`
}

type selectRequest struct {
	TokenID string `json:"token_id" validate:"required,max=64"`
}

type deselectRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

type speechRequest struct {
	Transcript string `json:"transcript" validate:"required_without=Error,max=500"`
	Error      string `json:"error" validate:"max=100"`
}

// ListLevels returns the level picker entries of a mode
func (h *PlayHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	mode, err := models.ParseGameMode(r.PathValue("mode"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.play.Levels(mode))
}

// Start enters a level
func (h *PlayHandler) Start(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	var req startRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		handleServiceError(w, err)
		return
	}
	h.respond(w, http.StatusCreated)(h.play.StartLevel(r.Context(), PlayerIDFromContext(r.Context()), mode, req.LevelID))
}

// Current returns the running session
func (h *PlayHandler) Current(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK)(h.play.Current(r.Context(), PlayerIDFromContext(r.Context()), mode))
}

// Select places a token
func (h *PlayHandler) Select(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	var req selectRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		handleServiceError(w, err)
		return
	}
	h.respond(w, http.StatusOK)(h.play.Select(r.Context(), PlayerIDFromContext(r.Context()), mode, req.TokenID))
}

// Deselect removes a placed token
func (h *PlayHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	var req deselectRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		handleServiceError(w, err)
		return
	}
	h.respond(w, http.StatusOK)(h.play.Deselect(r.Context(), PlayerIDFromContext(r.Context()), mode, *req.Index))
}

// Reset returns every token to the pool
func (h *PlayHandler) Reset(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK)(h.play.Reset(r.Context(), PlayerIDFromContext(r.Context()), mode))
}

// Submit checks the answer
func (h *PlayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK)(h.play.Submit(r.Context(), PlayerIDFromContext(r.Context()), mode))
}

// Hint buys a slow reading of the answer
func (h *PlayHandler) Hint(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK)(h.play.Hint(r.Context(), PlayerIDFromContext(r.Context()), mode))
}

// Speak plays the answer for free
func (h *PlayHandler) Speak(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK)(h.play.Speak(r.Context(), PlayerIDFromContext(r.Context()), mode))
}

// Speech scores a speaking attempt
func (h *PlayHandler) Speech(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	var req speechRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		handleServiceError(w, err)
		return
	}
	h.respond(w, http.StatusOK)(h.play.SpeechAttempt(r.Context(), PlayerIDFromContext(r.Context()), mode, req.Transcript, req.Error))
}

// Next advances to the next item
func (h *PlayHandler) Next(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK)(h.play.Advance(r.Context(), PlayerIDFromContext(r.Context()), mode))
}

// End discards the session
func (h *PlayHandler) End(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(w, r)
	if !ok {
		return
	}
	if err := h.play.End(PlayerIDFromContext(r.Context()), mode); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayHandler) respond(w http.ResponseWriter, status int) func(*service.Outcome, error) {
	return func(out *service.Outcome, err error) {
		if err != nil {
			handleServiceError(w, err)
			return
		}
		respondJSON(w, status, out)
	}
}

func parseMode(w http.ResponseWriter, r *http.Request) (models.GameMode, bool) {
	mode, err := models.ParseGameMode(r.PathValue("mode"))
	if err != nil {
		handleServiceError(w, err)
		return "", false
	}
	return mode, true
}
