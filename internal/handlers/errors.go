package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"wordrobe/internal/audio"
	"wordrobe/internal/models"
	"wordrobe/internal/security"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		slog.Error(logMsg, "error", err)
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

// clientErrors maps sentinel errors to the status returned for them
var clientErrors = []struct {
	err    error
	status int
}{
	{models.ErrInvalidInput, http.StatusBadRequest},
	{security.ErrInvalidToken, http.StatusUnauthorized},
	{models.ErrNotOwned, http.StatusForbidden},
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrNoContentAvailable, http.StatusNotFound},
	{models.ErrInsufficientBalance, http.StatusPaymentRequired},
	{models.ErrAlreadyOwned, http.StatusConflict},
	{models.ErrItemSolved, http.StatusConflict},
	{models.ErrHintUnavailable, http.StatusConflict},
	{models.ErrNoActiveSession, http.StatusConflict},
	{models.ErrRecognitionFailed, http.StatusUnprocessableEntity},
	{models.ErrSpeechUnsupported, http.StatusNotImplemented},
	{audio.ErrNotInitialized, http.StatusServiceUnavailable},
}

// handleServiceError writes the status for a known error, or a logged 500
func handleServiceError(w http.ResponseWriter, err error) {
	var verr *validationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: models.ErrInvalidInput.Error(), Details: verr.fields})
		return
	}

	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			respondJSON(w, ce.status, errorResponse{Error: err.Error()})
			return
		}
	}

	respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "unhandled error", err)
}
