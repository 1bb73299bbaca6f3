package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"wordrobe/internal/security"
	"wordrobe/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const PlayerContextKey ContextKey = "player"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	players *service.PlayerService
	csrf    *security.CSRFGenerator
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(players *service.PlayerService, csrf *security.CSRFGenerator, limiter *security.RateLimiter) *Middleware {
	return &Middleware{
		players: players,
		csrf:    csrf,
		limiter: limiter,
	}
}

// RequirePlayer resolves the player token. Cookie-authenticated writes must
// also carry the CSRF header.
func (m *Middleware) RequirePlayer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, fromCookie := security.TokenFromRequest(r)
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}

		playerID, err := m.players.Authenticate(r.Context(), token)
		if err != nil {
			if fromCookie {
				http.SetCookie(w, security.CreateDeleteCookie(r))
			}
			slog.Debug("rejected player token", "error", err)
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}

		if fromCookie && !isSafeMethod(r.Method) {
			if !m.csrf.ValidateToken(playerID, r.Header.Get(security.CSRFHeader)) {
				respondWithError(w, http.StatusForbidden, ErrInvalidCSRFToken, "", nil)
				return
			}
		}

		ctx := context.WithValue(r.Context(), PlayerContextKey, playerID)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit rejects clients that exceed the limiter's budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			w.Header().Set("Retry-After", "60")
			respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// PlayerIDFromContext retrieves the player id set by RequirePlayer
func PlayerIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(PlayerContextKey).(string)
	return id
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
