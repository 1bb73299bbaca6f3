package security

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlayerCookieName holds the player token for browser clients
const PlayerCookieName = "wordrobe_player"

// NewPlayerID creates a new UUID for an anonymous player
func NewPlayerID() string {
	return uuid.New().String()
}

// IsSecureRequest determines if the request is over HTTPS
// Checks TLS connection, X-Forwarded-Proto header (for reverse proxies), and URL scheme
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// CreatePlayerCookie creates the player token cookie with proper security flags
func CreatePlayerCookie(r *http.Request, token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     PlayerCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// CreateDeleteCookie creates a cookie that clears the player token
func CreateDeleteCookie(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     PlayerCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
	}
}

// TokenFromRequest returns the player token and whether it came from the
// cookie. A bearer Authorization header wins over the cookie.
func TokenFromRequest(r *http.Request) (token string, fromCookie bool) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1]), false
		}
	}
	if c, err := r.Cookie(PlayerCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}
