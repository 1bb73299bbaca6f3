package handlers

import (
	"net/http"

	"github.com/rs/cors"

	"wordrobe/internal/security"
)

// CORS wraps next with the cross-origin policy for the API. Every method
// registered in RegisterRoutes must be listed here.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", security.CSRFHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler(next)
}
