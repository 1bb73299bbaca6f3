package handlers

import (
	"net/http"

	"wordrobe/internal/store"
)

// Handlers groups everything the router serves
type Handlers struct {
	Players    *PlayerHandler
	Play       *PlayHandler
	Shop       *ShopHandler
	Middleware *Middleware
	State      store.KV
	StaticPath string
}

// RegisterRoutes adds every API route to mux
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	m := h.Middleware

	if h.StaticPath != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.StaticPath))))
	}
	mux.HandleFunc("GET /healthz", Health(h.State))

	// Players
	mux.HandleFunc("POST /api/players", m.RateLimit(h.Players.CreatePlayer))
	mux.HandleFunc("GET /api/profile", m.RequirePlayer(h.Players.GetProfile))
	mux.HandleFunc("GET /api/stats/today", m.RequirePlayer(h.Players.GetTodayStats))
	mux.HandleFunc("POST /api/sound/mute", m.RequirePlayer(h.Players.ToggleMute))

	// Games
	mux.HandleFunc("GET /api/levels/{mode}", h.Play.ListLevels)
	mux.HandleFunc("POST /api/play/{mode}/start", m.RequirePlayer(h.Play.Start))
	mux.HandleFunc("GET /api/play/{mode}", m.RequirePlayer(h.Play.Current))
	mux.HandleFunc("POST /api/play/{mode}/select", m.RequirePlayer(h.Play.Select))
	mux.HandleFunc("POST /api/play/{mode}/deselect", m.RequirePlayer(h.Play.Deselect))
	mux.HandleFunc("POST /api/play/{mode}/reset", m.RequirePlayer(h.Play.Reset))
	mux.HandleFunc("POST /api/play/{mode}/submit", m.RequirePlayer(h.Play.Submit))
	mux.HandleFunc("POST /api/play/{mode}/hint", m.RateLimit(m.RequirePlayer(h.Play.Hint)))
	mux.HandleFunc("POST /api/play/{mode}/speak", m.RequirePlayer(h.Play.Speak))
	mux.HandleFunc("POST /api/play/{mode}/speech", m.RateLimit(m.RequirePlayer(h.Play.Speech)))
	mux.HandleFunc("POST /api/play/{mode}/next", m.RequirePlayer(h.Play.Next))
	mux.HandleFunc("DELETE /api/play/{mode}", m.RequirePlayer(h.Play.End))

	// Shop
	mux.HandleFunc("GET /api/shop", m.RequirePlayer(h.Shop.ListItems))
	mux.HandleFunc("POST /api/shop/{id}/purchase", m.RateLimit(m.RequirePlayer(h.Shop.Purchase)))
	mux.HandleFunc("POST /api/shop/{id}/equip", m.RequirePlayer(h.Shop.Equip))
}

// Health reports whether the state store answers
func Health(kv store.KV) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := kv.Ping(r.Context()); err != nil {
			respondWithError(w, http.StatusServiceUnavailable, "state store unavailable", "health check failed", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
