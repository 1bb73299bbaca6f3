package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wordrobe/internal/audio"
	"wordrobe/internal/content"
	"wordrobe/internal/game"
	"wordrobe/internal/level"
	"wordrobe/internal/models"
	"wordrobe/internal/repository"
	"wordrobe/internal/security"
	"wordrobe/internal/service"
	"wordrobe/internal/store"
)

type testServer struct {
	handler http.Handler
	csrf    *security.CSRFGenerator
}

func newTestServer(t *testing.T, rate int) *testServer {
	t.Helper()

	contentStore := content.NewStore()
	contentStore.PutLevel(models.Level{ID: 1, Description: "Greetings", Sentences: []models.Sentence{
		{Korean: "안녕하세요", English: []string{"Hello"}},
	}})

	kv := store.NewMemoryStore()
	profiles := repository.NewProfileRepository(kv)
	stats := repository.NewStatsRepository(kv, nil)
	locks := service.NewPlayerLocks()
	tts := audio.NewTTSService(t.TempDir(), "", false)
	sounds := audio.NewSoundManager(t.TempDir(), "/static/audio/effects")
	if err := sounds.Init(); err != nil {
		t.Fatalf("failed to init sounds: %v", err)
	}

	generator := level.NewGenerator(contentStore, level.SourceCurated, rand.New(rand.NewPCG(7, 7)))
	play := service.NewPlayService(generator, profiles, stats, game.ScoringPolicy{}, tts, sounds, locks, service.PlayOptions{
		AutoAdvanceDelay: time.Hour,
	})
	t.Cleanup(play.Dispose)

	players := service.NewPlayerService(profiles, security.NewTokenIssuer("test-secret", time.Hour))
	csrf := security.NewCSRFGenerator("test-secret")
	limiter := security.NewRateLimiter(rate, time.Minute)
	t.Cleanup(limiter.Stop)

	mux := http.NewServeMux()
	RegisterRoutes(mux, Handlers{
		Players:    NewPlayerHandler(players, service.NewStatsService(stats), sounds, csrf),
		Play:       NewPlayHandler(play),
		Shop:       NewShopHandler(service.NewShopService(content.NewCatalog("/assets"), profiles, locks)),
		Middleware: NewMiddleware(players, csrf, limiter),
		State:      kv,
	})

	return &testServer{handler: Logging(mux), csrf: csrf}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) createPlayer(t *testing.T) createPlayerResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/players", "", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create player status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp createPlayerResponse
	decode(t, rec, &resp)
	return resp
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, want, rec.Body.String())
	}
}

func TestCreatePlayerSetsCookie(t *testing.T) {
	srv := newTestServer(t, 100)
	rec := srv.do(t, http.MethodPost, "/api/players", "", nil)
	expectStatus(t, rec, http.StatusCreated)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == security.PlayerCookieName {
			cookie = c
		}
	}
	if cookie == nil || !cookie.HttpOnly {
		t.Fatalf("expected http-only player cookie, got %+v", cookie)
	}

	var resp createPlayerResponse
	decode(t, rec, &resp)
	if resp.Token == "" || resp.CSRFToken == "" || resp.Player.Nickname == "" {
		t.Fatalf("incomplete create response: %+v", resp)
	}
	if resp.Player.EquippedAvatar != models.DefaultAvatarID {
		t.Errorf("EquippedAvatar = %q", resp.Player.EquippedAvatar)
	}
}

func TestRequirePlayer(t *testing.T) {
	srv := newTestServer(t, 100)

	expectStatus(t, srv.do(t, http.MethodGet, "/api/profile", "", nil), http.StatusUnauthorized)
	expectStatus(t, srv.do(t, http.MethodGet, "/api/profile", "not-a-token", nil), http.StatusUnauthorized)

	player := srv.createPlayer(t)
	rec := srv.do(t, http.MethodGet, "/api/profile", player.Token, nil)
	expectStatus(t, rec, http.StatusOK)

	var profile profileResponse
	decode(t, rec, &profile)
	if profile.PlayerID != player.Player.PlayerID || profile.CSRFToken != player.CSRFToken {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestCookieWritesNeedCSRF(t *testing.T) {
	srv := newTestServer(t, 100)
	player := srv.createPlayer(t)

	send := func(csrf string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/play/sentence/start", nil)
		req.AddCookie(&http.Cookie{Name: security.PlayerCookieName, Value: player.Token})
		if csrf != "" {
			req.Header.Set(security.CSRFHeader, csrf)
		}
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)
		return rec
	}

	expectStatus(t, send(""), http.StatusForbidden)
	expectStatus(t, send("wrong"), http.StatusForbidden)
	expectStatus(t, send(player.CSRFToken), http.StatusCreated)
}

func TestPlayFlow(t *testing.T) {
	srv := newTestServer(t, 100)
	player := srv.createPlayer(t)
	token := player.Token

	rec := srv.do(t, http.MethodPost, "/api/play/sentence/start", token, map[string]int{"level_id": 1})
	expectStatus(t, rec, http.StatusCreated)
	var out service.Outcome
	decode(t, rec, &out)
	if out.Session.Prompt != "안녕하세요" || len(out.Session.Available) != 1 {
		t.Fatalf("unexpected session %+v", out.Session)
	}

	// hints cost more than a new player has
	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/sentence/hint", token, nil), http.StatusPaymentRequired)

	rec = srv.do(t, http.MethodPost, "/api/play/sentence/select", token, map[string]string{"token_id": out.Session.Available[0].ID})
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &out)
	if out.Sound != "/static/audio/effects/pop.wav" {
		t.Errorf("Sound = %q", out.Sound)
	}

	rec = srv.do(t, http.MethodPost, "/api/play/sentence/submit", token, nil)
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &out)
	if !out.Correct || out.Awarded != 10 || out.Points != 10 {
		t.Fatalf("unexpected submit outcome %+v", out)
	}

	rec = srv.do(t, http.MethodGet, "/api/stats/today", token, nil)
	expectStatus(t, rec, http.StatusOK)
	var stats models.DailyStats
	decode(t, rec, &stats)
	if stats.SentencesCompleted != 1 {
		t.Errorf("SentencesCompleted = %d, want 1", stats.SentencesCompleted)
	}

	rec = srv.do(t, http.MethodPost, "/api/play/sentence/next", token, nil)
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &out)
	if !out.LevelComplete {
		t.Errorf("expected level completion, got %+v", out)
	}

	expectStatus(t, srv.do(t, http.MethodDelete, "/api/play/sentence", token, nil), http.StatusNoContent)
	expectStatus(t, srv.do(t, http.MethodGet, "/api/play/sentence", token, nil), http.StatusConflict)
}

func TestPlayValidation(t *testing.T) {
	srv := newTestServer(t, 100)
	token := srv.createPlayer(t).Token

	rec := srv.do(t, http.MethodPost, "/api/play/sentence/start", token, map[string]int{"level_id": 11})
	expectStatus(t, rec, http.StatusBadRequest)
	var body errorResponse
	decode(t, rec, &body)
	if len(body.Details) != 1 {
		t.Errorf("expected one validation detail, got %v", body.Details)
	}

	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/chess/start", token, nil), http.StatusBadRequest)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/sentence/start", token, map[string]string{"bogus": "x"}), http.StatusBadRequest)

	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/sentence/start", token, nil), http.StatusCreated)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/sentence/deselect", token, map[string]any{}), http.StatusBadRequest)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/sentence/deselect", token, map[string]int{"index": 0}), http.StatusBadRequest)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/sentence/speech", token, map[string]string{}), http.StatusBadRequest)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/play/sentence/speak", token, nil), http.StatusNotImplemented)

	rec = srv.do(t, http.MethodPost, "/api/play/sentence/speech", token, map[string]string{"error": "no-speech"})
	expectStatus(t, rec, http.StatusOK)
	var out service.Outcome
	decode(t, rec, &out)
	if out.RecognitionError == "" || out.Correct {
		t.Errorf("expected recognition failure, got %+v", out)
	}
}

func TestShopRoutes(t *testing.T) {
	srv := newTestServer(t, 100)
	token := srv.createPlayer(t).Token

	rec := srv.do(t, http.MethodGet, "/api/shop?type=background", token, nil)
	expectStatus(t, rec, http.StatusOK)
	var entries []service.ShopEntry
	decode(t, rec, &entries)
	if len(entries) != 13 {
		t.Fatalf("expected 13 backgrounds, got %d", len(entries))
	}

	expectStatus(t, srv.do(t, http.MethodGet, "/api/shop?type=hat", token, nil), http.StatusBadRequest)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/shop/avatar01/purchase", token, nil), http.StatusPaymentRequired)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/shop/bg_room_01/equip", token, nil), http.StatusForbidden)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/shop/missing/equip", token, nil), http.StatusNotFound)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/shop/bg_default/equip", token, nil), http.StatusOK)
}

func TestToggleMute(t *testing.T) {
	srv := newTestServer(t, 100)
	token := srv.createPlayer(t).Token

	rec := srv.do(t, http.MethodPost, "/api/sound/mute", token, nil)
	expectStatus(t, rec, http.StatusOK)
	var body map[string]bool
	decode(t, rec, &body)
	if !body["muted"] {
		t.Errorf("expected muted, got %v", body)
	}
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, 1)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/players", "", nil), http.StatusCreated)
	expectStatus(t, srv.do(t, http.MethodPost, "/api/players", "", nil), http.StatusTooManyRequests)
}

func TestHealthAndLevels(t *testing.T) {
	srv := newTestServer(t, 100)
	expectStatus(t, srv.do(t, http.MethodGet, "/healthz", "", nil), http.StatusOK)

	rec := srv.do(t, http.MethodGet, "/api/levels/sentence", "", nil)
	expectStatus(t, rec, http.StatusOK)
	var levels []models.LevelSummary
	decode(t, rec, &levels)
	if len(levels) != models.MaxLevel {
		t.Fatalf("expected %d levels, got %d", models.MaxLevel, len(levels))
	}
}

func TestPlayerIDFromContext(t *testing.T) {
	if id := PlayerIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
	ctx := context.WithValue(context.Background(), PlayerContextKey, "p1")
	if id := PlayerIDFromContext(ctx); id != "p1" {
		t.Errorf("PlayerIDFromContext = %q", id)
	}
}
