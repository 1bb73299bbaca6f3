package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordrobe/internal/audio"
	"wordrobe/internal/game"
	"wordrobe/internal/level"
	"wordrobe/internal/models"
	"wordrobe/internal/repository"
)

// Speaker turns text into a playable audio file
type Speaker interface {
	Speak(ctx context.Context, text string, rate float64) (string, error)
}

// CuePlayer resolves sound effect urls for a player
type CuePlayer interface {
	URL(playerID string, cue audio.Cue) string
}

const timerSaveTimeout = 5 * time.Second

// PlayOptions tunes a PlayService
type PlayOptions struct {
	AutoAdvanceDelay time.Duration
	AudioURLPrefix   string
	Scheduler        game.Scheduler
	Engine           game.Options
}

// SessionView is what a client renders for the current item
type SessionView struct {
	SessionID   string          `json:"session_id"`
	Mode        models.GameMode `json:"mode"`
	LevelID     int             `json:"level_id"`
	Description string          `json:"description"`
	Index       int             `json:"index"`
	Count       int             `json:"count"`
	game.View
	Answer string `json:"answer,omitempty"`
}

// Outcome is the result of a play action
type Outcome struct {
	Session          SessionView `json:"session"`
	Correct          bool        `json:"correct"`
	Awarded          int         `json:"awarded"`
	Points           int         `json:"points"`
	Sound            string      `json:"sound,omitempty"`
	Audio            string      `json:"audio,omitempty"`
	Transcript       string      `json:"transcript,omitempty"`
	RecognitionError string      `json:"recognition_error,omitempty"`
	AutoAdvance      bool        `json:"auto_advance,omitempty"`
	LevelComplete    bool        `json:"level_complete,omitempty"`
	GameCleared      bool        `json:"game_cleared,omitempty"`
}

type sessionKey struct {
	playerID string
	mode     models.GameMode
}

type session struct {
	id          string
	key         sessionKey
	levelID     int
	description string
	sentences   []models.Sentence
	words       []models.VocabWord
	progress    *game.Progress
}

// PlayService runs the mini-games: one session per player and mode
type PlayService struct {
	generator *level.Generator
	profiles  *repository.ProfileRepository
	stats     *repository.StatsRepository
	scoring   game.ScoringPolicy
	speaker   Speaker
	cues      CuePlayer
	locks     *PlayerLocks
	opts      PlayOptions

	mu       sync.Mutex
	sessions map[sessionKey]*session
	closed   bool
}

// NewPlayService creates a new play service
func NewPlayService(
	generator *level.Generator,
	profiles *repository.ProfileRepository,
	stats *repository.StatsRepository,
	scoring game.ScoringPolicy,
	speaker Speaker,
	cues CuePlayer,
	locks *PlayerLocks,
	opts PlayOptions,
) *PlayService {
	if opts.Scheduler == nil {
		opts.Scheduler = game.ClockScheduler{}
	}
	if opts.AudioURLPrefix == "" {
		opts.AudioURLPrefix = "/static/audio"
	}
	return &PlayService{
		generator: generator,
		profiles:  profiles,
		stats:     stats,
		scoring:   scoring,
		speaker:   speaker,
		cues:      cues,
		locks:     locks,
		opts:      opts,
		sessions:  make(map[sessionKey]*session),
	}
}

// Levels lists the level picker entries for mode
func (s *PlayService) Levels(mode models.GameMode) []models.LevelSummary {
	return s.generator.Levels(mode)
}

// StartLevel enters a level, replacing any running session of the mode.
// levelID 0 means the player's current level.
func (s *PlayService) StartLevel(ctx context.Context, playerID string, mode models.GameMode, levelID int) (*Outcome, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	profile, err := s.profiles.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if levelID == 0 {
		levelID = profile.LevelFor(mode)
	}
	if levelID < 1 || levelID > models.MaxLevel {
		return nil, fmt.Errorf("level %d: %w", levelID, models.ErrInvalidInput)
	}

	sess, err := s.newSession(sessionKey{playerID: playerID, mode: mode}, levelID)
	if err != nil {
		return nil, err
	}
	if err := s.replaceSession(sess); err != nil {
		return nil, err
	}

	slog.Info("level started", "player", playerID, "mode", mode, "level", levelID, "items", sess.progress.Count())

	out := s.outcome(sess, profile.Points)
	out.Audio = s.prompt(ctx, sess)
	return out, nil
}

// Current returns the running session of mode
func (s *PlayService) Current(ctx context.Context, playerID string, mode models.GameMode) (*Outcome, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	sess, profile, err := s.active(ctx, playerID, mode)
	if err != nil {
		return nil, err
	}
	return s.outcome(sess, profile.Points), nil
}

// Select places an available token
func (s *PlayService) Select(ctx context.Context, playerID string, mode models.GameMode, tokenID string) (*Outcome, error) {
	return s.arrange(ctx, playerID, mode, audio.CuePop, func(e *game.Engine) error {
		return e.Select(tokenID)
	})
}

// Deselect returns the placed token at index to the pool
func (s *PlayService) Deselect(ctx context.Context, playerID string, mode models.GameMode, index int) (*Outcome, error) {
	return s.arrange(ctx, playerID, mode, audio.CueClick, func(e *game.Engine) error {
		return e.Deselect(index)
	})
}

// Reset puts every token back and reshuffles
func (s *PlayService) Reset(ctx context.Context, playerID string, mode models.GameMode) (*Outcome, error) {
	return s.arrange(ctx, playerID, mode, audio.CueClick, func(e *game.Engine) error {
		return e.Reset()
	})
}

func (s *PlayService) arrange(ctx context.Context, playerID string, mode models.GameMode, cue audio.Cue, op func(*game.Engine) error) (*Outcome, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	sess, profile, err := s.active(ctx, playerID, mode)
	if err != nil {
		return nil, err
	}
	if err := op(sess.progress.Engine()); err != nil {
		return nil, err
	}
	out := s.outcome(sess, profile.Points)
	out.Sound = s.cues.URL(playerID, cue)
	return out, nil
}

// Submit checks the current arrangement. The first correct submission of an
// item earns points and counts towards today's stats.
func (s *PlayService) Submit(ctx context.Context, playerID string, mode models.GameMode) (*Outcome, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	sess, profile, err := s.active(ctx, playerID, mode)
	if err != nil {
		return nil, err
	}

	engine := sess.progress.Engine()
	result := engine.Submit()
	if !result.Correct {
		out := s.outcome(sess, profile.Points)
		out.Sound = s.cues.URL(playerID, audio.CueFail)
		return out, nil
	}

	awarded := 0
	if result.FirstSolve {
		awarded, err = s.award(ctx, profile, mode, sess.levelID)
		if err != nil {
			return nil, err
		}
		if _, err := s.stats.Increment(ctx, playerID, mode); err != nil {
			slog.Error("failed to record daily stats", "player", playerID, "error", err)
		}
	}

	out := s.outcome(sess, profile.Points)
	out.Correct = true
	out.Awarded = awarded
	out.Sound = s.cues.URL(playerID, audio.CueSuccess)
	out.Audio = s.speakOptional(ctx, engine.Answer(), audio.NormalRate)
	return out, nil
}

// Hint speaks the answer slowly and charges game.HintCost. Nothing is
// charged when the balance is short or speech fails.
func (s *PlayService) Hint(ctx context.Context, playerID string, mode models.GameMode) (*Outcome, error) {
	if mode == models.ModeListening {
		return nil, fmt.Errorf("listening has no hints: %w", models.ErrHintUnavailable)
	}

	unlock := s.locks.Lock(playerID)
	defer unlock()

	sess, profile, err := s.active(ctx, playerID, mode)
	if err != nil {
		return nil, err
	}
	engine := sess.progress.Engine()
	if err := engine.CanHint(); err != nil {
		return nil, err
	}

	balance, err := game.ChargeHint(profile.Points)
	if err != nil {
		return nil, err
	}

	file, err := s.speaker.Speak(ctx, engine.Answer(), game.HintRate)
	if err != nil {
		return nil, fmt.Errorf("failed to speak hint: %w", err)
	}

	profile.Points = balance
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	out := s.outcome(sess, profile.Points)
	out.Awarded = -game.HintCost
	out.Audio = s.audioURL(file)
	return out, nil
}

// Speak plays the answer of the current item at normal speed for free
func (s *PlayService) Speak(ctx context.Context, playerID string, mode models.GameMode) (*Outcome, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	sess, profile, err := s.active(ctx, playerID, mode)
	if err != nil {
		return nil, err
	}
	file, err := s.speaker.Speak(ctx, sess.progress.Engine().Answer(), audio.NormalRate)
	if err != nil {
		return nil, err
	}
	out := s.outcome(sess, profile.Points)
	out.Audio = s.audioURL(file)
	return out, nil
}

// SpeechAttempt scores a spoken transcript for the current sentence. A
// recognition error counts as a miss. The first match of an item earns
// points and schedules an automatic advance.
func (s *PlayService) SpeechAttempt(ctx context.Context, playerID string, mode models.GameMode, transcript, recognitionErr string) (*Outcome, error) {
	if !mode.UsesSentences() {
		return nil, fmt.Errorf("speaking is not scored in %s mode: %w", mode, models.ErrInvalidInput)
	}

	unlock := s.locks.Lock(playerID)
	defer unlock()

	sess, profile, err := s.active(ctx, playerID, mode)
	if err != nil {
		return nil, err
	}

	if recognitionErr != "" {
		out := s.outcome(sess, profile.Points)
		out.RecognitionError = fmt.Errorf("%s: %w", recognitionErr, models.ErrRecognitionFailed).Error()
		return out, nil
	}

	result := sess.progress.Engine().ScoreSpeech(transcript)
	awarded := 0
	if result.FirstBonus {
		awarded, err = s.award(ctx, profile, mode, sess.levelID)
		if err != nil {
			return nil, err
		}
		s.scheduleAdvance(sess)
	}

	out := s.outcome(sess, profile.Points)
	out.Transcript = transcript
	out.Correct = result.Match
	out.Awarded = awarded
	out.AutoAdvance = result.FirstBonus
	if result.Match {
		out.Sound = s.cues.URL(playerID, audio.CueSuccess)
	}
	return out, nil
}

// Advance moves to the next item. Finishing the last item completes the
// level: the next level is unlocked and started, or the mode is marked
// cleared at the top level.
func (s *PlayService) Advance(ctx context.Context, playerID string, mode models.GameMode) (*Outcome, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	sess, profile, err := s.active(ctx, playerID, mode)
	if err != nil {
		return nil, err
	}

	if !sess.progress.Advance() {
		out := s.outcome(sess, profile.Points)
		out.Sound = s.cues.URL(playerID, audio.CueClick)
		out.Audio = s.prompt(ctx, sess)
		return out, nil
	}
	return s.completeLevel(ctx, sess, profile)
}

// End discards the session of mode and its pending timers
func (s *PlayService) End(playerID string, mode models.GameMode) error {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	key := sessionKey{playerID: playerID, mode: mode}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		return models.ErrNoActiveSession
	}
	sess.progress.Close()
	delete(s.sessions, key)
	return nil
}

// Dispose closes every session. The service rejects new sessions afterwards.
func (s *PlayService) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, sess := range s.sessions {
		sess.progress.Close()
		delete(s.sessions, key)
	}
	s.closed = true
}

// ActiveSessions returns the number of running sessions
func (s *PlayService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *PlayService) newSession(key sessionKey, levelID int) (*session, error) {
	sess := &session{id: uuid.NewString(), key: key, levelID: levelID}

	var count int
	var build func(int) *game.Engine
	if key.mode.UsesSentences() {
		lvl, err := s.generator.SentenceLevel(levelID)
		if err != nil {
			return nil, err
		}
		sess.description = lvl.Description
		sess.sentences = lvl.Sentences
		count = len(lvl.Sentences)
		build = func(i int) *game.Engine { return game.NewSentenceEngine(sess.sentences[i], s.opts.Engine) }
	} else {
		lvl, err := s.generator.VocabLevel(levelID)
		if err != nil {
			return nil, err
		}
		sess.description = lvl.Description
		sess.words = lvl.Words
		count = len(lvl.Words)
		build = func(i int) *game.Engine { return game.NewSpellingEngine(sess.words[i], s.opts.Engine) }
	}

	sess.progress = game.NewProgress(count, build, s.opts.Scheduler)
	return sess, nil
}

func (s *PlayService) replaceSession(sess *session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		sess.progress.Close()
		return fmt.Errorf("play service disposed: %w", models.ErrNoActiveSession)
	}
	if old, ok := s.sessions[sess.key]; ok {
		old.progress.Close()
	}
	s.sessions[sess.key] = sess
	return nil
}

func (s *PlayService) lookup(key sessionKey) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	return sess, ok
}

// active returns the running session and a freshly loaded profile
func (s *PlayService) active(ctx context.Context, playerID string, mode models.GameMode) (*session, *repository.LoadedProfile, error) {
	sess, ok := s.lookup(sessionKey{playerID: playerID, mode: mode})
	if !ok {
		return nil, nil, models.ErrNoActiveSession
	}
	profile, err := s.profiles.Load(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	return sess, profile, nil
}

func (s *PlayService) award(ctx context.Context, profile *repository.LoadedProfile, mode models.GameMode, levelID int) (int, error) {
	points := s.scoring.PointsFor(mode, levelID)
	profile.Points += points
	if err := s.profiles.Save(ctx, profile); err != nil {
		return 0, err
	}
	return points, nil
}

func (s *PlayService) completeLevel(ctx context.Context, sess *session, profile *repository.LoadedProfile) (*Outcome, error) {
	mode := sess.key.mode
	cleared := sess.levelID >= models.MaxLevel

	if cleared {
		profile.GameCleared[mode] = true
	} else if next := sess.levelID + 1; next > profile.LevelFor(mode) {
		profile.Levels[mode] = next
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	current := sess
	if !cleared {
		next, err := s.newSession(sess.key, sess.levelID+1)
		switch {
		case err == nil:
			if err := s.replaceSession(next); err != nil {
				return nil, err
			}
			current = next
		case errors.Is(err, models.ErrNoContentAvailable):
			slog.Warn("next level has no content", "mode", mode, "level", sess.levelID+1)
		default:
			return nil, err
		}
	}

	slog.Info("level completed", "player", profile.PlayerID, "mode", mode, "level", sess.levelID, "cleared", cleared)

	out := s.outcome(current, profile.Points)
	out.LevelComplete = true
	out.GameCleared = cleared
	out.Sound = s.cues.URL(profile.PlayerID, audio.CueSuccess)
	out.Audio = s.prompt(ctx, current)
	return out, nil
}

func (s *PlayService) scheduleAdvance(sess *session) {
	sess.progress.ScheduleAdvance(s.opts.AutoAdvanceDelay, func(gen uint64) {
		unlock := s.locks.Lock(sess.key.playerID)
		defer unlock()

		if cur, ok := s.lookup(sess.key); !ok || cur != sess {
			return
		}
		advanced, complete := sess.progress.AdvanceIfCurrent(gen)
		if !advanced || !complete {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timerSaveTimeout)
		defer cancel()
		profile, err := s.profiles.Load(ctx, sess.key.playerID)
		if err != nil {
			slog.Error("failed to load profile after auto advance", "player", sess.key.playerID, "error", err)
			return
		}
		if _, err := s.completeLevel(ctx, sess, profile); err != nil {
			slog.Error("failed to complete level", "player", sess.key.playerID, "error", err)
		}
	})
}

func (s *PlayService) outcome(sess *session, points int) *Outcome {
	engine := sess.progress.Engine()
	view := SessionView{
		SessionID:   sess.id,
		Mode:        sess.key.mode,
		LevelID:     sess.levelID,
		Description: sess.description,
		Index:       sess.progress.Index(),
		Count:       sess.progress.Count(),
		View:        engine.View(),
	}
	if engine.Solved() {
		view.Answer = engine.Answer()
	}
	return &Outcome{Session: view, Points: points}
}

// prompt plays the current sentence of a listening session
func (s *PlayService) prompt(ctx context.Context, sess *session) string {
	if sess.key.mode != models.ModeListening {
		return ""
	}
	return s.speakOptional(ctx, sess.progress.Engine().Answer(), audio.NormalRate)
}

// speakOptional returns an audio url or "" when speech is unavailable
func (s *PlayService) speakOptional(ctx context.Context, text string, rate float64) string {
	file, err := s.speaker.Speak(ctx, text, rate)
	if err != nil {
		if !errors.Is(err, models.ErrSpeechUnsupported) {
			slog.Warn("failed to speak", "error", err)
		}
		return ""
	}
	return s.audioURL(file)
}

func (s *PlayService) audioURL(file string) string {
	return path.Join(s.opts.AudioURLPrefix, file)
}
