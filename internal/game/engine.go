package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"wordrobe/internal/models"
)

// WrongFlash is how long a rejected answer stays flagged
const WrongFlash = time.Second

// Kind distinguishes word arrangement from letter spelling
type Kind int

const (
	KindSentence Kind = iota
	KindSpelling
)

// State is the answer state of the current item
type State int

const (
	StateArranging State = iota
	StateSuccess
)

func (s State) String() string {
	if s == StateSuccess {
		return "success"
	}
	return "arranging"
}

// Options are the collaborators an Engine needs. Zero values use the clock,
// uuid and math/rand.
type Options struct {
	Now     func() time.Time
	NewID   func() string
	Shuffle func(n int, swap func(i, j int))
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Shuffle == nil {
		o.Shuffle = rand.Shuffle
	}
	return o
}

// SubmitResult reports the outcome of a submission
type SubmitResult struct {
	Correct    bool
	FirstSolve bool
}

// SpeechResult reports the outcome of a speaking attempt
type SpeechResult struct {
	Match      bool
	FirstBonus bool
}

// View is a read-only snapshot of an engine
type View struct {
	Prompt    string         `json:"prompt"`
	Available []models.Token `json:"available"`
	Placed    []models.Token `json:"placed"`
	State     string         `json:"state"`
	Wrong     bool           `json:"wrong"`
}

// Engine is the answer state machine for one item. It is not safe for
// concurrent use.
type Engine struct {
	kind   Kind
	prompt string
	target []string
	answer string
	opts   Options

	available []models.Token
	placed    []models.Token
	state     State
	solved    bool
	bonus     bool
	wrongTill time.Time
}

// NewSentenceEngine starts an engine that arranges the words of s
func NewSentenceEngine(s models.Sentence, opts Options) *Engine {
	return newEngine(KindSentence, s.Korean, s.English, s.Target(), opts)
}

// NewSpellingEngine starts an engine that spells w letter by letter
func NewSpellingEngine(w models.VocabWord, opts Options) *Engine {
	upper := strings.ToUpper(w.English)
	var letters []string
	for _, r := range upper {
		if r == ' ' {
			continue
		}
		letters = append(letters, string(r))
	}
	return newEngine(KindSpelling, w.Korean, letters, w.English, opts)
}

func newEngine(kind Kind, prompt string, target []string, answer string, opts Options) *Engine {
	e := &Engine{
		kind:   kind,
		prompt: prompt,
		target: target,
		answer: answer,
		opts:   opts.withDefaults(),
	}
	e.deal()
	return e
}

func (e *Engine) deal() {
	e.available = make([]models.Token, 0, len(e.target))
	for _, text := range e.target {
		e.available = append(e.available, models.Token{ID: e.opts.NewID(), Text: text})
	}
	e.opts.Shuffle(len(e.available), func(i, j int) {
		e.available[i], e.available[j] = e.available[j], e.available[i]
	})
	e.placed = nil
}

// Answer is the text spoken for hints and prompts
func (e *Engine) Answer() string { return e.answer }

// Prompt is the Korean cue shown to the player
func (e *Engine) Prompt() string { return e.prompt }

// Kind returns the engine kind
func (e *Engine) Kind() Kind { return e.kind }

// State returns the current answer state
func (e *Engine) State() State { return e.state }

// Solved reports whether the item has been answered correctly
func (e *Engine) Solved() bool { return e.state == StateSuccess }

// IsWrong reports whether the last submission was rejected less than
// WrongFlash ago
func (e *Engine) IsWrong() bool {
	return e.opts.Now().Before(e.wrongTill)
}

// Select moves an available token to the end of the answer
func (e *Engine) Select(tokenID string) error {
	if e.state != StateArranging {
		return models.ErrItemSolved
	}
	for i, tok := range e.available {
		if tok.ID == tokenID {
			e.available = append(e.available[:i], e.available[i+1:]...)
			e.placed = append(e.placed, tok)
			e.wrongTill = time.Time{}
			return nil
		}
	}
	return fmt.Errorf("token %s: %w", tokenID, models.ErrNotFound)
}

// Deselect returns the placed token at index to the pool as a new token
func (e *Engine) Deselect(index int) error {
	if e.state != StateArranging {
		return models.ErrItemSolved
	}
	if index < 0 || index >= len(e.placed) {
		return fmt.Errorf("placed index %d out of range: %w", index, models.ErrInvalidInput)
	}
	text := e.placed[index].Text
	e.placed = append(e.placed[:index], e.placed[index+1:]...)
	e.available = append(e.available, models.Token{ID: e.opts.NewID(), Text: text})
	return nil
}

// Reset returns every token to the pool and reshuffles it
func (e *Engine) Reset() error {
	if e.state != StateArranging {
		return models.ErrItemSolved
	}
	e.deal()
	return nil
}

// Submit checks the placed tokens against the target
func (e *Engine) Submit() SubmitResult {
	if e.state == StateSuccess {
		return SubmitResult{Correct: true}
	}

	if e.built() != e.expected() {
		e.wrongTill = e.opts.Now().Add(WrongFlash)
		return SubmitResult{}
	}

	e.state = StateSuccess
	e.wrongTill = time.Time{}
	first := !e.solved
	e.solved = true
	return SubmitResult{Correct: true, FirstSolve: first}
}

// ScoreSpeech checks a spoken transcript against the answer. The bonus is
// reported once per item.
func (e *Engine) ScoreSpeech(transcript string) SpeechResult {
	if !MatchTranscript(e.answer, transcript) {
		return SpeechResult{}
	}
	first := !e.bonus
	e.bonus = true
	return SpeechResult{Match: true, FirstBonus: first}
}

// CanHint reports whether a hint may be bought right now
func (e *Engine) CanHint() error {
	if e.state == StateSuccess {
		return models.ErrItemSolved
	}
	if e.IsWrong() {
		return fmt.Errorf("answer is flagged wrong: %w", models.ErrHintUnavailable)
	}
	return nil
}

// View returns a snapshot safe to hand to callers
func (e *Engine) View() View {
	return View{
		Prompt:    e.prompt,
		Available: append([]models.Token{}, e.available...),
		Placed:    append([]models.Token{}, e.placed...),
		State:     e.state.String(),
		Wrong:     e.IsWrong(),
	}
}

func (e *Engine) built() string {
	texts := make([]string, len(e.placed))
	for i, tok := range e.placed {
		texts[i] = tok.Text
	}
	if e.kind == KindSpelling {
		return strings.Join(texts, "")
	}
	return strings.Join(texts, " ")
}

func (e *Engine) expected() string {
	if e.kind == KindSpelling {
		return strings.Join(e.target, "")
	}
	return strings.Join(e.target, " ")
}
