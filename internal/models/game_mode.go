package models

import "fmt"

// GameMode identifies one of the mini-games
type GameMode string

const (
	ModeSentence  GameMode = "sentence"
	ModeWord      GameMode = "word"
	ModeListening GameMode = "listening"
)

// MaxLevel is the highest level a player can reach in any mode
const MaxLevel = 10

// AllModes lists every game mode
var AllModes = []GameMode{ModeSentence, ModeWord, ModeListening}

// ParseGameMode converts a path segment to a GameMode
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeSentence, ModeWord, ModeListening:
		return GameMode(s), nil
	case "vocab", "vocabulary":
		return ModeWord, nil
	case "hearing":
		return ModeListening, nil
	}
	return "", fmt.Errorf("unknown game mode %q: %w", s, ErrInvalidInput)
}

// UsesSentences reports whether the mode plays sentence content
func (m GameMode) UsesSentences() bool {
	return m == ModeSentence || m == ModeListening
}
