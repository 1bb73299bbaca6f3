package game

import (
	"fmt"

	"wordrobe/internal/models"
)

const (
	// HintCost is the price of hearing the answer
	HintCost = 20
	// HintRate is the speech rate used for hints
	HintRate = 0.7
)

// VocabRule selects how word mode is scored
type VocabRule string

const (
	VocabFlat   VocabRule = "flat"
	VocabTiered VocabRule = "tiered"
)

// ParseVocabRule converts a config value to a VocabRule
func ParseVocabRule(s string) (VocabRule, error) {
	switch VocabRule(s) {
	case VocabFlat, VocabTiered:
		return VocabRule(s), nil
	case "":
		return VocabFlat, nil
	}
	return "", fmt.Errorf("unknown vocab scoring rule %q: %w", s, models.ErrInvalidInput)
}

// ScoringPolicy maps a solved item to the points it earns
type ScoringPolicy struct {
	Vocab VocabRule
}

// PointsFor returns the award for solving one item of mode at levelID
func (p ScoringPolicy) PointsFor(mode models.GameMode, levelID int) int {
	if mode == models.ModeWord {
		if p.Vocab == VocabTiered && levelID > 5 {
			return 20
		}
		return 10
	}

	switch {
	case levelID <= 3:
		return 10
	case levelID <= 7:
		return 20
	default:
		return 30
	}
}

// ChargeHint deducts the hint cost from balance
func ChargeHint(balance int) (int, error) {
	if balance < HintCost {
		return balance, fmt.Errorf("hint costs %d, balance %d: %w", HintCost, balance, models.ErrInsufficientBalance)
	}
	return balance - HintCost, nil
}
