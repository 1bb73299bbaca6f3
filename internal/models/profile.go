package models

// PlayerProfile is the persisted state of one player
type PlayerProfile struct {
	PlayerID           string            `json:"player_id"`
	Nickname           string            `json:"nickname"`
	Points             int               `json:"points"`
	Levels             map[GameMode]int  `json:"levels"`
	Owned              []string          `json:"owned"`
	EquippedAvatar     string            `json:"equipped_avatar"`
	EquippedBackground string            `json:"equipped_background"`
	GameCleared        map[GameMode]bool `json:"game_cleared"`
}

// LevelFor returns the current level of a mode, defaulting to 1
func (p *PlayerProfile) LevelFor(mode GameMode) int {
	if lvl, ok := p.Levels[mode]; ok && lvl >= 1 {
		return lvl
	}
	return 1
}

// Owns reports whether id is in the owned set
func (p *PlayerProfile) Owns(id string) bool {
	for _, owned := range p.Owned {
		if owned == id {
			return true
		}
	}
	return false
}

// DailyStats counts problems solved on one local date
type DailyStats struct {
	Date               string `json:"date"`
	ProblemsSolved     int    `json:"problemsSolved"`
	SentencesCompleted int    `json:"sentencesCompleted"`
	WordsCompleted     int    `json:"wordsCompleted"`
	ListeningCompleted int    `json:"listeningCompleted"`
}

// NewDailyStats returns zeroed stats for date
func NewDailyStats(date string) DailyStats {
	return DailyStats{Date: date}
}

// Record increments the counters for a solved problem in mode
func (s *DailyStats) Record(mode GameMode) {
	s.ProblemsSolved++
	switch mode {
	case ModeSentence:
		s.SentencesCompleted++
	case ModeWord:
		s.WordsCompleted++
	case ModeListening:
		s.ListeningCompleted++
	}
}
