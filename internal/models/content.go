package models

import "strings"

// Sentence is a Korean prompt with the English tokens in their only correct order
type Sentence struct {
	Korean  string   `json:"korean" yaml:"korean"`
	English []string `json:"english" yaml:"english"`
}

// Target returns the English answer joined by single spaces
func (s Sentence) Target() string {
	return strings.Join(s.English, " ")
}

// Valid reports whether the sentence can be played
func (s Sentence) Valid() bool {
	return strings.TrimSpace(s.Korean) != "" && len(s.English) > 0
}

// VocabWord is a single word to spell from its Korean meaning
type VocabWord struct {
	Korean  string `json:"korean" yaml:"korean"`
	English string `json:"english" yaml:"english"`
	Level   int    `json:"level" yaml:"level"`
}

// Level is a playable set of sentences
type Level struct {
	ID          int        `json:"id" yaml:"id"`
	Description string     `json:"description" yaml:"description"`
	Sentences   []Sentence `json:"sentences" yaml:"sentences"`
}

// VocabLevel is a playable set of words
type VocabLevel struct {
	ID          int         `json:"id" yaml:"id"`
	Description string      `json:"description" yaml:"description"`
	Words       []VocabWord `json:"words" yaml:"words"`
}

// LevelSummary is what a level picker shows
type LevelSummary struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Curated     bool   `json:"curated"`
}

// Token is one selectable unit (word or letter) in an answer
type Token struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
