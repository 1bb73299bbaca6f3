package game

import "strings"

// matchThreshold is the share of target words a transcript must contain
const matchThreshold = 0.6

var punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")

// MatchTranscript reports whether a recognised transcript is close enough to
// the target sentence
func MatchTranscript(target, transcript string) bool {
	targetRaw := strings.ToLower(target)
	spokenRaw := strings.ToLower(transcript)

	cleanTarget := punctuation.Replace(targetRaw)
	targetWords := strings.Fields(cleanTarget)
	if len(targetWords) == 0 {
		return false
	}

	spoken := make(map[string]struct{})
	for _, w := range strings.Fields(punctuation.Replace(spokenRaw)) {
		spoken[w] = struct{}{}
	}

	matched := 0
	for _, w := range targetWords {
		if _, ok := spoken[w]; ok {
			matched++
		}
	}

	if float64(matched)/float64(len(targetWords)) >= matchThreshold {
		return true
	}
	return strings.Contains(spokenRaw, cleanTarget)
}
