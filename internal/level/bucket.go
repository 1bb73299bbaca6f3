package level

import (
	"sort"
	"strings"
	"unicode/utf8"

	"wordrobe/internal/models"
)

const (
	bucketCount   = 10
	minBucketSize = 3
	// a bucket overlaps the next one by this many items
	bucketOverlap = 2
)

// Difficulty scores a sentence by the rune length of its prompt and answer
func Difficulty(s models.Sentence) int {
	return utf8.RuneCountInString(s.Korean) + utf8.RuneCountInString(strings.Join(s.English, " "))
}

// Bucket returns the slice of pool that matches levelID, after ordering the
// pool by ascending Difficulty. Pools smaller than the minimum bucket size
// are returned whole. The order of equally difficult sentences is not part of
// the contract.
func Bucket(pool []models.Sentence, levelID int) []models.Sentence {
	n := len(pool)
	if n < minBucketSize {
		return append([]models.Sentence(nil), pool...)
	}
	if levelID < 1 {
		levelID = 1
	}

	sorted := append([]models.Sentence(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Difficulty(sorted[i]) < Difficulty(sorted[j])
	})

	bucketSize := max(minBucketSize, n/bucketCount)
	levelIndex := min(levelID-1, bucketCount-1)
	start := min(levelIndex*bucketSize, n-minBucketSize)
	end := min(start+bucketSize+bucketOverlap, n)

	return sorted[start:end]
}
