package level

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordrobe/internal/content"
	"wordrobe/internal/models"
)

func makePool(n int) []models.Sentence {
	pool := make([]models.Sentence, n)
	for i := range pool {
		// English grows one letter per index so difficulty is strictly increasing
		pool[i] = models.Sentence{Korean: "가", English: []string{strings.Repeat("a", i+1)}}
	}
	return pool
}

func TestDifficulty(t *testing.T) {
	s := models.Sentence{Korean: "안녕하세요!", English: []string{"Hello", "there"}}
	// 6 runes of Korean + "Hello there"
	assert.Equal(t, 6+11, Difficulty(s))
}

func TestBucketNonEmptyForAllLevels(t *testing.T) {
	for _, n := range []int{30, 31, 57, 100, 250} {
		pool := makePool(n)
		for lvl := 1; lvl <= models.MaxLevel; lvl++ {
			bucket := Bucket(pool, lvl)
			assert.GreaterOrEqual(t, len(bucket), 3, "n=%d level=%d", n, lvl)
		}
	}
}

func TestBucketBounds(t *testing.T) {
	pool := makePool(100)

	first := Bucket(pool, 1)
	require.Len(t, first, 12)
	assert.Equal(t, 1, len(first[0].English[0]))

	// levels past the last bucket reuse it
	assert.Equal(t, Bucket(pool, 10), Bucket(pool, 25))

	// level ids below 1 are clamped
	assert.Equal(t, first, Bucket(pool, 0))

	last := Bucket(pool, 10)
	assert.Len(t, last, 10)
	assert.Equal(t, 100, len(last[len(last)-1].English[0]))
}

func TestBucketSmallPool(t *testing.T) {
	pool := makePool(2)
	assert.Len(t, Bucket(pool, 5), 2)
	assert.Empty(t, Bucket(nil, 1))

	small := makePool(5)
	// start is clamped to n-3
	bucket := Bucket(small, 9)
	assert.Len(t, bucket, 3)
}

func TestBucketDoesNotMutatePool(t *testing.T) {
	pool := []models.Sentence{
		{Korean: "긴 문장입니다", English: []string{"A", "long", "sentence"}},
		{Korean: "네", English: []string{"Yes"}},
		{Korean: "아니요", English: []string{"No"}},
	}
	Bucket(pool, 1)
	assert.Equal(t, "긴 문장입니다", pool[0].Korean)
}

func newTestGenerator(store *content.Store, source Source) *Generator {
	return NewGenerator(store, source, rand.New(rand.NewPCG(1, 2)))
}

func TestGeneratorCuratedLevel(t *testing.T) {
	g := newTestGenerator(content.NewDefaultStore(), SourceCurated)

	lvl, err := g.SentenceLevel(1)
	require.NoError(t, err)
	assert.Equal(t, "Level 1: Basic Greetings & Introductions", lvl.Description)
	assert.Len(t, lvl.Sentences, 10)

	curated, _ := content.NewDefaultStore().Level(1)
	assert.ElementsMatch(t, curated.Sentences, lvl.Sentences)
}

func TestGeneratorDynamicLevel(t *testing.T) {
	g := newTestGenerator(content.NewDefaultStore(), SourceDynamic)

	for id := 1; id <= models.MaxLevel; id++ {
		lvl, err := g.SentenceLevel(id)
		require.NoError(t, err)
		assert.NotEmpty(t, lvl.Sentences)
		assert.LessOrEqual(t, len(lvl.Sentences), 10)
	}

	lvl, _ := g.SentenceLevel(2)
	assert.Equal(t, "Level 2: Beginner", lvl.Description)
	lvl, _ = g.SentenceLevel(5)
	assert.Equal(t, "Level 5: Intermediate", lvl.Description)
	lvl, _ = g.SentenceLevel(9)
	assert.Equal(t, "Level 9: Advanced", lvl.Description)
}

func TestGeneratorDynamicUsesReplacedPool(t *testing.T) {
	store := content.NewDefaultStore()
	sheet := makePool(40)
	require.Equal(t, 40, store.ReplaceSentences(sheet))

	assert.Equal(t, Bucket(sheet, 1), Bucket(store.Sentences(), 1))

	fromSheet := make(map[string]bool, len(sheet))
	for _, s := range sheet {
		fromSheet[s.Target()] = true
	}

	g := newTestGenerator(store, SourceDynamic)
	for id := 1; id <= models.MaxLevel; id++ {
		lvl, err := g.SentenceLevel(id)
		require.NoError(t, err)
		for _, s := range lvl.Sentences {
			assert.True(t, fromSheet[s.Target()], "level %d served %q from outside the sheet", id, s.Target())
		}
	}
}

func TestGeneratorFallsBackBeyondCurated(t *testing.T) {
	g := newTestGenerator(content.NewDefaultStore(), SourceCurated)

	lvl, err := g.SentenceLevel(12)
	require.NoError(t, err)
	assert.Equal(t, "Level 12: Advanced", lvl.Description)
	assert.NotEmpty(t, lvl.Sentences)
}

func TestGeneratorNoContent(t *testing.T) {
	g := newTestGenerator(content.NewStore(), SourceCurated)

	_, err := g.SentenceLevel(1)
	assert.ErrorIs(t, err, models.ErrNoContentAvailable)

	_, err = g.VocabLevel(1)
	assert.ErrorIs(t, err, models.ErrNoContentAvailable)
}

func TestGeneratorVocabLevels(t *testing.T) {
	g := newTestGenerator(content.NewDefaultStore(), SourceCurated)

	lvl, err := g.VocabLevel(1)
	require.NoError(t, err)
	assert.Len(t, lvl.Words, 5)

	dynamic, err := g.VocabLevel(10)
	require.NoError(t, err)
	assert.Equal(t, "Level 10", dynamic.Description)
	assert.Len(t, dynamic.Words, 5)
	for _, w := range dynamic.Words {
		assert.Equal(t, 10, w.Level)
	}

	_, err = g.VocabLevel(42)
	assert.ErrorIs(t, err, models.ErrNoContentAvailable)
}

func TestGeneratorVocabLevelSamplesWholePool(t *testing.T) {
	store := content.NewDefaultStore()
	pool := store.WordsForLevel(6)
	require.Greater(t, len(pool), 5)

	g := newTestGenerator(store, SourceCurated)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		lvl, err := g.VocabLevel(6)
		require.NoError(t, err)
		require.Len(t, lvl.Words, 5)
		for _, w := range lvl.Words {
			seen[w.English] = true
		}
	}

	for _, w := range pool {
		assert.True(t, seen[w.English], "word %q never served", w.English)
	}
}

func TestGeneratorLevels(t *testing.T) {
	g := newTestGenerator(content.NewDefaultStore(), SourceCurated)

	sentences := g.Levels(models.ModeSentence)
	require.Len(t, sentences, models.MaxLevel)
	for _, s := range sentences {
		assert.True(t, s.Curated, fmt.Sprintf("level %d", s.ID))
	}

	words := g.Levels(models.ModeWord)
	assert.True(t, words[4].Curated)
	assert.False(t, words[5].Curated)
	assert.Equal(t, "Level 6", words[5].Description)
}

func TestParseSource(t *testing.T) {
	src, err := ParseSource("")
	require.NoError(t, err)
	assert.Equal(t, SourceCurated, src)

	src, err = ParseSource("dynamic")
	require.NoError(t, err)
	assert.Equal(t, SourceDynamic, src)

	_, err = ParseSource("random")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
