package level

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"wordrobe/internal/content"
	"wordrobe/internal/models"
)

// Source selects where sentence levels come from
type Source string

const (
	// SourceCurated serves hand-picked levels and falls back to the pool
	// for ids without one
	SourceCurated Source = "curated"
	// SourceDynamic always buckets the sentence pool
	SourceDynamic Source = "dynamic"
)

const (
	maxSentencesPerLevel = 10
	maxWordsPerLevel     = 5
)

// ParseSource converts a config value to a Source
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceCurated, SourceDynamic:
		return Source(s), nil
	case "":
		return SourceCurated, nil
	}
	return "", fmt.Errorf("unknown sentence source %q: %w", s, models.ErrInvalidInput)
}

// Generator builds a fresh level every time one is entered
type Generator struct {
	store  *content.Store
	source Source

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator. A nil rng is seeded from the clock.
func NewGenerator(store *content.Store, source Source, rng *rand.Rand) *Generator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if source == "" {
		source = SourceCurated
	}
	return &Generator{store: store, source: source, rng: rng}
}

// SentenceLevel returns the level played in sentence and listening modes
func (g *Generator) SentenceLevel(id int) (models.Level, error) {
	if id < 1 {
		id = 1
	}

	if g.source == SourceCurated {
		if lvl, ok := g.store.Level(id); ok {
			shuffle(g, lvl.Sentences)
			return lvl, nil
		}
	}

	bucket := Bucket(g.store.Sentences(), id)
	shuffle(g, bucket)
	if len(bucket) > maxSentencesPerLevel {
		bucket = bucket[:maxSentencesPerLevel]
	}
	if len(bucket) == 0 {
		return models.Level{}, fmt.Errorf("sentence level %d: %w", id, models.ErrNoContentAvailable)
	}

	return models.Level{
		ID:          id,
		Description: dynamicDescription(id),
		Sentences:   bucket,
	}, nil
}

// VocabLevel returns the level played in word mode
func (g *Generator) VocabLevel(id int) (models.VocabLevel, error) {
	if id < 1 {
		id = 1
	}

	if lvl, ok := g.store.VocabLevel(id); ok {
		shuffle(g, lvl.Words)
		return lvl, nil
	}

	words := g.store.WordsForLevel(id)
	if len(words) == 0 {
		return models.VocabLevel{}, fmt.Errorf("vocab level %d: %w", id, models.ErrNoContentAvailable)
	}
	shuffle(g, words)
	if len(words) > maxWordsPerLevel {
		words = words[:maxWordsPerLevel]
	}

	return models.VocabLevel{
		ID:          id,
		Description: fmt.Sprintf("Level %d", id),
		Words:       words,
	}, nil
}

// Levels lists the selectable levels of a mode for a level picker
func (g *Generator) Levels(mode models.GameMode) []models.LevelSummary {
	summaries := make([]models.LevelSummary, 0, models.MaxLevel)
	for id := 1; id <= models.MaxLevel; id++ {
		summary := models.LevelSummary{ID: id}
		if mode.UsesSentences() {
			if lvl, ok := g.store.Level(id); ok && g.source == SourceCurated {
				summary.Description = lvl.Description
				summary.Curated = true
			} else {
				summary.Description = dynamicDescription(id)
			}
		} else {
			if lvl, ok := g.store.VocabLevel(id); ok {
				summary.Description = lvl.Description
				summary.Curated = true
			} else {
				summary.Description = fmt.Sprintf("Level %d", id)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func dynamicDescription(id int) string {
	switch {
	case id <= 3:
		return fmt.Sprintf("Level %d: Beginner", id)
	case id <= 7:
		return fmt.Sprintf("Level %d: Intermediate", id)
	default:
		return fmt.Sprintf("Level %d: Advanced", id)
	}
}

// shuffle is a Fisher-Yates shuffle driven by the generator's source
func shuffle[T any](g *Generator, items []T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
