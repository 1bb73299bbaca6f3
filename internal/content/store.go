package content

import (
	"sort"
	"sync"

	"wordrobe/internal/models"
)

// Store holds the playable content: curated levels plus the pools the
// dynamic level path draws from. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	levels      map[int]models.Level
	vocabLevels map[int]models.VocabLevel
	sentences   []models.Sentence
	words       []models.VocabWord
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		levels:      make(map[int]models.Level),
		vocabLevels: make(map[int]models.VocabLevel),
	}
}

// NewDefaultStore returns a store loaded with the built-in content
func NewDefaultStore() *Store {
	s := NewStore()
	for _, lvl := range curatedLevels {
		s.PutLevel(lvl)
	}
	for _, lvl := range curatedVocabLevels {
		s.PutVocabLevel(lvl)
	}
	s.AddWords(extraWords...)
	return s
}

// PutLevel adds or replaces a curated sentence level. Its sentences are
// appended to the sentence pool.
func (s *Store) PutLevel(lvl models.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.levels[lvl.ID]; ok {
		s.sentences = removeSentences(s.sentences, old.Sentences)
	}
	valid := make([]models.Sentence, 0, len(lvl.Sentences))
	for _, sentence := range lvl.Sentences {
		if sentence.Valid() {
			valid = append(valid, sentence)
		}
	}
	lvl.Sentences = valid
	s.levels[lvl.ID] = lvl
	s.sentences = append(s.sentences, valid...)
}

// PutVocabLevel adds or replaces a curated vocabulary level. Its words are
// added to the word pool under the level id.
func (s *Store) PutVocabLevel(lvl models.VocabLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.vocabLevels[lvl.ID]; ok {
		s.words = removeWords(s.words, old.Words)
	}
	words := make([]models.VocabWord, 0, len(lvl.Words))
	for _, w := range lvl.Words {
		if w.English == "" {
			continue
		}
		w.Level = lvl.ID
		words = append(words, w)
	}
	lvl.Words = words
	s.vocabLevels[lvl.ID] = lvl
	s.words = append(s.words, words...)
}

// AddSentences extends the sentence pool without creating a curated level
func (s *Store) AddSentences(sentences ...models.Sentence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sentence := range sentences {
		if sentence.Valid() {
			s.sentences = append(s.sentences, sentence)
		}
	}
}

// ReplaceSentences swaps the sentence pool for the valid entries of
// sentences and returns how many were kept. Curated levels are unaffected.
// When nothing valid is given the current pool stays in place.
func (s *Store) ReplaceSentences(sentences []models.Sentence) int {
	valid := make([]models.Sentence, 0, len(sentences))
	for _, sentence := range sentences {
		if sentence.Valid() {
			valid = append(valid, sentence)
		}
	}
	if len(valid) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentences = valid
	return len(valid)
}

// AddWords extends the word pool. Words without a level are ignored.
func (s *Store) AddWords(words ...models.VocabWord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		if w.English == "" || w.Level < 1 {
			continue
		}
		s.words = append(s.words, w)
	}
}

// Level returns the curated sentence level with the given id
func (s *Store) Level(id int) (models.Level, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lvl, ok := s.levels[id]
	if !ok || len(lvl.Sentences) == 0 {
		return models.Level{}, false
	}
	lvl.Sentences = append([]models.Sentence(nil), lvl.Sentences...)
	return lvl, true
}

// VocabLevel returns the curated vocabulary level with the given id
func (s *Store) VocabLevel(id int) (models.VocabLevel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lvl, ok := s.vocabLevels[id]
	if !ok || len(lvl.Words) == 0 {
		return models.VocabLevel{}, false
	}
	lvl.Words = append([]models.VocabWord(nil), lvl.Words...)
	return lvl, true
}

// Sentences returns a copy of the full sentence pool
func (s *Store) Sentences() []models.Sentence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Sentence(nil), s.sentences...)
}

// Words returns a copy of the full word pool
func (s *Store) Words() []models.VocabWord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.VocabWord(nil), s.words...)
}

// WordsForLevel returns the pool words tagged with exactly level
func (s *Store) WordsForLevel(level int) []models.VocabWord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.VocabWord
	for _, w := range s.words {
		if w.Level == level {
			result = append(result, w)
		}
	}
	return result
}

// LevelIDs returns the ids of the curated sentence levels in ascending order
func (s *Store) LevelIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.levels))
	for id := range s.levels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// VocabLevelIDs returns the ids of the curated vocabulary levels in ascending order
func (s *Store) VocabLevelIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.vocabLevels))
	for id := range s.vocabLevels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func removeSentences(pool, drop []models.Sentence) []models.Sentence {
	if len(drop) == 0 {
		return pool
	}
	counts := make(map[string]int, len(drop))
	for _, d := range drop {
		counts[d.Korean+"\x00"+d.Target()]++
	}
	kept := pool[:0:0]
	for _, p := range pool {
		key := p.Korean + "\x00" + p.Target()
		if counts[key] > 0 {
			counts[key]--
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func removeWords(pool, drop []models.VocabWord) []models.VocabWord {
	if len(drop) == 0 {
		return pool
	}
	counts := make(map[models.VocabWord]int, len(drop))
	for _, d := range drop {
		counts[d]++
	}
	kept := pool[:0:0]
	for _, p := range pool {
		if counts[p] > 0 {
			counts[p]--
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
