package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wordrobe/internal/models"
)

// Pack is the YAML layout of a content pack file
type Pack struct {
	Name        string              `yaml:"name"`
	Levels      []models.Level      `yaml:"levels"`
	VocabLevels []models.VocabLevel `yaml:"vocab_levels"`
	Sentences   []packSentence      `yaml:"sentences"`
	Words       []models.VocabWord  `yaml:"words"`
}

// packSentence accepts english either as a list or as a single string
type packSentence struct {
	Korean  string    `yaml:"korean"`
	English yaml.Node `yaml:"english"`
}

func (p packSentence) toSentence() (models.Sentence, error) {
	s := models.Sentence{Korean: p.Korean}
	switch p.English.Kind {
	case yaml.ScalarNode:
		s.English = SplitTokens(p.English.Value)
	case yaml.SequenceNode:
		if err := p.English.Decode(&s.English); err != nil {
			return s, err
		}
	case 0:
	default:
		return s, fmt.Errorf("english must be a string or a list")
	}
	return s, nil
}

// LoadPack reads a single YAML content pack
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for _, lvl := range pack.Levels {
		if lvl.ID < 1 {
			return nil, fmt.Errorf("level id must be >= 1, got %d: %w", lvl.ID, models.ErrInvalidInput)
		}
	}
	for _, lvl := range pack.VocabLevels {
		if lvl.ID < 1 {
			return nil, fmt.Errorf("vocab level id must be >= 1, got %d: %w", lvl.ID, models.ErrInvalidInput)
		}
	}
	if pack.Name == "" {
		pack.Name = filepath.Base(path)
	}
	return &pack, nil
}

// Apply merges the pack into the store. Levels with an existing id replace
// the stored level.
func (s *Store) Apply(pack *Pack) error {
	for _, lvl := range pack.Levels {
		s.PutLevel(lvl)
	}
	for _, lvl := range pack.VocabLevels {
		s.PutVocabLevel(lvl)
	}
	for i, ps := range pack.Sentences {
		sentence, err := ps.toSentence()
		if err != nil {
			return fmt.Errorf("pack %s sentence %d: %w", pack.Name, i, err)
		}
		s.AddSentences(sentence)
	}
	s.AddWords(pack.Words...)
	return nil
}

// LoadDir applies every *.yaml and *.yml pack found in dir. Packs that fail
// to parse are logged and skipped.
func (s *Store) LoadDir(dir string) (int, error) {
	if _, err := os.Stat(dir); err != nil {
		return 0, fmt.Errorf("content directory %s: %w", dir, err)
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return 0, fmt.Errorf("failed to glob content packs: %w", err)
		}
		files = append(files, matches...)
	}

	loaded := 0
	for _, file := range files {
		pack, err := LoadPack(file)
		if err != nil {
			slog.Warn("failed to load content pack", "file", file, "error", err)
			continue
		}
		if err := s.Apply(pack); err != nil {
			slog.Warn("failed to apply content pack", "file", file, "error", err)
			continue
		}
		loaded++
	}

	slog.Info("content packs loaded", "dir", dir, "count", loaded, "total_files", len(files))
	return loaded, nil
}
