package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"sync"
)

// ErrNotInitialized is returned by SoundManager calls made before Init
var ErrNotInitialized = errors.New("sound manager not initialized")

// SoundManager owns the sound effect files and each player's mute setting
type SoundManager struct {
	dir       string
	urlPrefix string

	mu          sync.RWMutex
	initialized bool
	files       map[Cue]string
	muted       map[string]bool
}

// NewSoundManager creates a manager that writes effects to dir and serves
// them under urlPrefix
func NewSoundManager(dir, urlPrefix string) *SoundManager {
	return &SoundManager{
		dir:       dir,
		urlPrefix: urlPrefix,
		muted:     make(map[string]bool),
	}
}

// Init renders the effect files. Calling it again is a no-op.
func (m *SoundManager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create effects directory: %w", err)
	}

	files := make(map[Cue]string, len(effectTones)+1)
	for cue, tone := range effectTones {
		name, err := writeEffect(m.dir, cue, tone.Samples)
		if err != nil {
			return fmt.Errorf("failed to write %s effect: %w", cue, err)
		}
		files[cue] = name
	}
	name, err := writeEffect(m.dir, CueBGM, MelodySamples)
	if err != nil {
		return fmt.Errorf("failed to write background music: %w", err)
	}
	files[CueBGM] = name

	m.files = files
	m.initialized = true
	slog.Info("sound effects ready", "dir", m.dir, "count", len(files))
	return nil
}

// Dispose forgets the loaded effects and every mute setting
func (m *SoundManager) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialized = false
	m.files = nil
	m.muted = make(map[string]bool)
}

// URL returns the url of a cue for playerID, or "" when the player is muted
// or the manager is not initialized
func (m *SoundManager) URL(playerID string, cue Cue) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.initialized || m.muted[playerID] {
		return ""
	}
	name, ok := m.files[cue]
	if !ok {
		return ""
	}
	return path.Join(m.urlPrefix, name)
}

// ToggleMute flips the mute setting of playerID and returns the new value
func (m *SoundManager) ToggleMute(playerID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return false, ErrNotInitialized
	}
	m.muted[playerID] = !m.muted[playerID]
	return m.muted[playerID], nil
}

// Muted reports the mute setting of playerID
func (m *SoundManager) Muted(playerID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted[playerID]
}
