package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"wordrobe/internal/models"
	"wordrobe/internal/store"
)

// Persisted keys, relative to the player's namespace
const (
	KeyCreated        = "wordrobe_created"
	KeyNickname       = "wordrobe_nickname"
	KeyPoints         = "wordrobe_points"
	KeyLevel          = "wordrobe_level"
	KeyVocabLevel     = "wordrobe_vocab_level"
	KeyListeningLevel = "wordrobe_listening_level"
	KeyOwned          = "wordrobe_owned"
	KeyEquipped       = "wordrobe_equipped"
	KeyBgEquipped     = "wordrobe_bg_equipped"
	KeyCleared        = "wordrobe_game_cleared"
	KeyDailyStats     = "wordrobe_daily_stats"
)

// ErrNotHydrated is returned when saving a profile that was never loaded
var ErrNotHydrated = errors.New("profile was not loaded from storage")

var levelKeys = map[models.GameMode]string{
	models.ModeSentence:  KeyLevel,
	models.ModeWord:      KeyVocabLevel,
	models.ModeListening: KeyListeningLevel,
}

// PlayerPrefix is the key namespace of one player
func PlayerPrefix(playerID string) string {
	return "player:" + playerID + ":"
}

// LoadedProfile is a profile read from storage. Only a LoadedProfile
// obtained from Load or Create can be saved.
type LoadedProfile struct {
	models.PlayerProfile
	hydrated bool
}

// ProfileRepository reads and writes player profiles
type ProfileRepository struct {
	kv store.KV
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(kv store.KV) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

func (r *ProfileRepository) player(playerID string) store.KV {
	return store.Namespace(r.kv, PlayerPrefix(playerID))
}

// Create stores a new profile with default values
func (r *ProfileRepository) Create(ctx context.Context, playerID, nickname string) (*LoadedProfile, error) {
	p := &LoadedProfile{
		PlayerProfile: defaultProfile(playerID),
		hydrated:      true,
	}
	p.Nickname = nickname

	entries := encodeProfile(&p.PlayerProfile)
	entries[KeyCreated] = "1"
	entries[KeyNickname] = nickname
	if err := r.player(playerID).SetMany(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

// Load reads a profile. Malformed or missing values fall back to defaults.
// An unknown player returns an error wrapping models.ErrNotFound.
func (r *ProfileRepository) Load(ctx context.Context, playerID string) (*LoadedProfile, error) {
	entries, err := r.player(playerID).Entries(ctx, "wordrobe_")
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if _, ok := entries[KeyCreated]; !ok {
		return nil, fmt.Errorf("player %s: %w", playerID, models.ErrNotFound)
	}

	p := defaultProfile(playerID)
	p.Nickname = entries[KeyNickname]

	if n, err := strconv.Atoi(entries[KeyPoints]); err == nil && n >= 0 {
		p.Points = n
	}
	for mode, key := range levelKeys {
		if n, err := strconv.Atoi(entries[key]); err == nil && n >= 1 {
			p.Levels[mode] = min(n, models.MaxLevel)
		}
	}
	if raw := entries[KeyOwned]; raw != "" {
		var owned []string
		if err := json.Unmarshal([]byte(raw), &owned); err == nil {
			p.Owned = dedupe(owned)
		}
	}
	if v := entries[KeyEquipped]; v != "" {
		p.EquippedAvatar = v
	}
	if v := entries[KeyBgEquipped]; v != "" {
		p.EquippedBackground = v
	}
	if raw := entries[KeyCleared]; raw != "" {
		var cleared []models.GameMode
		if err := json.Unmarshal([]byte(raw), &cleared); err == nil {
			for _, mode := range cleared {
				p.GameCleared[mode] = true
			}
		}
	}

	return &LoadedProfile{PlayerProfile: p, hydrated: true}, nil
}

// Save writes every profile field in one batch
func (r *ProfileRepository) Save(ctx context.Context, p *LoadedProfile) error {
	if p == nil || !p.hydrated {
		return ErrNotHydrated
	}
	if p.Points < 0 {
		return fmt.Errorf("negative balance %d: %w", p.Points, models.ErrInvalidInput)
	}
	if err := r.player(p.PlayerID).SetMany(ctx, encodeProfile(&p.PlayerProfile)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Delete removes every key of a player
func (r *ProfileRepository) Delete(ctx context.Context, playerID string) error {
	ns := r.player(playerID)
	entries, err := ns.Entries(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list player keys: %w", err)
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	return ns.Remove(ctx, keys...)
}

func defaultProfile(playerID string) models.PlayerProfile {
	return models.PlayerProfile{
		PlayerID: playerID,
		Levels: map[models.GameMode]int{
			models.ModeSentence:  1,
			models.ModeWord:      1,
			models.ModeListening: 1,
		},
		Owned:              []string{},
		EquippedAvatar:     models.DefaultAvatarID,
		EquippedBackground: models.DefaultBackgroundID,
		GameCleared:        map[models.GameMode]bool{},
	}
}

func encodeProfile(p *models.PlayerProfile) map[string]string {
	owned, _ := json.Marshal(dedupe(p.Owned))

	var cleared []models.GameMode
	for _, mode := range models.AllModes {
		if p.GameCleared[mode] {
			cleared = append(cleared, mode)
		}
	}
	clearedJSON, _ := json.Marshal(cleared)

	entries := map[string]string{
		KeyPoints:     strconv.Itoa(p.Points),
		KeyOwned:      string(owned),
		KeyEquipped:   p.EquippedAvatar,
		KeyBgEquipped: p.EquippedBackground,
		KeyCleared:    string(clearedJSON),
	}
	for mode, key := range levelKeys {
		entries[key] = strconv.Itoa(p.LevelFor(mode))
	}
	return entries
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == models.DefaultBackgroundID || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
