package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wordrobe/internal/models"
	"wordrobe/internal/nickname"
	"wordrobe/internal/repository"
	"wordrobe/internal/security"
)

// NewPlayer is a freshly created profile and its token
type NewPlayer struct {
	Profile models.PlayerProfile
	Token   string
	Expires time.Time
}

// PlayerService creates and reads anonymous player profiles
type PlayerService struct {
	profiles *repository.ProfileRepository
	tokens   *security.TokenIssuer
}

// NewPlayerService creates a new player service
func NewPlayerService(profiles *repository.ProfileRepository, tokens *security.TokenIssuer) *PlayerService {
	return &PlayerService{profiles: profiles, tokens: tokens}
}

// Create stores a new profile with a random nickname and issues its token
func (s *PlayerService) Create(ctx context.Context) (*NewPlayer, error) {
	name, err := nickname.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nickname: %w", err)
	}

	playerID := security.NewPlayerID()
	profile, err := s.profiles.Create(ctx, playerID, name)
	if err != nil {
		return nil, err
	}

	token, expires, err := s.tokens.Issue(playerID)
	if err != nil {
		return nil, err
	}

	slog.Info("player created", "player", playerID, "nickname", name)
	return &NewPlayer{Profile: profile.PlayerProfile, Token: token, Expires: expires}, nil
}

// Profile returns the stored profile of playerID
func (s *PlayerService) Profile(ctx context.Context, playerID string) (models.PlayerProfile, error) {
	profile, err := s.profiles.Load(ctx, playerID)
	if err != nil {
		return models.PlayerProfile{}, err
	}
	return profile.PlayerProfile, nil
}

// Authenticate resolves a token to an existing player id
func (s *PlayerService) Authenticate(ctx context.Context, token string) (string, error) {
	playerID, err := s.tokens.Parse(token)
	if err != nil {
		return "", err
	}
	if _, err := s.profiles.Load(ctx, playerID); err != nil {
		return "", err
	}
	return playerID, nil
}
