package service

import (
	"context"
	"log/slog"

	"wordrobe/internal/content"
	"wordrobe/internal/models"
	"wordrobe/internal/repository"
	"wordrobe/internal/shop"
)

// ShopEntry is a catalog item as one player sees it
type ShopEntry struct {
	models.ShopItem
	Owned      bool `json:"owned"`
	Equipped   bool `json:"equipped"`
	Affordable bool `json:"affordable"`
}

// ShopResult is the wallet after a purchase or equip
type ShopResult struct {
	Item               models.ShopItem `json:"item"`
	Points             int             `json:"points"`
	Owned              []string        `json:"owned"`
	EquippedAvatar     string          `json:"equipped_avatar"`
	EquippedBackground string          `json:"equipped_background"`
}

// ShopService sells and equips cosmetic items
type ShopService struct {
	catalog  *content.Catalog
	profiles *repository.ProfileRepository
	locks    *PlayerLocks
	ledger   shop.Ledger
}

// NewShopService creates a new shop service
func NewShopService(catalog *content.Catalog, profiles *repository.ProfileRepository, locks *PlayerLocks) *ShopService {
	return &ShopService{catalog: catalog, profiles: profiles, locks: locks}
}

// Catalog lists the items of itemType ("" for all) with the player's flags
func (s *ShopService) Catalog(ctx context.Context, playerID string, itemType models.ItemType) ([]ShopEntry, error) {
	profile, err := s.profiles.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	wallet := shop.WalletFrom(&profile.PlayerProfile)

	items := s.catalog.Items(itemType)
	entries := make([]ShopEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, ShopEntry{
			ShopItem:   item,
			Owned:      wallet.Owns(item),
			Equipped:   wallet.Equipped(item),
			Affordable: wallet.Balance >= item.Cost,
		})
	}
	return entries, nil
}

// Purchase buys an item and equips it
func (s *ShopService) Purchase(ctx context.Context, playerID, itemID string) (*ShopResult, error) {
	return s.apply(ctx, playerID, itemID, s.ledger.Purchase)
}

// Equip wears an owned or free item
func (s *ShopService) Equip(ctx context.Context, playerID, itemID string) (*ShopResult, error) {
	return s.apply(ctx, playerID, itemID, s.ledger.Equip)
}

func (s *ShopService) apply(ctx context.Context, playerID, itemID string, op func(models.ShopItem, shop.Wallet) (shop.Wallet, error)) (*ShopResult, error) {
	item, err := s.catalog.Item(itemID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(playerID)
	defer unlock()

	profile, err := s.profiles.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	wallet, err := op(item, shop.WalletFrom(&profile.PlayerProfile))
	if err != nil {
		return nil, err
	}
	wallet.ApplyTo(&profile.PlayerProfile)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	slog.Info("wallet updated", "player", playerID, "item", item.ID, "points", profile.Points)

	return &ShopResult{
		Item:               item,
		Points:             profile.Points,
		Owned:              profile.Owned,
		EquippedAvatar:     profile.EquippedAvatar,
		EquippedBackground: profile.EquippedBackground,
	}, nil
}
