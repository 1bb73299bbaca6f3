// Package shop applies purchases and equips to a player's wallet.
package shop

import (
	"fmt"

	"wordrobe/internal/models"
)

// Wallet is the part of a profile the shop reads and writes
type Wallet struct {
	Balance            int
	Owned              []string
	EquippedAvatar     string
	EquippedBackground string
}

// WalletFrom copies the shop-relevant fields of a profile
func WalletFrom(p *models.PlayerProfile) Wallet {
	return Wallet{
		Balance:            p.Points,
		Owned:              append([]string(nil), p.Owned...),
		EquippedAvatar:     p.EquippedAvatar,
		EquippedBackground: p.EquippedBackground,
	}
}

// ApplyTo writes the wallet back into a profile
func (w Wallet) ApplyTo(p *models.PlayerProfile) {
	p.Points = w.Balance
	p.Owned = append([]string(nil), w.Owned...)
	p.EquippedAvatar = w.EquippedAvatar
	p.EquippedBackground = w.EquippedBackground
}

// Owns reports whether the item is usable without buying it
func (w Wallet) Owns(item models.ShopItem) bool {
	if item.IsFree() {
		return true
	}
	for _, id := range w.Owned {
		if id == item.ID {
			return true
		}
	}
	return false
}

// Equipped reports whether the item is equipped in its slot
func (w Wallet) Equipped(item models.ShopItem) bool {
	if item.Type == models.ItemBackground {
		return w.EquippedBackground == item.ID
	}
	return w.EquippedAvatar == item.ID
}

// Ledger validates and applies shop transactions. Failed transactions return
// the wallet unchanged.
type Ledger struct{}

// Purchase buys item and equips it in its slot
func (Ledger) Purchase(item models.ShopItem, w Wallet) (Wallet, error) {
	if w.Owns(item) {
		return w, fmt.Errorf("purchase %s: %w", item.ID, models.ErrAlreadyOwned)
	}
	if w.Balance < item.Cost {
		return w, fmt.Errorf("purchase %s costs %d, balance %d: %w", item.ID, item.Cost, w.Balance, models.ErrInsufficientBalance)
	}

	next := w
	next.Owned = append(append([]string(nil), w.Owned...), item.ID)
	next.Balance = w.Balance - item.Cost
	equip(&next, item)
	return next, nil
}

// Equip puts an owned or free item in its slot
func (Ledger) Equip(item models.ShopItem, w Wallet) (Wallet, error) {
	if !w.Owns(item) {
		return w, fmt.Errorf("equip %s: %w", item.ID, models.ErrNotOwned)
	}
	next := w
	equip(&next, item)
	return next, nil
}

func equip(w *Wallet, item models.ShopItem) {
	if item.Type == models.ItemBackground {
		w.EquippedBackground = item.ID
		return
	}
	w.EquippedAvatar = item.ID
}
