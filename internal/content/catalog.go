package content

import (
	"fmt"

	"wordrobe/internal/models"
)

var roomTitles = []string{
	"Cozy Morning",
	"Midnight Study",
	"Pink Palace",
	"Kitty Lounge",
	"Forest Magic",
	"Toy Kingdom",
	"Deep Ocean",
	"Picnic Time",
	"Space Lab",
	"Sweet Cafe",
	"Dreamy Sky",
	"Fairy Garden",
}

// Catalog is the static list of cosmetic shop items
type Catalog struct {
	items []models.ShopItem
	byID  map[string]models.ShopItem
}

// NewCatalog builds the default catalog. assetBase is prefixed to image paths.
func NewCatalog(assetBase string) *Catalog {
	var items []models.ShopItem

	items = append(items, models.ShopItem{
		ID:        models.DefaultAvatarID,
		Name:      "Base",
		Type:      models.ItemAvatar,
		Cost:      0,
		ImagePath: assetBase + "/assets/character/avatar_base.png",
	})
	for i := 1; i <= 20; i++ {
		id := fmt.Sprintf("avatar%02d", i)
		items = append(items, models.ShopItem{
			ID:        id,
			Name:      fmt.Sprintf("Avatar %d", i),
			Type:      models.ItemAvatar,
			Cost:      500 * i,
			ImagePath: fmt.Sprintf("%s/assets/character/%s.png", assetBase, id),
		})
	}

	items = append(items, models.ShopItem{
		ID:    models.DefaultBackgroundID,
		Name:  "Default",
		Type:  models.ItemBackground,
		Cost:  0,
		Style: map[string]string{"backgroundColor": "transparent"},
	})
	for i, title := range roomTitles {
		n := i + 1
		path := fmt.Sprintf("%s/assets/background_room/background_room%02d.jpg", assetBase, n)
		items = append(items, models.ShopItem{
			ID:        fmt.Sprintf("bg_room_%02d", n),
			Name:      title,
			Type:      models.ItemBackground,
			Cost:      1000 * n,
			ImagePath: path,
			Style: map[string]string{
				"backgroundImage":    "url(" + path + ")",
				"backgroundSize":     "cover",
				"backgroundPosition": "center",
				"backgroundRepeat":   "no-repeat",
			},
		})
	}

	byID := make(map[string]models.ShopItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{items: items, byID: byID}
}

// Items returns every item of the given type, or all items when itemType is empty
func (c *Catalog) Items(itemType models.ItemType) []models.ShopItem {
	var result []models.ShopItem
	for _, item := range c.items {
		if itemType == "" || item.Type == itemType {
			result = append(result, item)
		}
	}
	return result
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (models.ShopItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return models.ShopItem{}, fmt.Errorf("shop item %q: %w", id, models.ErrNotFound)
	}
	return item, nil
}
