package models

// ItemType is the cosmetic slot a shop item occupies
type ItemType string

const (
	ItemAvatar     ItemType = "avatar"
	ItemBackground ItemType = "background"
)

const (
	DefaultAvatarID     = "avatar_base"
	DefaultBackgroundID = "bg_default"
)

// ShopItem is a static catalog entry
type ShopItem struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      ItemType          `json:"type"`
	Cost      int               `json:"cost"`
	ImagePath string            `json:"image_path"`
	Style     map[string]string `json:"style,omitempty"`
}

// IsFree reports whether the item is implicitly owned
func (i ShopItem) IsFree() bool {
	return i.Cost == 0 || i.ID == DefaultBackgroundID
}
