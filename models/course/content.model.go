package course

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Content places one item inside a module. ItemType and ItemID together point at a row in
// the texts, videos, images or files table; nothing in the schema enforces that link.
type Content struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	ModuleID uint     `json:"module_id" gorm:"index;not null"`
	ItemType ItemKind `json:"item_type" gorm:"size:16;index:idx_content_item;not null"`
	ItemID   uint     `json:"item_id" gorm:"index:idx_content_item;not null"`
	Order    *uint    `json:"order" gorm:"column:order_index"`
	Item     Item     `json:"-" gorm:"-"`
}

// NewContent links an already persisted item to a module
func NewContent(moduleID uint, item Item) *Content {
	return &Content{
		ModuleID: moduleID,
		ItemType: item.Kind(),
		ItemID:   item.Base().ID,
		Item:     item,
	}
}

func (c *Content) BeforeSave(tx *gorm.DB) error {
	_, err := ParseItemKind(string(c.ItemType))
	return err
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	return assignOrder(tx, &Content{}, &c.Order, map[string]interface{}{"module_id": c.ModuleID})
}

// MarshalJSON inlines the resolved item under "item"
func (c Content) MarshalJSON() ([]byte, error) {
	type plain Content
	return json.Marshal(struct {
		plain
		Item Item `json:"item,omitempty"`
	}{plain(c), c.Item})
}
