package course

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ItemKind discriminates which table a content item lives in
type ItemKind string

const (
	KindText  ItemKind = "text"
	KindVideo ItemKind = "video"
	KindImage ItemKind = "image"
	KindFile  ItemKind = "file"
)

// ErrUnknownItemKind is returned for any discriminator outside the four item kinds
var ErrUnknownItemKind = errors.New("unknown content item kind")

// ItemKinds lists every valid discriminator
func ItemKinds() []ItemKind {
	return []ItemKind{KindText, KindVideo, KindImage, KindFile}
}

// ParseItemKind maps a model name ("text", "Video", ...) onto its kind
func ParseItemKind(name string) (ItemKind, error) {
	switch k := ItemKind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindText, KindVideo, KindImage, KindFile:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownItemKind, name)
	}
}

// ItemBase holds the fields shared by every item kind
type ItemBase struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerID   uint      `json:"owner_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"size:250;not null"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// Item is one of *Text, *File, *Image or *Video
type Item interface {
	Kind() ItemKind
	Base() *ItemBase
}

type Text struct {
	ItemBase
	Content string `json:"content" gorm:"type:text"`
}

type File struct {
	ItemBase
	File string `json:"file"`
}

type Image struct {
	ItemBase
	File string `json:"file"`
}

type Video struct {
	ItemBase
	URL string `json:"url"`
}

func (t *Text) Kind() ItemKind  { return KindText }
func (f *File) Kind() ItemKind  { return KindFile }
func (i *Image) Kind() ItemKind { return KindImage }
func (v *Video) Kind() ItemKind { return KindVideo }

func (t *Text) Base() *ItemBase  { return &t.ItemBase }
func (f *File) Base() *ItemBase  { return &f.ItemBase }
func (i *Image) Base() *ItemBase { return &i.ItemBase }
func (v *Video) Base() *ItemBase { return &v.ItemBase }

// NewItem returns an empty item of the given kind, usable as a gorm model
func NewItem(kind ItemKind) (Item, error) {
	switch kind {
	case KindText:
		return &Text{}, nil
	case KindVideo:
		return &Video{}, nil
	case KindImage:
		return &Image{}, nil
	case KindFile:
		return &File{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemKind, kind)
	}
}

// ItemPayload carries the kind specific fields of an item form
type ItemPayload struct {
	Title   string
	Content string
	File    string
	URL     string
}

// ApplyPayload copies the payload fields that apply to item's kind
func ApplyPayload(item Item, p ItemPayload) {
	item.Base().Title = p.Title
	switch it := item.(type) {
	case *Text:
		it.Content = p.Content
	case *File:
		it.File = p.File
	case *Image:
		it.File = p.File
	case *Video:
		it.URL = p.URL
	}
}

// LoadItem fetches a single item by kind and id
func LoadItem(db *gorm.DB, kind ItemKind, id uint) (Item, error) {
	item, err := NewItem(kind)
	if err != nil {
		return nil, err
	}
	if err := db.First(item, id).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// LoadContentItems resolves Item on every content, issuing one query per kind present.
// Contents whose item row is missing keep a nil Item.
func LoadContentItems(db *gorm.DB, contents []Content) error {
	ids := make(map[ItemKind][]uint)
	for _, c := range contents {
		ids[c.ItemType] = append(ids[c.ItemType], c.ItemID)
	}
	found := make(map[ItemKind]map[uint]Item)
	for kind, kindIDs := range ids {
		items, err := loadItems(db, kind, kindIDs)
		if err != nil {
			return err
		}
		found[kind] = items
	}
	for i := range contents {
		contents[i].Item = found[contents[i].ItemType][contents[i].ItemID]
	}
	return nil
}

func loadItems(db *gorm.DB, kind ItemKind, ids []uint) (map[uint]Item, error) {
	out := make(map[uint]Item, len(ids))
	switch kind {
	case KindText:
		var rows []Text
		if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			out[rows[i].ID] = &rows[i]
		}
	case KindVideo:
		var rows []Video
		if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			out[rows[i].ID] = &rows[i]
		}
	case KindImage:
		var rows []Image
		if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			out[rows[i].ID] = &rows[i]
		}
	case KindFile:
		var rows []File
		if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			out[rows[i].ID] = &rows[i]
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemKind, kind)
	}
	return out, nil
}
