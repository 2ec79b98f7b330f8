package courseService

import (
	"educa/models/course"

	"gorm.io/gorm"
)

// GetOwnedModule loads a module whose course belongs to ownerID
func GetOwnedModule(db *gorm.DB, ownerID, moduleID uint) (*course.Module, error) {
	var m course.Module
	err := db.Where("id = ? AND course_id IN (?)", moduleID, ownedCourseIDs(db, ownerID)).First(&m).Error
	if err != nil {
		return nil, notFound(err, "module")
	}
	return &m, nil
}

// ModuleContents loads one of ownerID's modules with its contents in order and their items resolved
func ModuleContents(db *gorm.DB, ownerID, moduleID uint) (*course.Module, error) {
	m, err := GetOwnedModule(db, ownerID, moduleID)
	if err != nil {
		return nil, err
	}
	if err := loadModuleContents(db, m); err != nil {
		return nil, err
	}
	return m, nil
}

func loadModuleContents(db *gorm.DB, m *course.Module) error {
	if err := db.Where("module_id = ?", m.ID).Order(course.OrderColumn + " asc, id asc").Find(&m.Contents).Error; err != nil {
		return err
	}
	return course.LoadContentItems(db, m.Contents)
}

// GetOwnedItem loads an item of the given kind that ownerID created
func GetOwnedItem(db *gorm.DB, ownerID uint, kind course.ItemKind, itemID uint) (course.Item, error) {
	item, err := course.LoadItem(db.Where("owner_id = ?", ownerID), kind, itemID)
	if err != nil {
		return nil, notFound(err, string(kind))
	}
	return item, nil
}

// SaveContent creates or edits an item inside one of ownerID's modules.
// Without itemID a new item is stored and linked to the module through a new Content, which is
// returned alongside it. With itemID the existing item is updated in place and Content is nil.
func SaveContent(db *gorm.DB, ownerID, moduleID uint, kind course.ItemKind, itemID *uint, payload course.ItemPayload) (course.Item, *course.Content, error) {
	m, err := GetOwnedModule(db, ownerID, moduleID)
	if err != nil {
		return nil, nil, err
	}

	if itemID != nil {
		item, err := GetOwnedItem(db, ownerID, kind, *itemID)
		if err != nil {
			return nil, nil, err
		}
		course.ApplyPayload(item, payload)
		if err := db.Save(item).Error; err != nil {
			return nil, nil, err
		}
		return item, nil, nil
	}

	item, err := course.NewItem(kind)
	if err != nil {
		return nil, nil, err
	}
	course.ApplyPayload(item, payload)
	item.Base().OwnerID = ownerID

	var content *course.Content
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		content = course.NewContent(m.ID, item)
		return tx.Create(content).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return item, content, nil
}

// DeleteContent removes one content of ownerID's modules together with the item it points at.
// It returns the id of the module the content belonged to.
func DeleteContent(db *gorm.DB, ownerID, contentID uint) (uint, error) {
	var content course.Content
	err := db.Where("id = ? AND module_id IN (?)", contentID, ownedModuleIDs(db, ownerID)).First(&content).Error
	if err != nil {
		return 0, notFound(err, "content")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		item, err := course.NewItem(content.ItemType)
		if err != nil {
			return err
		}
		if err := tx.Delete(item, content.ItemID).Error; err != nil {
			return err
		}
		return tx.Delete(&content).Error
	})
	if err != nil {
		return 0, err
	}
	return content.ModuleID, nil
}
