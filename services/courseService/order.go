package courseService

import (
	"errors"

	"educa/models/course"

	"gorm.io/gorm"
)

// ReorderModules sets the order of every module in orders that belongs to one of ownerID's
// courses. Updates are independent: ids that are unknown or foreign are skipped and a failing
// update does not undo the others. It returns how many modules were updated.
func ReorderModules(db *gorm.DB, ownerID uint, orders map[uint]uint) (int, error) {
	return reorder(db, &course.Module{}, "course_id IN (?)", ownedCourseIDs(db, ownerID), orders)
}

// ReorderContents is ReorderModules for contents, scoped through module and course ownership
func ReorderContents(db *gorm.DB, ownerID uint, orders map[uint]uint) (int, error) {
	return reorder(db, &course.Content{}, "module_id IN (?)", ownedModuleIDs(db, ownerID), orders)
}

// UpdateColumn skips hooks, so Content's discriminator check does not run against the empty model.
func reorder(db *gorm.DB, model interface{}, scope string, scopeIDs *gorm.DB, orders map[uint]uint) (int, error) {
	var (
		applied int
		errs    []error
	)
	for id, order := range orders {
		res := db.Model(model).Where("id = ?", id).Where(scope, scopeIDs).UpdateColumn(course.OrderColumn, order)
		if res.Error != nil {
			errs = append(errs, res.Error)
			continue
		}
		applied += int(res.RowsAffected)
	}
	return applied, errors.Join(errs...)
}
