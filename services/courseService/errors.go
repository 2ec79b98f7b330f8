package courseService

import (
	"errors"
	"fmt"

	"educa/models/course"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrSlugTaken       = errors.New("slug is already in use")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrUnknownItemKind = course.ErrUnknownItemKind
)

// notFound turns gorm's missing-row error into ErrNotFound and passes anything else through
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}

// ownedCourseIDs is a sub-query selecting the ids of the courses ownerID created
func ownedCourseIDs(db *gorm.DB, ownerID uint) *gorm.DB {
	return db.Model(&course.Course{}).Select("id").Where("owner_id = ?", ownerID)
}

// ownedModuleIDs selects the ids of modules that belong to ownerID's courses
func ownedModuleIDs(db *gorm.DB, ownerID uint) *gorm.DB {
	return db.Model(&course.Module{}).Select("id").Where("course_id IN (?)", ownedCourseIDs(db, ownerID))
}
