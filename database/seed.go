package database

import (
	"educa/models/course"
	"educa/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedSubjects inserts the given subjects unless a subject with the same slug exists
func SeedSubjects(db *gorm.DB, titles []string) error {
	for _, title := range titles {
		slug := utils.GenerateSlug(title)
		if slug == "" {
			continue
		}
		subject := course.Subject{Title: title, Slug: slug}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&subject).Error; err != nil {
			return err
		}
	}
	return nil
}
