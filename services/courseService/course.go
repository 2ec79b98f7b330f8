package courseService

import (
	"errors"
	"fmt"

	"educa/models/course"
	"educa/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseInput is the editable part of a course
type CourseInput struct {
	SubjectID uint
	Title     string
	Slug      string
	Overview  string
}

// ListOwnedCourses returns the courses ownerID created, newest first
func ListOwnedCourses(db *gorm.DB, ownerID uint) ([]course.Course, error) {
	var courses []course.Course
	err := db.Where("owner_id = ?", ownerID).
		Preload("Subject").
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

// GetOwnedCourse loads one of ownerID's courses
func GetOwnedCourse(db *gorm.DB, ownerID, courseID uint) (*course.Course, error) {
	var c course.Course
	if err := db.Where("id = ? AND owner_id = ?", courseID, ownerID).Preload("Subject").First(&c).Error; err != nil {
		return nil, notFound(err, "course")
	}
	return &c, nil
}

// CreateCourse stores a new course for ownerID. A blank slug is derived from the title.
func CreateCourse(db *gorm.DB, ownerID uint, in CourseInput) (*course.Course, error) {
	if err := checkSubject(db, in.SubjectID); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(db, in, 0)
	if err != nil {
		return nil, err
	}

	c := course.Course{
		OwnerID:   ownerID,
		SubjectID: in.SubjectID,
		Title:     in.Title,
		Slug:      slug,
		Overview:  in.Overview,
	}
	if err := db.Omit(clause.Associations).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCourse edits one of ownerID's courses. A blank slug keeps the current one.
func UpdateCourse(db *gorm.DB, ownerID, courseID uint, in CourseInput) (*course.Course, error) {
	c, err := GetOwnedCourse(db, ownerID, courseID)
	if err != nil {
		return nil, err
	}
	if err := checkSubject(db, in.SubjectID); err != nil {
		return nil, err
	}
	if in.Slug != "" && in.Slug != c.Slug {
		if c.Slug, err = resolveSlug(db, in, c.ID); err != nil {
			return nil, err
		}
	}

	c.SubjectID = in.SubjectID
	c.Subject = nil
	c.Title = in.Title
	c.Overview = in.Overview
	if err := db.Omit(clause.Associations).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCourse removes one of ownerID's courses with its modules, contents and enrollments.
// Items referenced by the removed contents stay behind for the orphan sweeper.
func DeleteCourse(db *gorm.DB, ownerID, courseID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		c, err := GetOwnedCourse(tx, ownerID, courseID)
		if err != nil {
			return err
		}
		moduleIDs := tx.Model(&course.Module{}).Select("id").Where("course_id = ?", c.ID)
		if err := tx.Where("module_id IN (?)", moduleIDs).Delete(&course.Content{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", c.ID).Delete(&course.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Model(c).Association("Students").Clear(); err != nil {
			return err
		}
		return tx.Delete(c).Error
	})
}

func checkSubject(db *gorm.DB, subjectID uint) error {
	var count int64
	if err := db.Model(&course.Subject{}).Where("id = ?", subjectID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// resolveSlug validates an explicit slug or derives a free one from the title.
// selfID excludes the course being edited from the uniqueness check.
func resolveSlug(db *gorm.DB, in CourseInput, selfID uint) (string, error) {
	if in.Slug == "" {
		base := utils.GenerateSlug(in.Title)
		if base == "" {
			base = "course"
		}
		return utils.UniqueSlug(db, "courses", "slug", base)
	}

	var existing course.Course
	err := db.Select("id").Where("slug = ?", in.Slug).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return in.Slug, nil
	case err != nil:
		return "", err
	case existing.ID == selfID:
		return in.Slug, nil
	default:
		return "", fmt.Errorf("%q: %w", in.Slug, ErrSlugTaken)
	}
}
