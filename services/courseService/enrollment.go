package courseService

import (
	"educa/models"
	"educa/models/course"

	"gorm.io/gorm"
)

// StudentCourse is an enrolled course opened at one of its modules
type StudentCourse struct {
	Course *course.Course `json:"course"`
	Module *course.Module `json:"module"`
}

// Enroll adds userID to the students of courseID. Enrolling twice leaves a single membership.
func Enroll(db *gorm.DB, userID, courseID uint) (*course.Course, error) {
	var c course.Course
	if err := db.First(&c, courseID).Error; err != nil {
		return nil, notFound(err, "course")
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, notFound(err, "user")
	}
	if err := db.Model(&c).Association("Students").Append(&user); err != nil {
		return nil, err
	}
	return &c, nil
}

// IsEnrolled reports whether userID is a student of courseID
func IsEnrolled(db *gorm.DB, userID, courseID uint) (bool, error) {
	var count int64
	err := db.Table("course_students").
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	return count > 0, err
}

func enrolledCourses(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&course.Course{}).
		Joins("JOIN course_students ON course_students.course_id = courses.id").
		Where("course_students.user_id = ?", userID)
}

// StudentCourses lists the courses userID is enrolled in, newest first
func StudentCourses(db *gorm.DB, userID uint) ([]course.Course, error) {
	var courses []course.Course
	err := enrolledCourses(db, userID).
		Preload("Subject").
		Order("courses.created_at desc, courses.id desc").
		Find(&courses).Error
	return courses, err
}

// StudentCourseDetail opens one of userID's enrolled courses. With moduleID the module must
// belong to the course; without it the first module in order is used. The module's contents
// come with their items resolved. Module is nil for a course that has no modules yet.
func StudentCourseDetail(db *gorm.DB, userID, courseID uint, moduleID *uint) (*StudentCourse, error) {
	var c course.Course
	err := enrolledCourses(db, userID).
		Where("courses.id = ?", courseID).
		Preload("Subject").
		Preload("Modules", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(course.OrderColumn + " asc, id asc")
		}).
		First(&c).Error
	if err != nil {
		return nil, notFound(err, "course")
	}

	var selected *course.Module
	if moduleID != nil {
		for i := range c.Modules {
			if c.Modules[i].ID == *moduleID {
				m := c.Modules[i]
				selected = &m
				break
			}
		}
		if selected == nil {
			return nil, ErrNotFound
		}
	} else if len(c.Modules) > 0 {
		m := c.Modules[0]
		selected = &m
	}

	if selected != nil {
		if err := loadModuleContents(db, selected); err != nil {
			return nil, err
		}
	}
	return &StudentCourse{Course: &c, Module: selected}, nil
}
