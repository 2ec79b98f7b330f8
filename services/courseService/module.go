package courseService

import (
	"educa/models/course"

	"gorm.io/gorm"
)

// ModuleForm is one row of the module formset. A nil ID adds a module, Delete removes one.
type ModuleForm struct {
	ID          *uint
	Title       string
	Description string
	Delete      bool
}

// CourseModules returns one of ownerID's courses with its modules in order
func CourseModules(db *gorm.DB, ownerID, courseID uint) (*course.Course, error) {
	c, err := GetOwnedCourse(db, ownerID, courseID)
	if err != nil {
		return nil, err
	}
	if err := db.Where("course_id = ?", c.ID).Order(course.OrderColumn + " asc, id asc").Find(&c.Modules).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// SaveModuleFormset applies every form to the modules of one of ownerID's courses in a single
// transaction and returns the course with its resulting modules.
func SaveModuleFormset(db *gorm.DB, ownerID, courseID uint, forms []ModuleForm) (*course.Course, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		c, err := GetOwnedCourse(tx, ownerID, courseID)
		if err != nil {
			return err
		}
		for _, form := range forms {
			if form.ID == nil {
				if form.Delete {
					continue
				}
				m := course.Module{CourseID: c.ID, Title: form.Title, Description: form.Description}
				if err := tx.Create(&m).Error; err != nil {
					return err
				}
				continue
			}

			var m course.Module
			if err := tx.Where("id = ? AND course_id = ?", *form.ID, c.ID).First(&m).Error; err != nil {
				return notFound(err, "module")
			}
			if form.Delete {
				if err := deleteModule(tx, m.ID); err != nil {
					return err
				}
				continue
			}
			m.Title = form.Title
			m.Description = form.Description
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return CourseModules(db, ownerID, courseID)
}

// deleteModule drops a module and its content rows; the items are left to the sweeper
func deleteModule(tx *gorm.DB, moduleID uint) error {
	if err := tx.Where("module_id = ?", moduleID).Delete(&course.Content{}).Error; err != nil {
		return err
	}
	return tx.Delete(&course.Module{}, moduleID).Error
}
