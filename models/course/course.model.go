package course

import (
	"time"

	"educa/models"
)

// Course is owned by the instructor who created it
type Course struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	OwnerID   uint          `json:"owner_id" gorm:"index;not null"`
	Owner     *models.User  `json:"-" gorm:"foreignKey:OwnerID"`
	SubjectID uint          `json:"subject_id" gorm:"index;not null"`
	Subject   *Subject      `json:"subject,omitempty"`
	Title     string        `json:"title" gorm:"size:200;not null"`
	Slug      string        `json:"slug" gorm:"size:200;uniqueIndex;not null"`
	Overview  string        `json:"overview" gorm:"type:text"`
	CreatedAt time.Time     `json:"created"`
	Modules   []Module      `json:"modules,omitempty"`
	Students  []models.User `json:"-" gorm:"many2many:course_students;"`
}
