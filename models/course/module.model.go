package course

import "gorm.io/gorm"

// Module is a section of a course; Order is assigned per course on creation
type Module struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Order       *uint     `json:"order" gorm:"column:order_index"`
	Contents    []Content `json:"contents,omitempty"`
}

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	return assignOrder(tx, &Module{}, &m.Order, map[string]interface{}{"course_id": m.CourseID})
}
