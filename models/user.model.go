package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account; instructors own courses and items, students enroll in courses
type User struct {
	gorm.Model
	Username  string     `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"default:''"`
	FirstName string     `json:"first_name" gorm:"default:''"`
	LastName  string     `json:"last_name" gorm:"default:''"`
	Password  string     `json:"-" gorm:"not null"`
	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
}
