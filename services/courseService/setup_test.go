package courseService_test

import (
	"testing"

	"educa/database"
	"educa/models"
	"educa/models/course"

	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory(t.Name())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.SeedSubjects(db, []string{"Mathematics", "Programming"}); err != nil {
		t.Fatalf("seed subjects: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{Username: username, Password: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func subjectID(t *testing.T, db *gorm.DB, slug string) uint {
	t.Helper()
	var s course.Subject
	if err := db.Where("slug = ?", slug).First(&s).Error; err != nil {
		t.Fatalf("subject %s: %v", slug, err)
	}
	return s.ID
}

func uintPtr(v uint) *uint { return &v }
