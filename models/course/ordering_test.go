package course_test

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
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, slug string) course.Course {
	t.Helper()
	owner := models.User{Username: "owner-" + slug, Password: "x"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("create owner: %v", err)
	}
	subject := course.Subject{Title: "Subject " + slug, Slug: "subject-" + slug}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	c := course.Course{OwnerID: owner.ID, SubjectID: subject.ID, Title: slug, Slug: slug}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return c
}

func uintPtr(v uint) *uint { return &v }

func TestFirstModuleGetsOrderZero(t *testing.T) {
	db := openDB(t)
	c := seedCourse(t, db, "first")

	m := course.Module{CourseID: c.ID, Title: "Intro"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}
	if m.Order == nil || *m.Order != 0 {
		t.Fatalf("expected order 0, got %v", m.Order)
	}
}

func TestModuleOrderFollowsHighestSibling(t *testing.T) {
	db := openDB(t)
	c := seedCourse(t, db, "siblings")

	for i := 0; i < 3; i++ {
		if err := db.Create(&course.Module{CourseID: c.ID, Title: "m"}).Error; err != nil {
			t.Fatalf("create module %d: %v", i, err)
		}
	}
	next := course.Module{CourseID: c.ID, Title: "fourth"}
	if err := db.Create(&next).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}
	if *next.Order != 3 {
		t.Fatalf("expected order 3, got %d", *next.Order)
	}
}

func TestExplicitOrderIsKept(t *testing.T) {
	db := openDB(t)
	c := seedCourse(t, db, "explicit")

	if err := db.Create(&course.Module{CourseID: c.ID, Title: "a", Order: uintPtr(7)}).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}
	zero := course.Module{CourseID: c.ID, Title: "b", Order: uintPtr(0)}
	if err := db.Create(&zero).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}
	if *zero.Order != 0 {
		t.Fatalf("explicit 0 overwritten with %d", *zero.Order)
	}
	auto := course.Module{CourseID: c.ID, Title: "c"}
	if err := db.Create(&auto).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}
	if *auto.Order != 8 {
		t.Fatalf("expected order 8 after explicit 7, got %d", *auto.Order)
	}
}

func TestOrderIsScopedPerCourse(t *testing.T) {
	db := openDB(t)
	a := seedCourse(t, db, "course-a")
	b := seedCourse(t, db, "course-b")

	for i := 0; i < 2; i++ {
		if err := db.Create(&course.Module{CourseID: a.ID, Title: "a"}).Error; err != nil {
			t.Fatalf("create module: %v", err)
		}
	}
	m := course.Module{CourseID: b.ID, Title: "b"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}
	if *m.Order != 0 {
		t.Fatalf("expected order 0 in a fresh course, got %d", *m.Order)
	}
}

func TestUpdateDoesNotRecomputeOrder(t *testing.T) {
	db := openDB(t)
	c := seedCourse(t, db, "update")

	first := course.Module{CourseID: c.ID, Title: "first"}
	second := course.Module{CourseID: c.ID, Title: "second"}
	db.Create(&first)
	db.Create(&second)

	first.Title = "renamed"
	if err := db.Save(&first).Error; err != nil {
		t.Fatalf("save: %v", err)
	}
	var reloaded course.Module
	db.First(&reloaded, first.ID)
	if *reloaded.Order != 0 {
		t.Fatalf("expected order to stay 0, got %d", *reloaded.Order)
	}
}

func TestContentOrderIsScopedPerModule(t *testing.T) {
	db := openDB(t)
	c := seedCourse(t, db, "content")
	m1 := course.Module{CourseID: c.ID, Title: "one"}
	m2 := course.Module{CourseID: c.ID, Title: "two"}
	db.Create(&m1)
	db.Create(&m2)

	var last course.Content
	for i := 0; i < 3; i++ {
		text := course.Text{ItemBase: course.ItemBase{OwnerID: c.OwnerID, Title: "t"}, Content: "body"}
		if err := db.Create(&text).Error; err != nil {
			t.Fatalf("create text: %v", err)
		}
		last = *course.NewContent(m1.ID, &text)
		if err := db.Create(&last).Error; err != nil {
			t.Fatalf("create content: %v", err)
		}
	}
	if *last.Order != 2 {
		t.Fatalf("expected third content order 2, got %d", *last.Order)
	}

	video := course.Video{ItemBase: course.ItemBase{OwnerID: c.OwnerID, Title: "v"}, URL: "https://example.com/v"}
	db.Create(&video)
	other := course.NewContent(m2.ID, &video)
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create content: %v", err)
	}
	if *other.Order != 0 {
		t.Fatalf("expected order 0 in second module, got %d", *other.Order)
	}
}

func TestContentRejectsUnknownKind(t *testing.T) {
	db := openDB(t)
	c := seedCourse(t, db, "unknown")
	m := course.Module{CourseID: c.ID, Title: "one"}
	db.Create(&m)

	bad := course.Content{ModuleID: m.ID, ItemType: "quiz", ItemID: 1}
	if err := db.Create(&bad).Error; err == nil {
		t.Fatalf("expected unknown item kind to be rejected")
	}
}
