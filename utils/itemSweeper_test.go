package utils_test

import (
	"testing"
	"time"

	"educa/database"
	"educa/models"
	"educa/models/course"
	"educa/utils"
)

func TestSweepOrphanItems(t *testing.T) {
	db, err := database.OpenMemory(t.Name())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	owner := models.User{Username: "sweeper", Password: "x"}
	subject := course.Subject{Title: "Music", Slug: "music"}
	db.Create(&owner)
	db.Create(&subject)
	c := course.Course{OwnerID: owner.ID, SubjectID: subject.ID, Title: "Harmony", Slug: "harmony", Overview: "o"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	m := course.Module{CourseID: c.ID, Title: "Intervals"}
	db.Create(&m)

	linked := &course.Text{ItemBase: course.ItemBase{OwnerID: owner.ID, Title: "kept"}, Content: "body"}
	orphan := &course.Video{ItemBase: course.ItemBase{OwnerID: owner.ID, Title: "gone"}, URL: "https://example.com/v"}
	fresh := &course.File{ItemBase: course.ItemBase{OwnerID: owner.ID, Title: "fresh"}, File: "files/a.pdf"}
	for _, item := range []course.Item{linked, orphan, fresh} {
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("create item: %v", err)
		}
	}
	if err := db.Create(course.NewContent(m.ID, linked)).Error; err != nil {
		t.Fatalf("create content: %v", err)
	}

	old := time.Now().Add(-2 * time.Hour)
	db.Model(&course.Text{}).Where("id = ?", linked.ID).UpdateColumn("updated_at", old)
	db.Model(&course.Video{}).Where("id = ?", orphan.ID).UpdateColumn("updated_at", old)

	removed, err := utils.SweepOrphanItems(db, time.Hour)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed item, got %d", removed)
	}

	var count int64
	db.Model(&course.Video{}).Where("id = ?", orphan.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected orphaned video to be deleted")
	}
	db.Model(&course.Text{}).Where("id = ?", linked.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected linked text to survive")
	}
	db.Model(&course.File{}).Where("id = ?", fresh.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected item inside the grace period to survive")
	}
}

func TestStartItemSweeperRejectsBadSchedule(t *testing.T) {
	db, err := database.OpenMemory(t.Name())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := utils.StartItemSweeper(db, "not a schedule", time.Hour); err == nil {
		t.Fatalf("expected invalid schedule to be rejected")
	}

	c, err := utils.StartItemSweeper(db, "@hourly", time.Hour)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Stop()
}
