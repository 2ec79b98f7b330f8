package courseService_test

import (
	"testing"

	"educa/models/course"
	"educa/services/courseService"
)

func TestReorderModules(t *testing.T) {
	db := openDB(t)
	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")
	c, _ := courseService.CreateCourse(db, owner.ID, courseService.CourseInput{SubjectID: subjectID(t, db, "mathematics"), Title: "Sets", Overview: "o"})
	saved, err := courseService.SaveModuleFormset(db, owner.ID, c.ID, []courseService.ModuleForm{{Title: "one"}, {Title: "two"}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	one, two := saved.Modules[0].ID, saved.Modules[1].ID

	// a stranger's request changes nothing
	n, err := courseService.ReorderModules(db, other.ID, map[uint]uint{one: 9})
	if err != nil || n != 0 {
		t.Fatalf("expected no update for non-owner, got %d, %v", n, err)
	}

	n, err = courseService.ReorderModules(db, owner.ID, map[uint]uint{one: 3, two: 1, 4242: 0})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 updates, got %d", n)
	}

	modules, _ := courseService.CourseModules(db, owner.ID, c.ID)
	if modules.Modules[0].ID != two || *modules.Modules[0].Order != 1 || *modules.Modules[1].Order != 3 {
		t.Fatalf("unexpected order after reorder: %+v", modules.Modules)
	}
}

func TestReorderContents(t *testing.T) {
	db := openDB(t)
	owner := createUser(t, db, "owner")
	m := ownedModule(t, db, owner.ID, "Go")

	_, a, _ := courseService.SaveContent(db, owner.ID, m.ID, course.KindText, nil, course.ItemPayload{Title: "a", Content: "a"})
	_, b, _ := courseService.SaveContent(db, owner.ID, m.ID, course.KindText, nil, course.ItemPayload{Title: "b", Content: "b"})

	if _, err := courseService.ReorderContents(db, owner.ID, map[uint]uint{a.ID: 5, b.ID: 2}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	loaded, err := courseService.ModuleContents(db, owner.ID, m.ID)
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if loaded.Contents[0].ID != b.ID || loaded.Contents[1].ID != a.ID {
		t.Fatalf("expected b before a, got %d then %d", loaded.Contents[0].ID, loaded.Contents[1].ID)
	}
}
