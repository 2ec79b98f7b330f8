package courseService_test

import (
	"errors"
	"testing"

	"educa/models/course"
	"educa/services/courseService"
)

func TestEnrollIsIdempotent(t *testing.T) {
	db := openDB(t)
	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	c, _ := courseService.CreateCourse(db, owner.ID, courseService.CourseInput{SubjectID: subjectID(t, db, "mathematics"), Title: "Graphs", Overview: "o"})

	for i := 0; i < 2; i++ {
		if _, err := courseService.Enroll(db, student.ID, c.ID); err != nil {
			t.Fatalf("enroll #%d: %v", i+1, err)
		}
	}

	var count int64
	db.Table("course_students").Where("course_id = ? AND user_id = ?", c.ID, student.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single membership, got %d", count)
	}
	enrolled, err := courseService.IsEnrolled(db, student.ID, c.ID)
	if err != nil || !enrolled {
		t.Fatalf("expected student to be enrolled, got %v, %v", enrolled, err)
	}

	if _, err := courseService.Enroll(db, student.ID, 999); !errors.Is(err, courseService.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown course, got %v", err)
	}
}

func TestStudentCourseDetail(t *testing.T) {
	db := openDB(t)
	owner := createUser(t, db, "owner")
	student := createUser(t, db, "student")
	c, _ := courseService.CreateCourse(db, owner.ID, courseService.CourseInput{SubjectID: subjectID(t, db, "programming"), Title: "Haskell", Overview: "o"})
	saved, _ := courseService.SaveModuleFormset(db, owner.ID, c.ID, []courseService.ModuleForm{{Title: "Types"}, {Title: "Monads"}})
	first, second := saved.Modules[0], saved.Modules[1]
	if _, _, err := courseService.SaveContent(db, owner.ID, second.ID, course.KindText, nil, course.ItemPayload{Title: "bind", Content: ">>="}); err != nil {
		t.Fatalf("save content: %v", err)
	}

	if _, err := courseService.StudentCourseDetail(db, student.ID, c.ID, nil); !errors.Is(err, courseService.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before enrolling, got %v", err)
	}
	if _, err := courseService.Enroll(db, student.ID, c.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	detail, err := courseService.StudentCourseDetail(db, student.ID, c.ID, nil)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Module == nil || detail.Module.ID != first.ID {
		t.Fatalf("expected the first module by default, got %+v", detail.Module)
	}

	detail, err = courseService.StudentCourseDetail(db, student.ID, c.ID, uintPtr(second.ID))
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Module.Contents) != 1 {
		t.Fatalf("expected 1 content in the selected module, got %d", len(detail.Module.Contents))
	}
	if _, ok := detail.Module.Contents[0].Item.(*course.Text); !ok {
		t.Fatalf("expected resolved text item, got %T", detail.Module.Contents[0].Item)
	}

	other, _ := courseService.CreateCourse(db, owner.ID, courseService.CourseInput{SubjectID: subjectID(t, db, "programming"), Title: "OCaml", Overview: "o"})
	foreign, _ := courseService.SaveModuleFormset(db, owner.ID, other.ID, []courseService.ModuleForm{{Title: "Functors"}})
	if _, err := courseService.StudentCourseDetail(db, student.ID, c.ID, uintPtr(foreign.Modules[0].ID)); !errors.Is(err, courseService.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a module of another course, got %v", err)
	}

	courses, err := courseService.StudentCourses(db, student.ID)
	if err != nil {
		t.Fatalf("student courses: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != c.ID {
		t.Fatalf("expected only the enrolled course, got %+v", courses)
	}
}
