package courseService

import (
	"errors"

	"educa/models/course"

	"gorm.io/gorm"
)

// SubjectSummary is a subject with the number of courses filed under it
type SubjectSummary struct {
	course.Subject
	TotalCourses int64 `json:"total_courses"`
}

// CourseSummary is a course with the number of modules it has
type CourseSummary struct {
	course.Course
	TotalModules int64 `json:"total_modules"`
}

type countRow struct {
	RefID uint
	Total int64
}

// ListSubjects returns every subject ordered by title with its course count
func ListSubjects(db *gorm.DB) ([]SubjectSummary, error) {
	var subjects []course.Subject
	if err := db.Order("title asc").Find(&subjects).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, len(subjects))
	for i, s := range subjects {
		ids[i] = s.ID
	}
	counts, err := countBy(db, &course.Course{}, "subject_id", ids)
	if err != nil {
		return nil, err
	}
	out := make([]SubjectSummary, len(subjects))
	for i, s := range subjects {
		out[i] = SubjectSummary{Subject: s, TotalCourses: counts[s.ID]}
	}
	return out, nil
}

// ListCourses returns courses newest first with their module counts. A non-empty subjectSlug
// restricts the list to that subject, which is returned as well.
func ListCourses(db *gorm.DB, subjectSlug string) (*course.Subject, []CourseSummary, error) {
	q := db.Preload("Subject").Order("created_at desc, id desc")

	var subject *course.Subject
	if subjectSlug != "" {
		subject = &course.Subject{}
		if err := db.Where("slug = ?", subjectSlug).First(subject).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrSubjectNotFound
			}
			return nil, nil, err
		}
		q = q.Where("subject_id = ?", subject.ID)
	}

	var courses []course.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, nil, err
	}
	ids := make([]uint, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	counts, err := countBy(db, &course.Module{}, "course_id", ids)
	if err != nil {
		return nil, nil, err
	}
	out := make([]CourseSummary, len(courses))
	for i, c := range courses {
		out[i] = CourseSummary{Course: c, TotalModules: counts[c.ID]}
	}
	return subject, out, nil
}

// GetCourseBySlug loads a course for its public detail page, modules in order
func GetCourseBySlug(db *gorm.DB, slug string) (*course.Course, error) {
	var c course.Course
	err := db.Where("slug = ?", slug).
		Preload("Subject").
		Preload("Modules", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(course.OrderColumn + " asc, id asc")
		}).
		First(&c).Error
	if err != nil {
		return nil, notFound(err, "course")
	}
	return &c, nil
}

// countBy counts rows of model grouped by column for the given ids
func countBy(db *gorm.DB, model interface{}, column string, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	var rows []countRow
	err := db.Model(model).
		Select(column+" AS ref_id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.RefID] = r.Total
	}
	return counts, nil
}
