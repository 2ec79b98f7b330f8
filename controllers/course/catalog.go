package controllers

import (
	"errors"

	"educa/database"
	"educa/middleware"
	"educa/services/courseService"

	"github.com/gofiber/fiber/v2"
)

// CourseList lists all subjects and courses, optionally filtered by :subject
func CourseList(c *fiber.Ctx) error {
	db := database.Database.Db.WithContext(c.UserContext())

	subjects, err := courseService.ListSubjects(db)
	if err != nil {
		return respondError(c, err, "Subject not found!")
	}
	subject, courses, err := courseService.ListCourses(db, c.Params("subject"))
	if err != nil {
		if errors.Is(err, courseService.ErrSubjectNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
		}
		return respondError(c, err, "Subject not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"subjects": subjects,
		"subject":  subject,
		"courses":  courses,
	})
}

// CourseDetail shows a course by slug with its modules in order
func CourseDetail(c *fiber.Ctx) error {
	course, err := courseService.GetCourseBySlug(database.Database.Db.WithContext(c.UserContext()), c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Course not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
