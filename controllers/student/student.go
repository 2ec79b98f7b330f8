package studentController

import (
	"errors"
	"strconv"

	"educa/database"
	"educa/logger"
	"educa/middleware"
	"educa/services/courseService"
	studentValidator "educa/validators/student"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse adds the current user to a course's students
func EnrollCourse(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedEnroll").(*studentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.WithContext(c.UserContext())
	already, err := courseService.IsEnrolled(db, userID, reqData.CourseID)
	if err != nil {
		return respondError(c, err)
	}
	course, err := courseService.Enroll(db, userID, reqData.CourseID)
	if err != nil {
		return respondError(c, err)
	}

	message := "Enrolled successfully!"
	if already {
		message = "Already enrolled!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"course_id": course.ID,
		"redirect":  "/students/course/" + strconv.FormatUint(uint64(course.ID), 10),
	})
}

// StudentCourses lists the courses the current user is enrolled in
func StudentCourses(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := courseService.StudentCourses(database.Database.Db.WithContext(c.UserContext()), userID)
	if err != nil {
		return respondError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// StudentCourseDetail opens an enrolled course at :module_id, or at its first module
func StudentCourseDetail(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, _ := c.Locals("courseID").(uint)
	var moduleID *uint
	if id, ok := c.Locals("moduleID").(uint); ok {
		moduleID = &id
	}

	detail, err := courseService.StudentCourseDetail(database.Database.Db.WithContext(c.UserContext()), userID, courseID, moduleID)
	if err != nil {
		return respondError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", detail)
}

func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, courseService.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	logger.Log.Error("student request failed",
		"request_id", c.Locals("requestId"),
		"path", c.OriginalURL(),
		"error", err,
	)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
}
