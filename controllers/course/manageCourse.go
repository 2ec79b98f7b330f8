package controllers

import (
	"educa/database"
	"educa/middleware"
	"educa/services/courseService"
	courseValidator "educa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// ManageCourseList lists the courses the current user owns
func ManageCourseList(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := courseService.ListOwnedCourses(database.Database.Db.WithContext(c.UserContext()), userID)
	if err != nil {
		return respondError(c, err, "Course not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func CreateCourse(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := courseService.CreateCourse(database.Database.Db.WithContext(c.UserContext()), userID, courseInput(reqData))
	if err != nil {
		return respondError(c, err, "Course not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, _ := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := courseService.UpdateCourse(database.Database.Db.WithContext(c.UserContext()), userID, courseID, courseInput(reqData))
	if err != nil {
		return respondError(c, err, "Course not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, _ := c.Locals("courseID").(uint)

	if err := courseService.DeleteCourse(database.Database.Db.WithContext(c.UserContext()), userID, courseID); err != nil {
		return respondError(c, err, "Course not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func courseInput(req *courseValidator.CourseRequest) courseService.CourseInput {
	return courseService.CourseInput{
		SubjectID: req.SubjectID,
		Title:     req.Title,
		Slug:      req.Slug,
		Overview:  req.Overview,
	}
}
