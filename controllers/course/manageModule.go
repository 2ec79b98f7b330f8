package controllers

import (
	"educa/database"
	"educa/middleware"
	"educa/services/courseService"
	courseValidator "educa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CourseModules returns an owned course with its modules in order
func CourseModules(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, _ := c.Locals("courseID").(uint)

	course, err := courseService.CourseModules(database.Database.Db.WithContext(c.UserContext()), userID, courseID)
	if err != nil {
		return respondError(c, err, "Course not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", course)
}

// SaveModules applies the module formset of an owned course
func SaveModules(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, _ := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedModules").(*courseValidator.ModuleFormsetRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	forms := make([]courseService.ModuleForm, len(reqData.Modules))
	for i, m := range reqData.Modules {
		forms[i] = courseService.ModuleForm{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Delete:      m.Delete,
		}
	}

	course, err := courseService.SaveModuleFormset(database.Database.Db.WithContext(c.UserContext()), userID, courseID, forms)
	if err != nil {
		return respondError(c, err, "Module not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules saved successfully!", course)
}

// ModuleContents lists the contents of an owned module with their items
func ModuleContents(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID, _ := c.Locals("moduleID").(uint)

	module, err := courseService.ModuleContents(database.Database.Db.WithContext(c.UserContext()), userID, moduleID)
	if err != nil {
		return respondError(c, err, "Module not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contents fetched successfully!", module)
}
