package courseValidator

import (
	"strings"

	"educa/middleware"
	"educa/validators"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the course create/edit form
type CourseRequest struct {
	SubjectID uint   `json:"subject_id" form:"subject_id" validate:"required,gt=0"`
	Title     string `json:"title" form:"title" validate:"required,max=200"`
	Slug      string `json:"slug" form:"slug" validate:"omitempty,max=200,slug"`
	Overview  string `json:"overview" form:"overview" validate:"required"`
}

// CourseForm validates a course create/edit body
func CourseForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Slug = strings.TrimSpace(reqData.Slug)
		reqData.Overview = strings.TrimSpace(reqData.Overview)

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validators.ParamID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// ModuleID validates the :module_id route parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := validators.ParamID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// ContentID validates the :id route parameter of a content
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, ok := validators.ParamID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}
		c.Locals("contentID", contentID)
		return c.Next()
	}
}
