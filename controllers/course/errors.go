package controllers

import (
	"errors"

	"educa/logger"
	"educa/middleware"
	"educa/services/courseService"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the response envelope
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, courseService.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	case errors.Is(err, courseService.ErrUnknownItemKind):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No such content type!", nil)
	case errors.Is(err, courseService.ErrSlugTaken):
		return middleware.ValidationErrorResponse(c, map[string]string{"slug": "Course with this slug already exists!"})
	case errors.Is(err, courseService.ErrSubjectNotFound):
		return middleware.ValidationErrorResponse(c, map[string]string{"subject_id": "Select a valid subject!"})
	}
	logger.Log.Error("course request failed",
		"request_id", c.Locals("requestId"),
		"path", c.OriginalURL(),
		"error", err,
	)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
}
