package controllers

import (
	"educa/database"
	"educa/logger"
	"educa/middleware"
	"educa/services/courseService"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type reorderFunc func(db *gorm.DB, ownerID uint, orders map[uint]uint) (int, error)

// ModuleOrder bulk-reorders the current user's modules
func ModuleOrder(c *fiber.Ctx) error {
	return applyOrder(c, courseService.ReorderModules)
}

// ContentOrder bulk-reorders the current user's contents
func ContentOrder(c *fiber.Ctx) error {
	return applyOrder(c, courseService.ReorderContents)
}

// applyOrder always answers {"saved": "OK"}; ids that are not the caller's are skipped
func applyOrder(c *fiber.Ctx, reorder reorderFunc) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	orders, ok := c.Locals("validatedOrders").(map[uint]uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated, err := reorder(database.Database.Db.WithContext(c.UserContext()), userID, orders)
	if err != nil {
		logger.Log.Warn("reorder partially failed",
			"request_id", c.Locals("requestId"),
			"updated", updated,
			"error", err,
		)
	}
	return c.JSON(fiber.Map{"saved": "OK"})
}
