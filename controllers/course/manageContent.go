package controllers

import (
	"educa/database"
	"educa/middleware"
	"educa/models/course"
	"educa/services/courseService"
	courseValidator "educa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetItem returns one of the current user's items of the requested kind
func GetItem(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID, _ := c.Locals("moduleID").(uint)
	kind, _ := c.Locals("itemKind").(course.ItemKind)
	itemID, _ := c.Locals("itemID").(uint)

	db := database.Database.Db.WithContext(c.UserContext())
	if _, err := courseService.GetOwnedModule(db, userID, moduleID); err != nil {
		return respondError(c, err, "Module not found!")
	}
	item, err := courseService.GetOwnedItem(db, userID, kind, itemID)
	if err != nil {
		return respondError(c, err, "Item not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item fetched successfully!", fiber.Map{
		"type": kind,
		"item": item,
	})
}

// SaveItem creates an item in a module, or updates it when the route carries an item id
func SaveItem(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID, _ := c.Locals("moduleID").(uint)
	kind, _ := c.Locals("itemKind").(course.ItemKind)
	reqData, ok := c.Locals("validatedItem").(*courseValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var itemID *uint
	if id, ok := c.Locals("itemID").(uint); ok {
		itemID = &id
	}

	item, content, err := courseService.SaveContent(database.Database.Db.WithContext(c.UserContext()), userID, moduleID, kind, itemID, reqData.Payload())
	if err != nil {
		return respondError(c, err, "Item not found!")
	}

	if content == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Item updated successfully!", fiber.Map{
			"type": kind,
			"item": item,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// DeleteContent removes a content and its item, answering with the module it belonged to
func DeleteContent(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	contentID, _ := c.Locals("contentID").(uint)

	moduleID, err := courseService.DeleteContent(database.Database.Db.WithContext(c.UserContext()), userID, contentID)
	if err != nil {
		return respondError(c, err, "Content not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", fiber.Map{
		"module_id": moduleID,
	})
}
