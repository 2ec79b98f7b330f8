package courseValidator

import (
	"strconv"
	"strings"

	"educa/middleware"

	"github.com/gofiber/fiber/v2"
)

// OrderMap validates a {"<id>": order} body into map[uint]uint
func OrderMap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := make(map[string]uint)
		if err := c.BodyParser(&raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		orders := make(map[uint]uint, len(raw))
		for key, order := range raw {
			id, err := strconv.ParseUint(strings.TrimSpace(key), 10, 64)
			if err != nil || id == 0 {
				errors[key] = "Invalid ID!"
				continue
			}
			orders[uint(id)] = order
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrders", orders)
		return c.Next()
	}
}
