package courseValidator

import (
	"strings"

	"educa/middleware"
	"educa/models/course"
	"educa/validators"

	"github.com/gofiber/fiber/v2"
)

// ItemRequest is the item form; which payload field is required depends on the kind
type ItemRequest struct {
	Title   string `json:"title" form:"title" validate:"required,max=250"`
	Content string `json:"content" form:"content"`
	File    string `json:"file" form:"file" validate:"max=255"`
	URL     string `json:"url" form:"url" validate:"omitempty,url"`
}

// Payload converts the form into the item payload
func (r *ItemRequest) Payload() course.ItemPayload {
	return course.ItemPayload{Title: r.Title, Content: r.Content, File: r.File, URL: r.URL}
}

// ContentTarget validates :module_id, :model_name and the optional item :id.
// An unknown model name is answered with 404.
func ContentTarget() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := validators.ParamID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		kind, err := course.ParseItemKind(c.Params("model_name"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No such content type!", nil)
		}
		if c.Params("id") != "" {
			itemID, ok := validators.ParamID(c, "id")
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Item ID!", nil)
			}
			c.Locals("itemID", itemID)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("itemKind", kind)
		return c.Next()
	}
}

// ItemForm validates the item body against the kind ContentTarget resolved
func ItemForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, ok := c.Locals("itemKind").(course.ItemKind)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No such content type!", nil)
		}

		reqData := new(ItemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.File = strings.TrimSpace(reqData.File)
		reqData.URL = strings.TrimSpace(reqData.URL)

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		switch kind {
		case course.KindText:
			if strings.TrimSpace(reqData.Content) == "" {
				errors["content"] = "This field is required!"
			}
		case course.KindFile, course.KindImage:
			if reqData.File == "" {
				errors["file"] = "This field is required!"
			}
		case course.KindVideo:
			if reqData.URL == "" {
				errors["url"] = "This field is required!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedItem", reqData)
		return c.Next()
	}
}
