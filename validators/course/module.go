package courseValidator

import (
	"fmt"
	"strings"

	"educa/middleware"
	"educa/validators"

	"github.com/gofiber/fiber/v2"
)

type ModuleFormRequest struct {
	ID          *uint  `json:"id"`
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description"`
	Delete      bool   `json:"delete"`
}

// ModuleFormsetRequest is the full set of module forms of one course
type ModuleFormsetRequest struct {
	Modules []ModuleFormRequest `json:"modules"`
}

// ModuleFormset validates the module formset body. Errors are keyed modules[i].field.
func ModuleFormset() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validators.ParamID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(ModuleFormsetRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		for i := range reqData.Modules {
			form := &reqData.Modules[i]
			form.Title = strings.TrimSpace(form.Title)
			form.Description = strings.TrimSpace(form.Description)
			if form.Delete {
				continue
			}
			if form.Title == "" {
				errors[fmt.Sprintf("modules[%d].title", i)] = "This field is required!"
			}
			for field, msg := range validators.Struct(form) {
				errors[fmt.Sprintf("modules[%d].%s", i, field)] = msg
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModules", reqData)
		return c.Next()
	}
}
