package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	validate = newValidate()

	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

func newValidate() *validator.Validate {
	v := validator.New()
	// report json/form field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// Struct validates s and returns field -> message, or nil when s is valid
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "min":
		return fmt.Sprintf("Must be at least %s characters long!", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long!", fe.Param())
	case "email":
		return "Enter a valid email address!"
	case "url":
		return "Enter a valid URL!"
	case "eqfield":
		return "The two password fields didn't match!"
	case "slug":
		return "Use only lowercase letters, numbers, hyphens or underscores!"
	case "username":
		return "Use only letters, numbers and @/./+/-/_ characters!"
	case "gt":
		return fmt.Sprintf("Must be greater than %s!", fe.Param())
	default:
		return fmt.Sprintf("Failed the %q check!", fe.Tag())
	}
}

// ParamID parses a positive numeric route parameter
func ParamID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
