package authRoutes

import (
	authControllers "educa/controllers/auth"
	"educa/middleware"
	authValidators "educa/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", middleware.RegisterRateLimiter(), authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
