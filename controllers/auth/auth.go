package authController

import (
	"errors"

	"educa/database"
	"educa/logger"
	"educa/middleware"
	"educa/services/authService"
	authValidator "educa/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// Register creates an account and logs it in
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := authService.Register(database.Database.Db.WithContext(c.UserContext()), authService.RegisterInput{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: reqData.Password1,
	})
	if err != nil {
		if errors.Is(err, authService.ErrUsernameTaken) {
			return middleware.ValidationErrorResponse(c, map[string]string{"username": "A user with that username already exists!"})
		}
		logger.Log.Error("registration failed", "username", reqData.Username, "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	logger.Log.Info("user registered", "user_id", session.User.ID)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered successfully!", session)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := authService.Authenticate(database.Database.Db.WithContext(c.UserContext()), reqData.Username, reqData.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
		}
		logger.Log.Error("login failed", "username", reqData.Username, "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", session)
}
