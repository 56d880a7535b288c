package handlers

import (
	"errors"

	"toko-admin/internal/logging"
	"toko-admin/internal/models"
	"toko-admin/internal/services"
	"toko-admin/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validation.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

var userMessages = map[string]string{
	"username": "Username Harus Diisi",
	"email":    "Email Tidak Valid",
	"password": "Password Minimal 6 Karakter",
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	const tag = "AUTH_REGISTER"
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return respondBadBody(c, tag, err)
	}
	user.ID = ""

	if err := h.validate.Struct(user); err != nil {
		return respondInvalid(c, tag, err, userMessages)
	}

	if err := h.authService.RegisterUser(c.UserContext(), &user); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).SendString(err.Error())
		}
		return respondError(c, tag, err, "")
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"username": "Username Harus Diisi",
	"password": "Password Harus Diisi",
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	const tag = "AUTH_LOGIN"
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}

	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, loginMessages)
	}

	token, err := h.authService.LoginUser(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			logging.Endpoint(tag).WithField("username", req.Username).Info("login rejected")
			return c.Status(fiber.StatusUnauthorized).SendString(msgUnauthorized)
		}
		return respondError(c, tag, err, "")
	}

	return c.JSON(fiber.Map{"token": token})
}
