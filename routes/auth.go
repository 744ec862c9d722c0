package routes

import (
	"strings"

	"supermall/auth"
	"supermall/models"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondValidationError(c, err)
	}

	role := req.Role
	if !role.IsValid() {
		role = models.RoleCustomer
	}

	email := strings.ToLower(req.Email)
	var existing models.User
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return respondError(c, fiber.StatusBadRequest, "Email already registered")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to process password")
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := h.db.Create(&user).Error; err != nil {
		h.log.Error().Err(err).Msg("Registration failed")
		return respondError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Token generation failed")
		return respondError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	h.log.Info().Str("email", user.Email).Msg("User registered")
	return respondData(c, fiber.StatusCreated, fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to parse request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondValidationError(c, err)
	}

	var user models.User
	if err := h.db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		h.log.Warn().Str("email", req.Email).Msg("Login failed")
		return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		h.log.Warn().Str("email", req.Email).Msg("Login failed")
		return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Token generation failed")
		return respondError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	h.log.Info().Str("email", user.Email).Msg("User logged in")
	return respondData(c, fiber.StatusOK, fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) me(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, currentUser(c))
}
