package routes

import (
	"strings"

	"supermall/models"

	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "currentUser"

// protect resolves the bearer token to a user record and stores it on the
// request context. A valid token whose user no longer exists is rejected.
func (h *Handler) protect(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		h.log.Warn().Str("path", c.Path()).Msg("Access attempt without token")
		return respondError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	userID, err := h.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		h.log.Warn().Str("path", c.Path()).Msg("Token verification failed")
		return respondError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		h.log.Warn().Uint("userId", userID).Msg("Token valid but user not found")
		return respondError(c, fiber.StatusUnauthorized, "User not found")
	}

	c.Locals(userLocalKey, &user)
	h.log.Info().Str("email", user.Email).Msg("User authenticated")
	return c.Next()
}

// authorize gates a route on role membership. Runs after protect.
func (h *Handler) authorize(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if user == nil || !roleAllowed(user.Role, allowed) {
			if user != nil {
				h.log.Warn().Str("email", user.Email).Str("role", string(user.Role)).Msg("Unauthorized access attempt")
			}
			return respondError(c, fiber.StatusForbidden, "User role is not authorized to access this route")
		}
		return c.Next()
	}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}
