package middleware

import (
	"geo-attendance-backend/internal/helper"

	"github.com/gofiber/fiber/v2"
)

func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role user dari context (diset di Auth middleware)
		userRole := UserRole(c)
		if userRole == "" {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak: Role tidak valid")
		}

		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
		}

		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak: Anda tidak memiliki akses")
	}
}
