package middleware

import (
	"strings"

	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		// Format header: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		// 2. Parse dan Validasi Token
		claims, err := usecase.ParseToken(secret, tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau kadaluwarsa")
		}

		// 3. Simpan data user ke Context agar bisa dipakai di Handler
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// UserID membaca id user yang diset Auth; 0 jika tidak ada.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalUserID).(uint)
	return id
}

func UserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
