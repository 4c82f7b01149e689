package handler

import (
	"errors"
	"log"

	"geo-attendance-backend/internal/dto"
	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/repository"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	token, user, err := h.uc.Login(c.UserContext(), req.Username, req.Password)
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	case errors.Is(err, usecase.ErrUserInactive):
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda tidak aktif")
	case err != nil:
		log.Printf("[ERROR] login %q: %v", req.Username, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{Token: token, Type: "Bearer", User: user})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.Profile(c.UserContext(), middleware.UserID(c))
	if errors.Is(err, repository.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		log.Printf("[ERROR] profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "ok", user)
}

// Logout tidak menyimpan state; token berakhir sesuai masa berlakunya.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Logout berhasil", nil)
}
