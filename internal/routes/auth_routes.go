package routes

import (
	"time"

	"geo-attendance-backend/internal/handler"
	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/repository"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func SetupAuthRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewUserRepository(deps.DB)
	hdl := handler.NewAuthHandler(usecase.NewAuthUsecase(repo, deps.JWTSecret, deps.TokenTTL, deps.Clock))

	login := []fiber.Handler{}
	if deps.LoginRateLimit > 0 {
		login = append(login, limiter.New(limiter.Config{
			Max:        deps.LoginRateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return helper.JsonError(c, fiber.StatusTooManyRequests, "Terlalu banyak percobaan login, coba lagi nanti")
			},
		}))
	}
	app.Post("/api/login", append(login, hdl.Login)...)

	// Protected
	auth := middleware.Auth(deps.JWTSecret)
	app.Get("/api/profile", auth, hdl.Profile)
	app.Post("/api/logout", auth, hdl.Logout)
}
