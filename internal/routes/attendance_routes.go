package routes

import (
	"geo-attendance-backend/internal/handler"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/repository"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App, deps Deps) {
	attendanceRepo := repository.NewAttendanceRepository(deps.DB)
	locationRepo := repository.NewOfficeLocationRepository(deps.DB)
	uc := usecase.NewAttendanceUsecase(attendanceRepo, usecase.NewLocationValidator(locationRepo), deps.Files, deps.Clock)
	hdl := handler.NewAttendanceHandler(uc)

	api := app.Group("/api/attendance", middleware.Auth(deps.JWTSecret))

	api.Post("/check-in", hdl.CheckIn)
	api.Post("/check-out", hdl.CheckOut)
	api.Get("/today", hdl.Today)
	api.Get("/history", hdl.History)
	api.Post("/location-check", hdl.LocationCheck)
}
