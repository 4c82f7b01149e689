package routes

import (
	"geo-attendance-backend/internal/handler"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupHolidayRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewHolidayRepository(deps.DB)
	hdl := handler.NewHolidayHandler(repo)

	api := app.Group("/api/holidays", middleware.Auth(deps.JWTSecret))
	api.Get("/", hdl.GetAll)

	admin := middleware.Role(model.RoleAdmin)
	api.Post("/", admin, hdl.Create)
	api.Put("/:id", admin, hdl.Update)
	api.Delete("/:id", admin, hdl.Delete)
}
