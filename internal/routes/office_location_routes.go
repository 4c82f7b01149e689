package routes

import (
	"geo-attendance-backend/internal/handler"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupOfficeLocationRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewOfficeLocationRepository(deps.DB)
	hdl := handler.NewOfficeLocationHandler(repo)

	api := app.Group("/api/office-locations", middleware.Auth(deps.JWTSecret), middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
