package routes

import (
	"geo-attendance-backend/internal/handler"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaveRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewLeaveRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB) // penerima notifikasi
	uc := usecase.NewLeaveUsecase(repo, userRepo, deps.Files, deps.Notifier, deps.Clock)
	hdl := handler.NewLeaveHandler(uc)

	api := app.Group("/api/leaves", middleware.Auth(deps.JWTSecret))

	// Pegawai (admin melihat semua pengajuan)
	api.Get("/", hdl.List)
	api.Post("/", hdl.Store)

	// Approval
	admin := middleware.Role(model.RoleAdmin)
	api.Put("/:id/approve", admin, hdl.Approve)
	api.Put("/:id/reject", admin, hdl.Reject)
}
