package routes

import (
	"time"

	"geo-attendance-backend/internal/notifier"
	"geo-attendance-backend/internal/storage"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps berisi dependency bersama yang dipakai semua route.
type Deps struct {
	DB             *gorm.DB
	JWTSecret      string
	TokenTTL       time.Duration
	Files          *storage.LocalStore
	Clock          usecase.Clock
	Notifier       notifier.LeaveNotifier
	LoginRateLimit int // request per menit per IP, 0 = tanpa limit
}

func Setup(app *fiber.App, deps Deps) {
	SetupAuthRoutes(app, deps)
	SetupAttendanceRoutes(app, deps)
	SetupLeaveRoutes(app, deps)
	SetupHolidayRoutes(app, deps)
	SetupOfficeLocationRoutes(app, deps)
}
