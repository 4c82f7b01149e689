package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/notifier"
	"geo-attendance-backend/internal/repository/memory"
	"geo-attendance-backend/internal/storage"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	officeLat = -6.2
	officeLon = 106.816666
)

type env struct {
	app         *fiber.App
	attendances *memory.AttendanceStore
	locations   *memory.OfficeLocations
	holidays    *memory.Holidays
}

// asUser menggantikan middleware.Auth di test: identitas diambil dari header.
func asUser(c *fiber.Ctx) error {
	switch c.Get("X-Test-User") {
	case "admin":
		c.Locals(middleware.LocalUserID, uint(1))
		c.Locals(middleware.LocalRole, model.RoleAdmin)
	default:
		c.Locals(middleware.LocalUserID, uint(7))
		c.Locals(middleware.LocalRole, model.RoleEmployee)
	}
	return c.Next()
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		attendances: memory.NewAttendanceStore(),
		locations: memory.NewOfficeLocations(model.OfficeLocation{
			LocationName: "Kantor Pusat",
			Latitude:     officeLat,
			Longitude:    officeLon,
			Radius:       100,
			IsActive:     true,
		}),
		holidays: memory.NewHolidays(),
	}
	clock := usecase.ClockFunc(func() time.Time {
		return time.Date(2026, 10, 16, 7, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	})
	photos := storage.NewLocalStore(t.TempDir(), 640)
	users := memory.NewUsers(
		model.User{Model: gorm.Model{ID: 1}, Username: "admin", FullName: "Admin", Role: model.RoleAdmin},
		model.User{Model: gorm.Model{ID: 7}, Username: "budi", FullName: "Budi", Role: model.RoleEmployee},
	)

	attendance := NewAttendanceHandler(usecase.NewAttendanceUsecase(
		e.attendances, usecase.NewLocationValidator(e.locations), photos, clock))
	leave := NewLeaveHandler(usecase.NewLeaveUsecase(
		memory.NewLeaves(e.attendances), users, photos, notifier.LogNotifier{}, clock))
	offices := NewOfficeLocationHandler(e.locations)
	holidays := NewHolidayHandler(e.holidays)
	admin := middleware.Role(model.RoleAdmin)

	app := fiber.New()
	api := app.Group("/api", asUser)
	api.Post("/attendance/check-in", attendance.CheckIn)
	api.Post("/attendance/check-out", attendance.CheckOut)
	api.Get("/attendance/today", attendance.Today)
	api.Get("/attendance/history", attendance.History)
	api.Post("/attendance/location-check", attendance.LocationCheck)
	api.Get("/leaves", leave.List)
	api.Post("/leaves", leave.Store)
	api.Put("/leaves/:id/approve", leave.Approve)
	api.Put("/leaves/:id/reject", leave.Reject)
	api.Post("/office-locations", offices.Create)
	api.Put("/office-locations/:id", offices.Update)
	api.Delete("/office-locations/:id", offices.Delete)
	api.Get("/holidays", holidays.GetAll)
	api.Post("/holidays", admin, holidays.Create)
	api.Put("/holidays/:id", admin, holidays.Update)
	api.Delete("/holidays/:id", admin, holidays.Delete)
	e.app = app
	return e
}

type response struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	ErrorCode  string              `json:"error_code"`
	Errors     map[string][]string `json:"errors"`
	Data       json.RawMessage     `json:"data"`
	Pagination map[string]any      `json:"pagination"`
}

func (e *env) do(t *testing.T, method, path, user string, body any) (int, response) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", user)

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out response
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
	}
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
	return v
}
