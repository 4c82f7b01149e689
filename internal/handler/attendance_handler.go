package handler

import (
	"context"
	"errors"
	"log"

	"geo-attendance-backend/internal/dto"
	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/storage"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const historyPerPage = 30

type AttendanceHandler struct {
	uc *usecase.AttendanceUsecase
}

func NewAttendanceHandler(uc *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	return h.check(c, h.uc.CheckIn, "Check-in berhasil")
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	return h.check(c, h.uc.CheckOut, "Check-out berhasil")
}

type checkFunc func(ctx context.Context, userID uint, in usecase.CheckInput) (*model.Attendance, error)

func (h *AttendanceHandler) check(c *fiber.Ctx, do checkFunc, message string) error {
	var req dto.CheckRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	in := usecase.CheckInput{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if req.Photo != "" {
		photo, err := storage.DecodeBase64(req.Photo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Foto tidak valid")
		}
		in.Photo = photo
	}

	record, err := do(c.UserContext(), middleware.UserID(c), in)
	if err != nil {
		return writeAttendanceError(c, err)
	}
	return helper.JsonOK(c, message, dto.NewAttendanceResponse(record))
}

// Today mengembalikan data null jika belum ada record hari ini.
func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	record, err := h.uc.Today(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return writeAttendanceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.NewAttendanceResponse(record))
}

func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, historyPerPage, 100)
	list, total, err := h.uc.History(c.UserContext(), middleware.UserID(c), p.Page, p.PerPage)
	if err != nil {
		return writeAttendanceError(c, err)
	}
	return helper.JsonList(c, "ok", dto.NewAttendanceList(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(list)))
}

func (h *AttendanceHandler) LocationCheck(c *fiber.Ctx) error {
	var req dto.LocationCheckRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	res, err := h.uc.CheckLocation(c.UserContext(), *req.Latitude, *req.Longitude)
	if err != nil {
		return writeAttendanceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.NewLocationCheckResponse(*res))
}

func writeAttendanceError(c *fiber.Ctx, err error) error {
	var current *model.Attendance
	var stateErr *usecase.StateError
	if errors.As(err, &stateErr) {
		current = stateErr.Attendance
	}

	switch {
	case errors.Is(err, usecase.ErrAlreadyCheckedIn):
		return helper.JsonErrorData(c, fiber.StatusUnprocessableEntity, "Anda sudah melakukan check-in hari ini", dto.NewAttendanceResponse(current))
	case errors.Is(err, usecase.ErrAlreadyCheckedOut):
		return helper.JsonErrorData(c, fiber.StatusUnprocessableEntity, "Anda sudah melakukan check-out hari ini", dto.NewAttendanceResponse(current))
	case errors.Is(err, usecase.ErrNotCheckedIn):
		return helper.JsonErrorData(c, fiber.StatusUnprocessableEntity, "Anda belum melakukan check-in hari ini", dto.NewAttendanceResponse(current))
	case errors.Is(err, usecase.ErrLocationRejected):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Lokasi Anda di luar radius kantor")
	case errors.Is(err, usecase.ErrInvalidPhoto):
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto tidak valid")
	case errors.Is(err, usecase.ErrInvalidInput):
		return helper.JsonError(c, fiber.StatusBadRequest, "Koordinat tidak valid")
	default:
		log.Printf("[ERROR] attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses absensi")
	}
}
