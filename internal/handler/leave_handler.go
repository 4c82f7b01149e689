package handler

import (
	"errors"
	"log"

	"geo-attendance-backend/internal/dto"
	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/storage"
	"geo-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const leavePerPage = 20

type LeaveHandler struct {
	uc *usecase.LeaveUsecase
}

func NewLeaveHandler(uc *usecase.LeaveUsecase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

func (h *LeaveHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, leavePerPage, 100)
	viewer := usecase.Viewer{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}

	list, total, err := h.uc.List(c.UserContext(), viewer, c.Query("status"), p.Page, p.PerPage)
	if err != nil {
		return writeLeaveError(c, err)
	}
	return helper.JsonList(c, "ok", dto.NewLeaveList(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(list)))
}

func (h *LeaveHandler) Store(c *fiber.Ctx) error {
	var req dto.CreateLeaveRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	start, end := req.Dates()
	in := usecase.SubmitLeaveInput{
		LeaveType: req.LeaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}
	if req.Attachment != "" {
		data, err := storage.DecodeBase64(req.Attachment)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Lampiran tidak valid")
		}
		in.Attachment = data
	}

	leave, err := h.uc.Submit(c.UserContext(), middleware.UserID(c), in)
	if err != nil {
		return writeLeaveError(c, err)
	}
	return helper.JsonCreated(c, "Pengajuan berhasil dikirim", dto.NewLeaveResponse(leave))
}

func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	leave, err := h.uc.Approve(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return writeLeaveError(c, err)
	}
	return helper.JsonOK(c, "Pengajuan disetujui", dto.NewLeaveResponse(leave))
}

func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.RejectLeaveRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	leave, err := h.uc.Reject(c.UserContext(), middleware.UserID(c), id, req.RejectionReason)
	if err != nil {
		return writeLeaveError(c, err)
	}
	return helper.JsonOK(c, "Pengajuan ditolak", dto.NewLeaveResponse(leave))
}

func writeLeaveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrLeaveNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	case errors.Is(err, usecase.ErrLeaveNotPending):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Pengajuan sudah diproses")
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return helper.JsonValidationError(c, map[string][]string{"end_date": {"tidak boleh sebelum start_date"}})
	case errors.Is(err, usecase.ErrLeaveRangeTooLong):
		return helper.JsonValidationError(c, map[string][]string{"end_date": {"rentang pengajuan terlalu panjang"}})
	default:
		log.Printf("[ERROR] leave: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pengajuan")
	}
}
