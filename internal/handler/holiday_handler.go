package handler

import (
	"errors"
	"log"

	"geo-attendance-backend/internal/dto"
	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/middleware"
	"geo-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HolidayHandler struct {
	repo repository.HolidayRepository
}

func NewHolidayHandler(repo repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{repo: repo}
}

// GetAll mendukung filter ?year= dan ?month=.
func (h *HolidayHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.HolidayFilter{Year: c.QueryInt("year"), Month: c.QueryInt("month")}
	if filter.Month < 0 || filter.Month > 12 {
		return helper.JsonValidationError(c, map[string][]string{"month": {"harus 1 sampai 12"}})
	}
	data, err := h.repo.GetAll(c.UserContext(), filter)
	if err != nil {
		log.Printf("[ERROR] list holidays: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", dto.NewHolidayList(data))
}

func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateHolidayRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	holiday := req.ToModel(middleware.UserID(c))
	if err := h.repo.Create(c.UserContext(), &holiday); err != nil {
		log.Printf("[ERROR] create holiday: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonCreated(c, "Hari libur berhasil ditambahkan", dto.NewHolidayResponse(&holiday))
}

func (h *HolidayHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateHolidayRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	holiday, err := h.repo.GetByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if err != nil {
		log.Printf("[ERROR] load holiday %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(holiday)
	if err := h.repo.Update(c.UserContext(), holiday); err != nil {
		log.Printf("[ERROR] update holiday %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data")
	}
	return helper.JsonOK(c, "Data berhasil diupdate", dto.NewHolidayResponse(holiday))
}

func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	err := h.repo.Delete(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if err != nil {
		log.Printf("[ERROR] delete holiday %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonOK(c, "Data berhasil dihapus", nil)
}
