package handler

import (
	"errors"
	"log"

	"geo-attendance-backend/internal/dto"
	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// OfficeLocationHandler mengelola geofence kantor. Perubahan langsung
// berlaku untuk check-in berikutnya karena validator tidak menyimpan cache.
type OfficeLocationHandler struct {
	repo repository.OfficeLocationRepository
}

func NewOfficeLocationHandler(repo repository.OfficeLocationRepository) *OfficeLocationHandler {
	return &OfficeLocationHandler{repo: repo}
}

func (h *OfficeLocationHandler) GetAll(c *fiber.Ctx) error {
	data, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list office locations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", data)
}

func (h *OfficeLocationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOfficeLocationRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	loc := req.ToModel()
	if err := h.repo.Create(c.UserContext(), &loc); err != nil {
		log.Printf("[ERROR] create office location: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonCreated(c, "Lokasi kantor berhasil ditambahkan", loc)
}

func (h *OfficeLocationHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateOfficeLocationRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	loc, err := h.repo.GetByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}
	if err != nil {
		log.Printf("[ERROR] load office location %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(loc)
	if err := h.repo.Update(c.UserContext(), loc); err != nil {
		log.Printf("[ERROR] update office location %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data")
	}
	return helper.JsonOK(c, "Data berhasil diupdate", loc)
}

func (h *OfficeLocationHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	err := h.repo.Delete(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}
	if err != nil {
		log.Printf("[ERROR] delete office location %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonOK(c, "Data berhasil dihapus", nil)
}
