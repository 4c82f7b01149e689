package handler

import (
	"geo-attendance-backend/internal/helper"

	"github.com/gofiber/fiber/v2"
)

// bind mem-parse body ke req lalu memvalidasinya. Jika gagal, response
// error sudah ditulis dan ok bernilai false.
func bind(c *fiber.Ctx, req any) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "Data tidak valid")
	}
	if err := helper.Validator().Struct(req); err != nil {
		return false, helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	return true, nil
}

func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
