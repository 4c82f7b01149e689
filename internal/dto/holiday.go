package dto

import (
	"time"

	"geo-attendance-backend/internal/model"

	"gorm.io/datatypes"
)

type CreateHolidayRequest struct {
	HolidayDate string `json:"holiday_date" validate:"required,datetime=2006-01-02"`
	HolidayName string `json:"holiday_name" validate:"required,max=255"`
	HolidayType string `json:"holiday_type" validate:"omitempty,oneof=national company"`
}

func (r CreateHolidayRequest) ToModel(createdBy uint) model.Holiday {
	date, _ := time.Parse(dateLayout, r.HolidayDate)
	holidayType := r.HolidayType
	if holidayType == "" {
		holidayType = model.HolidayTypeNational
	}
	return model.Holiday{
		HolidayDate: datatypes.Date(date),
		HolidayName: r.HolidayName,
		HolidayType: holidayType,
		Source:      model.HolidaySourceManual,
		CreatedBy:   &createdBy,
	}
}

// UpdateHolidayRequest: semua field opsional (partial update).
type UpdateHolidayRequest struct {
	HolidayDate *string `json:"holiday_date" validate:"omitempty,datetime=2006-01-02"`
	HolidayName *string `json:"holiday_name" validate:"omitempty,max=255"`
	HolidayType *string `json:"holiday_type" validate:"omitempty,oneof=national company"`
}

func (r UpdateHolidayRequest) Apply(h *model.Holiday) {
	if r.HolidayDate != nil {
		date, _ := time.Parse(dateLayout, *r.HolidayDate)
		h.HolidayDate = datatypes.Date(date)
	}
	if r.HolidayName != nil {
		h.HolidayName = *r.HolidayName
	}
	if r.HolidayType != nil {
		h.HolidayType = *r.HolidayType
	}
}

type HolidayResponse struct {
	ID          uint   `json:"id"`
	HolidayDate string `json:"holiday_date"`
	HolidayName string `json:"holiday_name"`
	HolidayType string `json:"holiday_type"`
	Source      string `json:"source"`
	CreatedBy   *uint  `json:"created_by"`
}

func NewHolidayResponse(h *model.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		HolidayDate: time.Time(h.HolidayDate).Format(dateLayout),
		HolidayName: h.HolidayName,
		HolidayType: h.HolidayType,
		Source:      h.Source,
		CreatedBy:   h.CreatedBy,
	}
}

func NewHolidayList(list []model.Holiday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(list))
	for i := range list {
		out = append(out, NewHolidayResponse(&list[i]))
	}
	return out
}
