package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	HolidayTypeNational = "national"
	HolidayTypeCompany  = "company"

	HolidaySourceManual = "manual"
)

type Holiday struct {
	gorm.Model
	HolidayDate datatypes.Date `json:"holiday_date" gorm:"not null;index"`
	HolidayName string         `json:"holiday_name" gorm:"not null"`
	HolidayType string         `json:"holiday_type" gorm:"size:20;not null;default:national"`
	Source      string         `json:"source" gorm:"size:20;not null;default:manual"`
	CreatedBy   *uint          `json:"created_by"`
}
