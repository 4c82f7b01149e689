package model

import "gorm.io/gorm"

// OfficeLocation adalah geofence kantor: titik pusat + radius dalam meter.
type OfficeLocation struct {
	gorm.Model
	LocationName string  `json:"location_name" gorm:"not null"`
	Latitude     float64 `json:"latitude" gorm:"type:decimal(10,7);not null"`
	Longitude    float64 `json:"longitude" gorm:"type:decimal(10,7);not null"`
	Radius       int     `json:"radius" gorm:"not null"` // meter
	IsActive     bool    `json:"is_active" gorm:"not null;index"`
}
