package dto

import "geo-attendance-backend/internal/model"

const DefaultRadius = 100

type CreateOfficeLocationRequest struct {
	LocationName string   `json:"location_name" validate:"required,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	Radius       *int     `json:"radius" validate:"omitempty,min=1,max=100000"`
	IsActive     *bool    `json:"is_active"`
}

func (r CreateOfficeLocationRequest) ToModel() model.OfficeLocation {
	loc := model.OfficeLocation{
		LocationName: r.LocationName,
		Latitude:     *r.Latitude,
		Longitude:    *r.Longitude,
		Radius:       DefaultRadius,
		IsActive:     true,
	}
	if r.Radius != nil {
		loc.Radius = *r.Radius
	}
	if r.IsActive != nil {
		loc.IsActive = *r.IsActive
	}
	return loc
}

type UpdateOfficeLocationRequest struct {
	LocationName *string  `json:"location_name" validate:"omitempty,max=255"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
	Radius       *int     `json:"radius" validate:"omitempty,min=1,max=100000"`
	IsActive     *bool    `json:"is_active"`
}

func (r UpdateOfficeLocationRequest) Apply(loc *model.OfficeLocation) {
	if r.LocationName != nil {
		loc.LocationName = *r.LocationName
	}
	if r.Latitude != nil {
		loc.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		loc.Longitude = *r.Longitude
	}
	if r.Radius != nil {
		loc.Radius = *r.Radius
	}
	if r.IsActive != nil {
		loc.IsActive = *r.IsActive
	}
}
