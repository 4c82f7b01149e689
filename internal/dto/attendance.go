package dto

import (
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/usecase"
)

const dateLayout = "2006-01-02"

// CheckRequest dipakai untuk check-in dan check-out. Photo berisi base64
// (boleh berbentuk data URL), opsional.
type CheckRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Photo     string   `json:"photo"`
}

type LocationCheckRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type AttendanceResponse struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"user_id"`
	Date              string     `json:"date"`
	CheckInTime       *time.Time `json:"check_in_time"`
	CheckInLatitude   *float64   `json:"check_in_latitude"`
	CheckInLongitude  *float64   `json:"check_in_longitude"`
	CheckInPhoto      *string    `json:"check_in_photo"`
	CheckOutTime      *time.Time `json:"check_out_time"`
	CheckOutLatitude  *float64   `json:"check_out_latitude"`
	CheckOutLongitude *float64   `json:"check_out_longitude"`
	CheckOutPhoto     *string    `json:"check_out_photo"`
	Status            string     `json:"status"`
	Notes             string     `json:"notes,omitempty"`
}

func NewAttendanceResponse(a *model.Attendance) *AttendanceResponse {
	if a == nil {
		return nil
	}
	return &AttendanceResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		Date:              time.Time(a.Date).Format(dateLayout),
		CheckInTime:       a.CheckInTime,
		CheckInLatitude:   a.CheckInLatitude,
		CheckInLongitude:  a.CheckInLongitude,
		CheckInPhoto:      a.CheckInPhoto,
		CheckOutTime:      a.CheckOutTime,
		CheckOutLatitude:  a.CheckOutLatitude,
		CheckOutLongitude: a.CheckOutLongitude,
		CheckOutPhoto:     a.CheckOutPhoto,
		Status:            a.Status,
		Notes:             a.Notes,
	}
}

func NewAttendanceList(list []model.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for i := range list {
		out = append(out, *NewAttendanceResponse(&list[i]))
	}
	return out
}

type LocationCheckResponse struct {
	Valid         bool     `json:"valid"`
	Distance      *float64 `json:"distance"`
	NearestID     *uint    `json:"nearest_location_id"`
	NearestName   *string  `json:"nearest_location_name"`
	NearestRadius *int     `json:"nearest_location_radius"`
}

func NewLocationCheckResponse(res usecase.LocationCheck) LocationCheckResponse {
	out := LocationCheckResponse{Valid: res.Valid, Distance: res.Distance}
	if res.Nearest != nil {
		out.NearestID = &res.Nearest.ID
		out.NearestName = &res.Nearest.LocationName
		out.NearestRadius = &res.Nearest.Radius
	}
	return out
}
