package model

import (
	"time"

	"gorm.io/datatypes"
)

// Status kehadiran harian
const (
	AttendanceStatusPresent        = "present"
	AttendanceStatusLeavePermitted = "on-leave-permitted"
	AttendanceStatusLeaveAnnual    = "on-leave-annual"
	AttendanceStatusDayOff         = "day-off"
	AttendanceStatusAbsent         = "absent"
)

// Attendance adalah satu record per (user, tanggal). Kombinasi user_id + date
// dijaga unik oleh database.
type Attendance struct {
	ID     uint           `json:"id" gorm:"primarykey"`
	UserID uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_attendance_user_date"`
	Date   datatypes.Date `json:"date" gorm:"not null;uniqueIndex:idx_attendance_user_date"`

	CheckInTime      *time.Time `json:"check_in_time"`
	CheckInLatitude  *float64   `json:"check_in_latitude" gorm:"type:decimal(10,7)"`
	CheckInLongitude *float64   `json:"check_in_longitude" gorm:"type:decimal(10,7)"`
	CheckInPhoto     *string    `json:"check_in_photo"`

	CheckOutTime      *time.Time `json:"check_out_time"`
	CheckOutLatitude  *float64   `json:"check_out_latitude" gorm:"type:decimal(10,7)"`
	CheckOutLongitude *float64   `json:"check_out_longitude" gorm:"type:decimal(10,7)"`
	CheckOutPhoto     *string    `json:"check_out_photo"`

	Status string `json:"status" gorm:"size:32;not null;default:absent"`
	Notes  string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// CheckPoint adalah data satu kali absen (masuk atau pulang).
type CheckPoint struct {
	Time      time.Time
	Latitude  float64
	Longitude float64
	Photo     *string
}

func (a *Attendance) HasCheckedIn() bool {
	return a.CheckInTime != nil
}

func (a *Attendance) HasCheckedOut() bool {
	return a.CheckOutTime != nil
}

func (a *Attendance) SetCheckIn(p CheckPoint) {
	t, lat, lon := p.Time, p.Latitude, p.Longitude
	a.CheckInTime = &t
	a.CheckInLatitude = &lat
	a.CheckInLongitude = &lon
	a.CheckInPhoto = p.Photo
}

func (a *Attendance) SetCheckOut(p CheckPoint) {
	t, lat, lon := p.Time, p.Latitude, p.Longitude
	a.CheckOutTime = &t
	a.CheckOutLatitude = &lat
	a.CheckOutLongitude = &lon
	a.CheckOutPhoto = p.Photo
}

// DateOf mengambil tanggal kalender dari t (pada zona waktu t) dan
// mengembalikannya sebagai tengah malam UTC, supaya nilai kolom DATE tidak
// bergeser ketika driver mengonversi zona waktu.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
