package repository

import (
	"context"
	"time"

	"geo-attendance-backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.Attendance, error)
	Create(ctx context.Context, attendance *model.Attendance) error
	ApplyCheckIn(ctx context.Context, id uint, point model.CheckPoint) error
	ApplyCheckOut(ctx context.Context, id uint, point model.CheckPoint) error
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.Attendance, int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, datatypes.Date(date)).
		First(&attendance).Error
	if err != nil {
		return nil, translate(err)
	}
	return &attendance, nil
}

// Create gagal dengan ErrConflict jika (user_id, date) sudah ada.
func (r *attendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return translate(r.db.WithContext(ctx).Create(attendance).Error)
}

// ApplyCheckIn hanya menulis jika check-in belum terisi; kalau kalah balapan
// dengan request lain hasilnya ErrConflict.
func (r *attendanceRepository) ApplyCheckIn(ctx context.Context, id uint, point model.CheckPoint) error {
	res := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("id = ? AND check_in_time IS NULL", id).
		Updates(map[string]interface{}{
			"check_in_time":      point.Time,
			"check_in_latitude":  point.Latitude,
			"check_in_longitude": point.Longitude,
			"check_in_photo":     point.Photo,
			"status":             model.AttendanceStatusPresent,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (r *attendanceRepository) ApplyCheckOut(ctx context.Context, id uint, point model.CheckPoint) error {
	res := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("id = ? AND check_in_time IS NOT NULL AND check_out_time IS NULL", id).
		Updates(map[string]interface{}{
			"check_out_time":      point.Time,
			"check_out_latitude":  point.Latitude,
			"check_out_longitude": point.Longitude,
			"check_out_photo":     point.Photo,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.Attendance, int64, error) {
	var (
		list  []model.Attendance
		total int64
	)
	if err := r.byUser(ctx, userID).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	err := r.byUser(ctx, userID).Order("date desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, translate(err)
}

func (r *attendanceRepository) byUser(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Attendance{}).Where("user_id = ?", userID)
}
