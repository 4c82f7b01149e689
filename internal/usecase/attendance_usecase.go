package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"
	"geo-attendance-backend/internal/storage"

	"gorm.io/datatypes"
)

const (
	photoPrefixCheckIn  = "checkin"
	photoPrefixCheckOut = "checkout"
)

type PhotoStore interface {
	Save(ctx context.Context, data []byte, prefix string) (string, error)
	Remove(ctx context.Context, ref string) error
}

// CheckInput dipakai untuk check-in maupun check-out. Photo sudah berupa
// bytes hasil decode; nil berarti tanpa foto.
type CheckInput struct {
	Latitude  float64
	Longitude float64
	Photo     []byte
}

func (in CheckInput) validate() error {
	if math.IsNaN(in.Latitude) || in.Latitude < -90 || in.Latitude > 90 {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
	}
	if math.IsNaN(in.Longitude) || in.Longitude < -180 || in.Longitude > 180 {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
	}
	return nil
}

type AttendanceUsecase struct {
	attendances repository.AttendanceRepository
	validator   *LocationValidator
	photos      PhotoStore
	clock       Clock
}

func NewAttendanceUsecase(attendances repository.AttendanceRepository, validator *LocationValidator, photos PhotoStore, clock Clock) *AttendanceUsecase {
	return &AttendanceUsecase{
		attendances: attendances,
		validator:   validator,
		photos:      photos,
		clock:       clock,
	}
}

// CheckIn mencatat absen masuk untuk hari ini (menurut clock). Urutannya:
// validasi input, cek status hari ini, cek geofence, simpan foto, lalu tulis.
func (u *AttendanceUsecase) CheckIn(ctx context.Context, userID uint, in CheckInput) (*model.Attendance, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := u.clock.Now()
	today := model.DateOf(now)

	existing, err := u.findDay(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.HasCheckedIn() {
		return nil, &StateError{Err: ErrAlreadyCheckedIn, Attendance: existing}
	}

	if err := u.checkLocation(ctx, in); err != nil {
		return nil, err
	}

	photo, err := u.savePhoto(ctx, in.Photo, photoPrefixCheckIn)
	if err != nil {
		return nil, err
	}
	point := model.CheckPoint{Time: now, Latitude: in.Latitude, Longitude: in.Longitude, Photo: photo}

	record, err := u.writeCheckIn(ctx, userID, today, existing, point)
	if err != nil {
		u.discardPhoto(ctx, photo)
		if errors.Is(err, repository.ErrConflict) {
			// kalah balapan dengan request lain di hari yang sama
			return nil, &StateError{Err: ErrAlreadyCheckedIn, Attendance: u.currentDay(ctx, userID, today)}
		}
		return nil, fmt.Errorf("%w: save check-in: %w", ErrStorage, err)
	}
	return record, nil
}

// writeCheckIn membuat record baru, atau mengisi check-in pada record hari ini
// yang belum punya check-in. Kalau Create kalah dari record tanpa check-in
// (hari cuti yang dibuat saat approval), check-in diisi ke record tersebut.
func (u *AttendanceUsecase) writeCheckIn(ctx context.Context, userID uint, today time.Time, existing *model.Attendance, point model.CheckPoint) (*model.Attendance, error) {
	if existing == nil {
		record := &model.Attendance{
			UserID: userID,
			Date:   datatypes.Date(today),
			Status: model.AttendanceStatusPresent,
		}
		record.SetCheckIn(point)
		err := u.attendances.Create(ctx, record)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			return nil, err
		}
		existing = u.currentDay(ctx, userID, today)
		if existing == nil || existing.HasCheckedIn() {
			return nil, repository.ErrConflict
		}
	}

	if err := u.attendances.ApplyCheckIn(ctx, existing.ID, point); err != nil {
		return nil, err
	}
	existing.SetCheckIn(point)
	existing.Status = model.AttendanceStatusPresent
	return existing, nil
}

func (u *AttendanceUsecase) CheckOut(ctx context.Context, userID uint, in CheckInput) (*model.Attendance, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := u.clock.Now()
	today := model.DateOf(now)

	record, err := u.findDay(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if record == nil || !record.HasCheckedIn() {
		return nil, &StateError{Err: ErrNotCheckedIn, Attendance: record}
	}
	if record.HasCheckedOut() {
		return nil, &StateError{Err: ErrAlreadyCheckedOut, Attendance: record}
	}

	if err := u.checkLocation(ctx, in); err != nil {
		return nil, err
	}

	photo, err := u.savePhoto(ctx, in.Photo, photoPrefixCheckOut)
	if err != nil {
		return nil, err
	}
	point := model.CheckPoint{Time: now, Latitude: in.Latitude, Longitude: in.Longitude, Photo: photo}

	if err := u.attendances.ApplyCheckOut(ctx, record.ID, point); err != nil {
		u.discardPhoto(ctx, photo)
		if errors.Is(err, repository.ErrConflict) {
			return nil, &StateError{Err: ErrAlreadyCheckedOut, Attendance: u.currentDay(ctx, userID, today)}
		}
		return nil, fmt.Errorf("%w: save check-out: %w", ErrStorage, err)
	}
	record.SetCheckOut(point)
	return record, nil
}

// Today mengembalikan record hari ini, atau nil jika belum ada.
func (u *AttendanceUsecase) Today(ctx context.Context, userID uint) (*model.Attendance, error) {
	return u.findDay(ctx, userID, model.DateOf(u.clock.Now()))
}

// History mengembalikan record user, tanggal terbaru lebih dulu.
func (u *AttendanceUsecase) History(ctx context.Context, userID uint, page, perPage int) ([]model.Attendance, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 30
	}
	list, total, err := u.attendances.ListByUser(ctx, userID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list history: %w", ErrStorage, err)
	}
	return list, total, nil
}

// CheckLocation dipakai aplikasi untuk pratinjau sebelum absen.
func (u *AttendanceUsecase) CheckLocation(ctx context.Context, lat, lon float64) (*LocationCheck, error) {
	if err := (CheckInput{Latitude: lat, Longitude: lon}).validate(); err != nil {
		return nil, err
	}
	result, err := u.validator.Check(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: load office locations: %w", ErrStorage, err)
	}
	return result, nil
}

func (u *AttendanceUsecase) findDay(ctx context.Context, userID uint, day time.Time) (*model.Attendance, error) {
	record, err := u.attendances.FindByUserAndDate(ctx, userID, day)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load attendance: %w", ErrStorage, err)
	}
	return record, nil
}

// currentDay membaca ulang record hari ini setelah konflik tulis. Gagal baca
// hanya dicatat; penolakan tetap dikirim tanpa record.
func (u *AttendanceUsecase) currentDay(ctx context.Context, userID uint, day time.Time) *model.Attendance {
	current, err := u.findDay(ctx, userID, day)
	if err != nil {
		log.Printf("[WARN] gagal membaca ulang absensi user %d: %v", userID, err)
	}
	return current
}

func (u *AttendanceUsecase) checkLocation(ctx context.Context, in CheckInput) error {
	ok, err := u.validator.Validate(ctx, in.Latitude, in.Longitude)
	if err != nil {
		return fmt.Errorf("%w: load office locations: %w", ErrStorage, err)
	}
	if !ok {
		return ErrLocationRejected
	}
	return nil
}

func (u *AttendanceUsecase) savePhoto(ctx context.Context, data []byte, prefix string) (*string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	ref, err := u.photos.Save(ctx, data, prefix)
	if errors.Is(err, storage.ErrInvalidImage) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPhoto, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: save photo: %w", ErrStorage, err)
	}
	return &ref, nil
}

func (u *AttendanceUsecase) discardPhoto(ctx context.Context, ref *string) {
	if ref == nil {
		return
	}
	if err := u.photos.Remove(ctx, *ref); err != nil {
		log.Printf("[WARN] gagal menghapus foto %s: %v", *ref, err)
	}
}
