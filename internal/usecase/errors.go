package usecase

import (
	"errors"

	"geo-attendance-backend/internal/model"
)

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNotCheckedIn      = errors.New("not checked in today")
	ErrLocationRejected  = errors.New("location is outside every active office radius")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPhoto      = errors.New("photo is not a supported image")
	ErrStorage           = errors.New("storage failure")
)

// StateError adalah penolakan karena status kehadiran hari ini; Attendance
// berisi record terkini (bisa nil) agar pemanggil bisa menampilkannya.
type StateError struct {
	Err        error
	Attendance *model.Attendance
}

func (e *StateError) Error() string { return e.Err.Error() }

func (e *StateError) Unwrap() error { return e.Err }
