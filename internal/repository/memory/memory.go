// Package memory berisi implementasi repository di memori, dipakai untuk
// pengujian use case dan handler tanpa database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"

	"gorm.io/datatypes"
)

type attendanceKey struct {
	userID uint
	date   string
}

// AttendanceStore menjaga keunikan (user, tanggal) di bawah satu mutex,
// sama seperti unique index di database.
type AttendanceStore struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*model.Attendance
	byKey  map[attendanceKey]uint

	// FailWrites membuat semua operasi tulis gagal dengan error ini.
	FailWrites error
}

func NewAttendanceStore() *AttendanceStore {
	return &AttendanceStore{
		byID:  make(map[uint]*model.Attendance),
		byKey: make(map[attendanceKey]uint),
	}
}

var _ repository.AttendanceRepository = (*AttendanceStore)(nil)

func keyOf(userID uint, date time.Time) attendanceKey {
	return attendanceKey{userID: userID, date: date.Format("2006-01-02")}
}

func (s *AttendanceStore) FindByUserAndDate(_ context.Context, userID uint, date time.Time) (*model.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byKey[keyOf(userID, date)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *AttendanceStore) Create(_ context.Context, attendance *model.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	key := keyOf(attendance.UserID, time.Time(attendance.Date))
	if _, exists := s.byKey[key]; exists {
		return repository.ErrConflict
	}
	s.nextID++
	attendance.ID = s.nextID
	attendance.CreatedAt = time.Now()
	attendance.UpdatedAt = attendance.CreatedAt
	cp := *attendance
	s.byID[cp.ID] = &cp
	s.byKey[key] = cp.ID
	return nil
}

func (s *AttendanceStore) ApplyCheckIn(_ context.Context, id uint, point model.CheckPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	a, ok := s.byID[id]
	if !ok || a.HasCheckedIn() {
		return repository.ErrConflict
	}
	a.SetCheckIn(point)
	a.Status = model.AttendanceStatusPresent
	return nil
}

func (s *AttendanceStore) ApplyCheckOut(_ context.Context, id uint, point model.CheckPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	a, ok := s.byID[id]
	if !ok || !a.HasCheckedIn() || a.HasCheckedOut() {
		return repository.ErrConflict
	}
	a.SetCheckOut(point)
	return nil
}

func (s *AttendanceStore) ListByUser(_ context.Context, userID uint, offset, limit int) ([]model.Attendance, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []model.Attendance
	for _, a := range s.byID {
		if a.UserID == userID {
			all = append(all, *a)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return time.Time(all[i].Date).After(time.Time(all[j].Date))
	})
	total := int64(len(all))
	if offset >= len(all) {
		return []model.Attendance{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// Put menyimpan record apa adanya (untuk menyiapkan kondisi awal test).
func (s *AttendanceStore) Put(a model.Attendance) *model.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	s.byID[a.ID] = &a
	s.byKey[keyOf(a.UserID, time.Time(a.Date))] = a.ID
	cp := a
	return &cp
}

func (s *AttendanceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Day adalah helper untuk membuat datatypes.Date dari tahun/bulan/tanggal.
func Day(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// OfficeLocations adalah daftar lokasi yang bisa diubah selama test berjalan.
type OfficeLocations struct {
	mu        sync.Mutex
	nextID    uint
	locations []model.OfficeLocation
	Reads     int
	Err       error
}

var _ repository.OfficeLocationRepository = (*OfficeLocations)(nil)

func NewOfficeLocations(locations ...model.OfficeLocation) *OfficeLocations {
	o := &OfficeLocations{locations: append([]model.OfficeLocation(nil), locations...)}
	for i := range o.locations {
		if o.locations[i].ID == 0 {
			o.locations[i].ID = uint(i + 1)
		}
		o.nextID = max(o.nextID, o.locations[i].ID)
	}
	return o
}

func (o *OfficeLocations) ListActive(context.Context) ([]model.OfficeLocation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Reads++
	if o.Err != nil {
		return nil, o.Err
	}
	var active []model.OfficeLocation
	for _, l := range o.locations {
		if l.IsActive {
			active = append(active, l)
		}
	}
	return active, nil
}

func (o *OfficeLocations) GetAll(context.Context) ([]model.OfficeLocation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]model.OfficeLocation(nil), o.locations...), nil
}

func (o *OfficeLocations) GetByID(_ context.Context, id uint) (*model.OfficeLocation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, l := range o.locations {
		if l.ID == id {
			cp := l
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (o *OfficeLocations) Create(_ context.Context, location *model.OfficeLocation) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextID++
	location.ID = o.nextID
	o.locations = append(o.locations, *location)
	return nil
}

func (o *OfficeLocations) Update(_ context.Context, location *model.OfficeLocation) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.locations {
		if o.locations[i].ID == location.ID {
			o.locations[i] = *location
			return nil
		}
	}
	return repository.ErrNotFound
}

func (o *OfficeLocations) Delete(_ context.Context, id uint) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.locations {
		if o.locations[i].ID == id {
			o.locations = append(o.locations[:i], o.locations[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
