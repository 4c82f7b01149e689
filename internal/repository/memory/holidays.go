package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"
)

type Holidays struct {
	mu       sync.Mutex
	nextID   uint
	holidays map[uint]model.Holiday
}

var _ repository.HolidayRepository = (*Holidays)(nil)

func NewHolidays(holidays ...model.Holiday) *Holidays {
	h := &Holidays{holidays: make(map[uint]model.Holiday)}
	for _, holiday := range holidays {
		h.nextID++
		holiday.ID = h.nextID
		h.holidays[holiday.ID] = holiday
	}
	return h
}

// GetAll mengikuti filter EXTRACT(YEAR/MONTH) di repository GORM.
func (h *Holidays) GetAll(_ context.Context, filter repository.HolidayFilter) ([]model.Holiday, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := []model.Holiday{}
	for _, holiday := range h.holidays {
		date := time.Time(holiday.HolidayDate)
		if filter.Year > 0 && date.Year() != filter.Year {
			continue
		}
		if filter.Month > 0 && int(date.Month()) != filter.Month {
			continue
		}
		list = append(list, holiday)
	}
	sort.Slice(list, func(i, j int) bool {
		return time.Time(list[i].HolidayDate).Before(time.Time(list[j].HolidayDate))
	})
	return list, nil
}

func (h *Holidays) GetByID(_ context.Context, id uint) (*model.Holiday, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	holiday, ok := h.holidays[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &holiday, nil
}

func (h *Holidays) Create(_ context.Context, holiday *model.Holiday) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	holiday.ID = h.nextID
	h.holidays[holiday.ID] = *holiday
	return nil
}

func (h *Holidays) Update(_ context.Context, holiday *model.Holiday) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.holidays[holiday.ID]; !ok {
		return repository.ErrNotFound
	}
	h.holidays[holiday.ID] = *holiday
	return nil
}

func (h *Holidays) Delete(_ context.Context, id uint) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.holidays[id]; !ok {
		return repository.ErrNotFound
	}
	delete(h.holidays, id)
	return nil
}
