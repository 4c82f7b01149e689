package repository

import (
	"context"

	"geo-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type HolidayFilter struct {
	Year  int
	Month int
}

type HolidayRepository interface {
	GetAll(ctx context.Context, filter HolidayFilter) ([]model.Holiday, error)
	GetByID(ctx context.Context, id uint) (*model.Holiday, error)
	Create(ctx context.Context, holiday *model.Holiday) error
	Update(ctx context.Context, holiday *model.Holiday) error
	Delete(ctx context.Context, id uint) error
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db}
}

func (r *holidayRepository) GetAll(ctx context.Context, filter HolidayFilter) ([]model.Holiday, error) {
	var list []model.Holiday
	q := r.db.WithContext(ctx)
	// EXTRACT didukung MySQL dan Postgres
	if filter.Year > 0 {
		q = q.Where("EXTRACT(YEAR FROM holiday_date) = ?", filter.Year)
	}
	if filter.Month > 0 {
		q = q.Where("EXTRACT(MONTH FROM holiday_date) = ?", filter.Month)
	}
	err := q.Order("holiday_date").Find(&list).Error
	return list, translate(err)
}

func (r *holidayRepository) GetByID(ctx context.Context, id uint) (*model.Holiday, error) {
	var holiday model.Holiday
	if err := r.db.WithContext(ctx).First(&holiday, id).Error; err != nil {
		return nil, translate(err)
	}
	return &holiday, nil
}

func (r *holidayRepository) Create(ctx context.Context, holiday *model.Holiday) error {
	return translate(r.db.WithContext(ctx).Create(holiday).Error)
}

func (r *holidayRepository) Update(ctx context.Context, holiday *model.Holiday) error {
	return translate(r.db.WithContext(ctx).Save(holiday).Error)
}

func (r *holidayRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Holiday{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
