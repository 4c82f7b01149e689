package repository

import (
	"context"

	"geo-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type OfficeLocationRepository interface {
	ListActive(ctx context.Context) ([]model.OfficeLocation, error)
	GetAll(ctx context.Context) ([]model.OfficeLocation, error)
	GetByID(ctx context.Context, id uint) (*model.OfficeLocation, error)
	Create(ctx context.Context, location *model.OfficeLocation) error
	Update(ctx context.Context, location *model.OfficeLocation) error
	Delete(ctx context.Context, id uint) error
}

type officeLocationRepository struct {
	db *gorm.DB
}

func NewOfficeLocationRepository(db *gorm.DB) OfficeLocationRepository {
	return &officeLocationRepository{db}
}

// ListActive selalu membaca ulang dari database (tanpa cache) agar perubahan
// radius / status aktif langsung berlaku di request berikutnya.
func (r *officeLocationRepository) ListActive(ctx context.Context) ([]model.OfficeLocation, error) {
	var list []model.OfficeLocation
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&list).Error
	return list, translate(err)
}

func (r *officeLocationRepository) GetAll(ctx context.Context) ([]model.OfficeLocation, error) {
	var list []model.OfficeLocation
	err := r.db.WithContext(ctx).Order("location_name").Find(&list).Error
	return list, translate(err)
}

func (r *officeLocationRepository) GetByID(ctx context.Context, id uint) (*model.OfficeLocation, error) {
	var location model.OfficeLocation
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, translate(err)
	}
	return &location, nil
}

func (r *officeLocationRepository) Create(ctx context.Context, location *model.OfficeLocation) error {
	return translate(r.db.WithContext(ctx).Create(location).Error)
}

// Update memakai Save supaya is_active=false ikut tersimpan.
func (r *officeLocationRepository) Update(ctx context.Context, location *model.OfficeLocation) error {
	return translate(r.db.WithContext(ctx).Save(location).Error)
}

func (r *officeLocationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.OfficeLocation{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
