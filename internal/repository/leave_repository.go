package repository

import (
	"context"

	"geo-attendance-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveFilter struct {
	UserID *uint
	Status string
}

type LeaveRepository interface {
	Create(ctx context.Context, leave *model.LeaveRequest) error
	GetByID(ctx context.Context, id uint) (*model.LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter, offset, limit int) ([]model.LeaveRequest, int64, error)
	Decide(ctx context.Context, leave *model.LeaveRequest, days []model.Attendance) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *model.LeaveRequest) error {
	return translate(r.db.WithContext(ctx).Create(leave).Error)
}

func (r *leaveRepository) GetByID(ctx context.Context, id uint) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := r.db.WithContext(ctx).Preload("User").Preload("Approver").First(&leave, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &leave, nil
}

func (r *leaveRepository) List(ctx context.Context, filter LeaveFilter, offset, limit int) ([]model.LeaveRequest, int64, error) {
	var (
		list  []model.LeaveRequest
		total int64
	)
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&model.LeaveRequest{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	err := r.db.WithContext(ctx).Scopes(scope).
		Preload("User").Preload("Approver").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&list).Error
	return list, total, translate(err)
}

// Decide menyimpan keputusan atas pengajuan yang masih pending dan, dalam
// transaksi yang sama, membuat record kehadiran untuk hari-hari cuti/izin.
// Tanggal yang sudah punya record dilewati. Jika pengajuan sudah tidak
// pending lagi (diputuskan request lain) hasilnya ErrConflict.
func (r *leaveRepository) Decide(ctx context.Context, leave *model.LeaveRequest, days []model.Attendance) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.LeaveRequest{}).
			Where("id = ? AND status = ?", leave.ID, model.LeaveStatusPending).
			Updates(map[string]interface{}{
				"status":           leave.Status,
				"approved_by":      leave.ApprovedBy,
				"approved_at":      leave.ApprovedAt,
				"rejection_reason": leave.RejectionReason,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}

		if len(days) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&days).Error
	}))
}
