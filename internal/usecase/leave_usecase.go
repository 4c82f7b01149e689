package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/notifier"
	"geo-attendance-backend/internal/repository"
	"geo-attendance-backend/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/datatypes"
)

const maxLeaveDays = 366

var (
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrLeaveNotPending   = errors.New("leave request already decided")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrLeaveRangeTooLong = errors.New("leave range is too long")
)

type AttachmentStore interface {
	SaveFile(ctx context.Context, dir string, data []byte, prefix, ext string) (string, error)
	Remove(ctx context.Context, ref string) error
}

type SubmitLeaveInput struct {
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Attachment []byte
}

// Viewer adalah user yang sedang login; employee hanya melihat miliknya.
type Viewer struct {
	UserID uint
	Role   string
}

type LeaveUsecase struct {
	leaves   repository.LeaveRepository
	users    repository.UserRepository
	files    AttachmentStore
	notifier notifier.LeaveNotifier
	clock    Clock
}

func NewLeaveUsecase(leaves repository.LeaveRepository, users repository.UserRepository, files AttachmentStore, n notifier.LeaveNotifier, clock Clock) *LeaveUsecase {
	return &LeaveUsecase{leaves: leaves, users: users, files: files, notifier: n, clock: clock}
}

func (u *LeaveUsecase) Submit(ctx context.Context, userID uint, in SubmitLeaveInput) (*model.LeaveRequest, error) {
	start, end := model.DateOf(in.StartDate), model.DateOf(in.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	if days := int(end.Sub(start).Hours()/24) + 1; days > maxLeaveDays {
		return nil, ErrLeaveRangeTooLong
	}

	var attachment *string
	if len(in.Attachment) > 0 {
		ext := mimetype.Detect(in.Attachment).Extension()
		ref, err := u.files.SaveFile(ctx, storage.LeaveDir, in.Attachment, "leave", ext)
		if err != nil {
			return nil, fmt.Errorf("%w: save attachment: %w", ErrStorage, err)
		}
		attachment = &ref
	}

	leave := &model.LeaveRequest{
		UserID:     userID,
		LeaveType:  in.LeaveType,
		StartDate:  datatypes.Date(start),
		EndDate:    datatypes.Date(end),
		Reason:     in.Reason,
		Attachment: attachment,
		Status:     model.LeaveStatusPending,
	}
	if err := u.leaves.Create(ctx, leave); err != nil {
		if attachment != nil {
			_ = u.files.Remove(ctx, *attachment)
		}
		return nil, fmt.Errorf("%w: save leave request: %w", ErrStorage, err)
	}
	return leave, nil
}

func (u *LeaveUsecase) List(ctx context.Context, viewer Viewer, status string, page, perPage int) ([]model.LeaveRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	filter := repository.LeaveFilter{Status: status}
	if viewer.Role != model.RoleAdmin {
		id := viewer.UserID
		filter.UserID = &id
	}
	list, total, err := u.leaves.List(ctx, filter, (page-1)*perPage, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list leave requests: %w", ErrStorage, err)
	}
	return list, total, nil
}

// Approve menyetujui pengajuan dan membuat record kehadiran berstatus cuti/izin
// untuk setiap hari yang belum punya record.
func (u *LeaveUsecase) Approve(ctx context.Context, adminID, leaveID uint) (*model.LeaveRequest, error) {
	leave, err := u.pending(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	leave.Status = model.LeaveStatusApproved
	leave.ApprovedBy = &adminID
	leave.ApprovedAt = &now

	if err := u.decide(ctx, leave, leaveDays(leave)); err != nil {
		return nil, err
	}
	return leave, nil
}

func (u *LeaveUsecase) Reject(ctx context.Context, adminID, leaveID uint, reason string) (*model.LeaveRequest, error) {
	leave, err := u.pending(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	leave.Status = model.LeaveStatusRejected
	leave.ApprovedBy = &adminID
	leave.ApprovedAt = &now
	leave.RejectionReason = &reason

	if err := u.decide(ctx, leave, nil); err != nil {
		return nil, err
	}
	return leave, nil
}

func (u *LeaveUsecase) pending(ctx context.Context, id uint) (*model.LeaveRequest, error) {
	leave, err := u.leaves.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLeaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load leave request: %w", ErrStorage, err)
	}
	if !leave.IsPending() {
		return nil, fmt.Errorf("%w: status is %s", ErrLeaveNotPending, leave.Status)
	}
	return leave, nil
}

func (u *LeaveUsecase) decide(ctx context.Context, leave *model.LeaveRequest, days []model.Attendance) error {
	if err := u.leaves.Decide(ctx, leave, days); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return ErrLeaveNotPending
		}
		return fmt.Errorf("%w: save decision: %w", ErrStorage, err)
	}

	employee := leave.User
	if employee == nil {
		var err error
		if employee, err = u.users.FindByID(ctx, leave.UserID); err != nil {
			log.Printf("[WARN] notifikasi pengajuan #%d dilewati, user %d: %v", leave.ID, leave.UserID, err)
			return nil
		}
	}
	if err := u.notifier.LeaveDecided(ctx, leave, employee); err != nil {
		log.Printf("[WARN] notifikasi pengajuan #%d gagal: %v", leave.ID, err)
	}
	return nil
}

func leaveDays(leave *model.LeaveRequest) []model.Attendance {
	start, end := time.Time(leave.StartDate), time.Time(leave.EndDate)
	var days []model.Attendance
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, model.Attendance{
			UserID: leave.UserID,
			Date:   datatypes.Date(d),
			Status: leave.AttendanceStatus(),
			Notes:  fmt.Sprintf("pengajuan %s #%d", leave.LeaveType, leave.ID),
		})
	}
	return days
}
