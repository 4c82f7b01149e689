package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"
)

type Users struct {
	mu    sync.Mutex
	users []model.User
}

var _ repository.UserRepository = (*Users)(nil)

func NewUsers(users ...model.User) *Users {
	return &Users{users: append([]model.User(nil), users...)}
}

func (u *Users) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.Username == username {
			cp := user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u *Users) FindByID(_ context.Context, id uint) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.ID == id {
			cp := user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Leaves menyimpan pengajuan di memori. Hari cuti hasil Decide ditulis ke
// Attendances dengan aturan yang sama seperti ON CONFLICT DO NOTHING.
type Leaves struct {
	mu          sync.Mutex
	nextID      uint
	leaves      map[uint]*model.LeaveRequest
	Attendances *AttendanceStore
}

var _ repository.LeaveRepository = (*Leaves)(nil)

func NewLeaves(attendances *AttendanceStore) *Leaves {
	return &Leaves{leaves: make(map[uint]*model.LeaveRequest), Attendances: attendances}
}

func (l *Leaves) Create(_ context.Context, leave *model.LeaveRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	leave.ID = l.nextID
	leave.CreatedAt = time.Now()
	cp := *leave
	l.leaves[cp.ID] = &cp
	return nil
}

func (l *Leaves) GetByID(_ context.Context, id uint) (*model.LeaveRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	leave, ok := l.leaves[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *leave
	return &cp, nil
}

func (l *Leaves) List(_ context.Context, filter repository.LeaveFilter, offset, limit int) ([]model.LeaveRequest, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var all []model.LeaveRequest
	for _, leave := range l.leaves {
		if filter.UserID != nil && leave.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && leave.Status != filter.Status {
			continue
		}
		all = append(all, *leave)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return []model.LeaveRequest{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (l *Leaves) Decide(ctx context.Context, leave *model.LeaveRequest, days []model.Attendance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	stored, ok := l.leaves[leave.ID]
	if !ok || !stored.IsPending() {
		return repository.ErrConflict
	}
	stored.Status = leave.Status
	stored.ApprovedBy = leave.ApprovedBy
	stored.ApprovedAt = leave.ApprovedAt
	stored.RejectionReason = leave.RejectionReason

	for i := range days {
		if l.Attendances == nil {
			break
		}
		_ = l.Attendances.Create(ctx, &days[i])
	}
	return nil
}
