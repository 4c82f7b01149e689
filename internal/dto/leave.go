package dto

import (
	"time"

	"geo-attendance-backend/internal/model"
)

type CreateLeaveRequest struct {
	LeaveType  string `json:"leave_type" validate:"required,oneof=izin cuti"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required,max=2000"`
	Attachment string `json:"attachment"` // base64, opsional
}

// Dates mengembalikan tanggal mulai/selesai; format sudah dijamin validator.
func (r CreateLeaveRequest) Dates() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, r.StartDate)
	end, _ = time.Parse(dateLayout, r.EndDate)
	return start, end
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required,max=2000"`
}

type LeaveResponse struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	EmployeeName    string     `json:"employee_name,omitempty"`
	LeaveType       string     `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          string     `json:"reason"`
	Attachment      *string    `json:"attachment"`
	Status          string     `json:"status"`
	ApprovedBy      *uint      `json:"approved_by"`
	ApproverName    string     `json:"approver_name,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectionReason *string    `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewLeaveResponse(l *model.LeaveRequest) LeaveResponse {
	start, end := time.Time(l.StartDate), time.Time(l.EndDate)
	out := LeaveResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		LeaveType:       l.LeaveType,
		StartDate:       start.Format(dateLayout),
		EndDate:         end.Format(dateLayout),
		TotalDays:       int(end.Sub(start).Hours()/24) + 1,
		Reason:          l.Reason,
		Attachment:      l.Attachment,
		Status:          l.Status,
		ApprovedBy:      l.ApprovedBy,
		ApprovedAt:      l.ApprovedAt,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt,
	}
	if l.User != nil {
		out.EmployeeName = l.User.FullName
	}
	if l.Approver != nil {
		out.ApproverName = l.Approver.FullName
	}
	return out
}

func NewLeaveList(list []model.LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(list))
	for i := range list {
		out = append(out, NewLeaveResponse(&list[i]))
	}
	return out
}
