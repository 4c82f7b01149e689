package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LeaveTypePermit = "izin"
	LeaveTypeAnnual = "cuti"

	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	LeaveType       string         `json:"leave_type" gorm:"size:10;not null"`
	StartDate       datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate         datatypes.Date `json:"end_date" gorm:"not null"`
	Reason          string         `json:"reason" gorm:"type:text;not null"`
	Attachment      *string        `json:"attachment"`
	Status          string         `json:"status" gorm:"size:20;not null;default:pending;index"`
	ApprovedBy      *uint          `json:"approved_by"`
	ApprovedAt      *time.Time     `json:"approved_at"`
	RejectionReason *string        `json:"rejection_reason" gorm:"type:text"`

	User     *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Approver *User `json:"approver,omitempty" gorm:"foreignKey:ApprovedBy"`
}

func (l *LeaveRequest) IsPending() bool {
	return l.Status == LeaveStatusPending
}

// AttendanceStatus memetakan jenis izin ke status kehadiran harian.
func (l *LeaveRequest) AttendanceStatus() string {
	if l.LeaveType == LeaveTypeAnnual {
		return AttendanceStatusLeaveAnnual
	}
	return AttendanceStatusLeavePermitted
}
