package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type User struct {
	gorm.Model
	Username     string     `json:"username" gorm:"size:100;unique;not null"`
	Password     string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"size:20;not null;default:employee"`
	EmployeeCode *string    `json:"employee_code" gorm:"size:50;unique"`
	FullName     string     `json:"full_name" gorm:"not null"`
	Email        *string    `json:"email" gorm:"size:150;unique"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Department   string     `json:"department"`
	Position     string     `json:"position"`
	JoinDate     *time.Time `json:"join_date" gorm:"type:date"`
	Status       string     `json:"status" gorm:"size:20;not null;default:active"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
