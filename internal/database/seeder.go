package database

import (
	"fmt"
	"log"

	"geo-attendance-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll bersifat idempotent: data yang sudah ada tidak dibuat ulang.
func SeedAll(db *gorm.DB) error {
	// 1. Seed Lokasi Kantor (Contoh Koordinat Kantor)
	office := model.OfficeLocation{
		LocationName: "Kantor Pusat",
		Latitude:     -6.2000000,
		Longitude:    106.8166660,
		Radius:       100,
		IsActive:     true,
	}
	if err := db.FirstOrCreate(&office, model.OfficeLocation{LocationName: office.LocationName}).Error; err != nil {
		return fmt.Errorf("seed office location: %w", err)
	}

	// 2. Seed Akun Admin & Pegawai
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []model.User{
		{
			Username:     "admin",
			Password:     string(hashedPassword),
			Role:         model.RoleAdmin,
			EmployeeCode: ptr("ADM001"),
			FullName:     "Administrator",
			Email:        ptr("admin@example.com"),
			Department:   "Umum",
			Position:     "Administrator",
			Status:       model.UserStatusActive,
		},
		{
			Username:     "employee",
			Password:     string(hashedPassword),
			Role:         model.RoleEmployee,
			EmployeeCode: ptr("EMP001"),
			FullName:     "Budi Pegawai",
			Email:        ptr("budi@example.com"),
			Department:   "Informatika",
			Position:     "Staf Teknis",
			Status:       model.UserStatusActive,
		},
	}
	for i := range users {
		if err := db.FirstOrCreate(&users[i], model.User{Username: users[i].Username}).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Username, err)
		}
		log.Printf("Seeding user %s berhasil!", users[i].Username)
	}
	return nil
}

func ptr(s string) *string {
	return &s
}
