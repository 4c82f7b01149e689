package main

import (
	"log"

	"geo-attendance-backend/config"
	"geo-attendance-backend/internal/database"
)

func main() {
	log.Println("Memulai Database Seeding...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Gagal membaca konfigurasi: %v", err)
	}

	// Seeder selalu memastikan tabel ada
	cfg.DB.AutoMigrate = true
	db, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatalf("Gagal koneksi ke database: %v", err)
	}

	if err := database.SeedAll(db); err != nil {
		log.Fatalf("Seeding gagal: %v", err)
	}
	log.Println("Seeding Selesai!")
}
