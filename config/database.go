package config

import (
	"fmt"
	"log"
	"time"

	"geo-attendance-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

var DB *gorm.DB

type DBConfig struct {
	Driver      string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// DSN menyusun connection string sesuai driver. Kolom DATE dan DATETIME
// dibaca sebagai UTC supaya tanggal kehadiran tidak bergeser.
func (c DBConfig) DSN() string {
	switch c.Driver {
	case DriverPostgres:
		port := c.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.Host, port, c.User, c.Password, c.Name, c.SSLMode)
	default:
		port := c.Port
		if port == "" {
			port = "3306"
		}
		// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=UTC
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, port, c.Name)
	}
}

func (c DBConfig) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverMySQL:
		return mysql.Open(c.DSN()), nil
	case DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  c.DSN(),
			PreferSimpleProtocol: true, // hindari cache prepared statement
		}), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

func ConnectDB(cfg DBConfig) (*gorm.DB, error) {
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Printf("Koneksi Database Berhasil! (%s)", cfg.Driver)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	if cfg.AutoMigrate {
		// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
		if err := db.AutoMigrate(
			&model.User{},
			&model.OfficeLocation{},
			&model.Attendance{},
			&model.LeaveRequest{},
			&model.Holiday{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	DB = db
	return db, nil
}
