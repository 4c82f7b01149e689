package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"geo-attendance-backend/config"
	"geo-attendance-backend/internal/helper"
	"geo-attendance-backend/internal/notifier"
	"geo-attendance-backend/internal/routes"
	"geo-attendance-backend/internal/storage"
	"geo-attendance-backend/internal/usecase"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	log.Println("1. Memulai aplikasi... Mencoba load .env...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Gagal membaca konfigurasi: %v", err)
	}

	log.Println("2. Mencoba koneksi ke Database...")
	db, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatalf("Gagal koneksi ke database: %v", err)
	}
	log.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		BodyLimit:             10 * 1024 * 1024, // foto base64
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return helper.JsonError(c, code, err.Error())
		},
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
		TimeZone:   cfg.Location.String(),
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))

	// Serve Static Files (foto absen & lampiran: /uploads/...)
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.Setup(app, routes.Deps{
		DB:             db,
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		Files:          storage.NewLocalStore(cfg.UploadDir, cfg.PhotoMaxWidth),
		Clock:          usecase.SystemClock{Location: cfg.Location},
		Notifier:       notifier.New(cfg.SMTP),
		LoginRateLimit: cfg.LoginRateLimit,
	})

	go func() {
		log.Printf("4. Server siap! Menunggu request di port :%s", cfg.AppPort)
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
