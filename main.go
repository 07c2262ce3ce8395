package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"github.com/harshitbisht07/Attendance-Optimization-System/internals/configs"
	helper "github.com/harshitbisht07/Attendance-Optimization-System/internals/helpers"
	middlewares "github.com/harshitbisht07/Attendance-Optimization-System/internals/middlewares"
	routes "github.com/harshitbisht07/Attendance-Optimization-System/internals/route"
)

func main() {
	configs.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// settings opsional (default_threshold), hot-reload via fsnotify
	if configs.SettingsFile != "" {
		s, err := configs.LoadSettings(configs.SettingsFile)
		if err != nil {
			log.Fatalf("[ERROR] gagal load settings: %v", err)
		}
		configs.Apply(s)
		go func() {
			if err := configs.WatchSettings(ctx, configs.SettingsFile, configs.Apply); err != nil {
				log.Printf("[ERROR] settings watcher berhenti: %v", err)
			}
		}()
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	middlewares.SetupMiddlewares(app)

	routes.SetupRoutes(app, routes.Options{
		StaticIndex: configs.StaticIndex,
		DefaultThreshold: func() float64 {
			return configs.Current().DefaultThreshold
		},
	})

	port := configs.Port

	// Start server non-blocking
	go func() {
		log.Printf("[INFO] Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("[ERROR] server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[INFO] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
}
