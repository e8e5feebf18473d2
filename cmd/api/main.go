package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowstudio/landing-builder/internal/assist"
	"github.com/glowstudio/landing-builder/internal/backup"
	"github.com/glowstudio/landing-builder/internal/config"
	"github.com/glowstudio/landing-builder/internal/defaults"
	"github.com/glowstudio/landing-builder/internal/middleware"
	"github.com/glowstudio/landing-builder/internal/preview"
	"github.com/glowstudio/landing-builder/internal/routes"
	"github.com/glowstudio/landing-builder/internal/store"
	"github.com/glowstudio/landing-builder/internal/timezone"
)

func main() {

	cfg := config.Load()

	backend := newBackend(cfg)

	docs := store.NewDocuments(backend, defaults.Document, func() time.Time {
		return timezone.NowIn(cfg.StudioTimezone)
	})
	users := store.NewUsers(backend)

	if snap, ok := backend.(store.Snapshotter); ok {
		backup.Start(cfg.BackupCron, cfg.BackupDir, snap)
	}

	hub := preview.NewHub()
	go hub.Run()

	improver := assist.New(cfg.AssistAPIURL, cfg.AssistAPIKey, cfg.AssistModel)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, docs, users, hub, improver, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newBackend(cfg *config.Config) store.Backend {
	switch cfg.StorageDriver {
	case "memory":
		return nil

	case "file":
		backend, err := store.NewFileBackend(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to open file store: %v", err)
		}
		return backend

	case "postgres":
		backend, err := store.NewPostgresBackend(cfg.DBUrl)
		if err != nil {
			log.Fatalf("failed to open postgres store: %v", err)
		}
		return backend

	case "redis":
		backend, err := store.NewRedisBackend(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("failed to open redis store: %v", err)
		}
		return backend

	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
		return nil
	}
}
