package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hostelhub/backend/internal/api/handler"
	"hostelhub/backend/internal/assets"
	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/kvstore"
	"hostelhub/backend/internal/notify"
	"hostelhub/backend/internal/session"
	"hostelhub/backend/internal/storage"
)

func setupSubstrate(cfg config.Config) kvstore.Store {
	switch cfg.Backend {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect PostgreSQL: %v", err)
		}
		store, err := kvstore.NewGormStore(db)
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Postgres substrate ready, migrations complete.")
		return store

	case "memory":
		log.Println("WARNING: Using in-memory substrate; state is lost on restart.")
		return kvstore.NewMemoryStore()

	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect Redis: %v", err)
		}
		log.Println("Redis substrate ready.")
		return kvstore.NewRedisStore(rdb, "")
	}
}

func setupNotifier(cfg config.Config, hub *notify.Hub) notify.Sink {
	sinks := notify.MultiSink{notify.LogSink{}, hub}

	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("WARNING: Telegram sink disabled: %v", err)
		} else {
			sinks = append(sinks, tg)
		}
	}
	return sinks
}

func main() {
	log.Println("Starting HostelHub Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// 1. Dependencies
	kv := setupSubstrate(cfg)
	store := storage.NewStorageService(kv)
	assetStore := assets.NewStore(kv)

	// 2. Notification fan-out
	hub := notify.NewHub()
	go hub.Run()
	notifier := setupNotifier(cfg, hub)

	// 3. Services
	sessions := session.NewService(store, notifier)
	complaints := complaint.NewService(store, assetStore, notifier)

	// 4. Gin router
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handler.NewHandler(sessions, complaints, assetStore, hub, []byte(cfg.JWTSecret))

	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	r.POST("/complaints", h.SubmitComplaint)
	r.GET("/complaints", h.ListComplaints)
	r.PATCH("/complaints/:id/status", h.UpdateStatus)
	r.GET("/stats", h.GetStats)
	r.GET("/categories", h.GetCategories)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
