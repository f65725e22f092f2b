package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/kvstore"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/notify"
	"hostelhub/backend/internal/storage"
)

func main() {
	cfg := config.Load()

	var kv kvstore.Store
	switch cfg.Backend {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		kv, err = kvstore.NewGormStore(db)
		if err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("failed to connect Redis: %v", err)
		}
		kv = kvstore.NewRedisStore(rdb, "")
	}

	store := storage.NewStorageService(kv)
	svc := complaint.NewService(store, nil, notify.LogSink{})

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list, resolve <id>, reopen <id>, stats")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		for _, c := range svc.List(complaint.ListParams{Sort: complaint.SortNewest}) {
			fmt.Printf("%s  [%-8s] [%-6s] %s - %s (Room %s)\n",
				c.ID, c.Status, c.Priority, c.Title, c.StudentName, c.StudentRoom)
		}
	case "resolve":
		setStatus(svc, "Resolved")
	case "reopen":
		setStatus(svc, "Pending")
	case "stats":
		sum := svc.Summarize()
		fmt.Printf("Total: %d\nPending: %d\nResolved: %d\n", sum.Total, sum.Pending, sum.Resolved)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func setStatus(svc *complaint.Service, status string) {
	if len(os.Args) != 3 {
		fmt.Printf("Usage: admin %s <complaint_id>\n", os.Args[1])
		os.Exit(1)
	}
	id := os.Args[2]
	if err := svc.SetStatus(id, models.Status(status)); err != nil {
		log.Fatalf("Error updating complaint: %v", err)
	}
	fmt.Printf("Complaint %s is now %s.\n", id, status)
}
