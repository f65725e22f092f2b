package kvstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Entry is a single key-value row. Values are opaque JSON text blobs; the
// schema deliberately stays a flat table to keep localStorage semantics.
type Entry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName overrides the GORM default.
func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore persists values in a single Postgres table via GORM.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore runs the schema migration and returns a Postgres-backed store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var e Entry
	err := s.DB.WithContext(ctx).First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	// Save upserts on the primary key.
	return s.DB.WithContext(ctx).Save(&Entry{Key: key, Value: value}).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}

func (s *GormStore) Clear(ctx context.Context) error {
	return s.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&Entry{}).Error
}
