package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of kv_entries.
type Entry struct {
	Key       string     `gorm:"column:entry_key;type:varchar(255);primaryKey"`
	Value     []byte     `gorm:"not null"`
	ExpiresAt *time.Time `gorm:"index"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime"`
}

func (Entry) TableName() string { return "kv_entries" }

type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore keeps values in the kv_entries table. The table must be migrated (see db.Migrate).
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db, now: time.Now}
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e Entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get: %w", err)
	}

	// expired rows are removed lazily
	if e.ExpiresAt != nil && !e.ExpiresAt.After(s.now()) {
		_ = s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&Entry{}).Error
		return nil, ErrNotFound
	}
	return e.Value, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := Entry{Key: key, Value: value}
	if ttl > 0 {
		exp := s.now().Add(ttl)
		e.ExpiresAt = &exp
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}
