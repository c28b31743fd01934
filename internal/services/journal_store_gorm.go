package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/joiful-app/joilogs-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the PostgreSQL-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &user, nil
}

func (s *GormStore) UpdateProfile(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (s *GormStore) ListRecentLogs(ctx context.Context, userID uuid.UUID, limit int) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return entries, nil
}

func (s *GormStore) GetLog(ctx context.Context, userID uuid.UUID, date string) (*models.LogEntry, error) {
	var entry models.LogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load log: %w", err)
	}
	return &entry, nil
}

func (s *GormStore) PutLog(ctx context.Context, userID uuid.UUID, entry models.LogEntry) error {
	entry.UserID = userID
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tasks", "reflection1", "reflection2", "reflection3", "timestamp", "updated_at",
		}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteLog(ctx context.Context, userID uuid.UUID, date string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.LogEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete log: %w", result.Error)
	}
	// Zero rows affected is fine: deletes are idempotent.
	return nil
}

func (s *GormStore) RecordPayment(ctx context.Context, payment models.Payment) error {
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}
