package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joiful-app/joilogs-backend/internal/models"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]models.User
	logs     map[uuid.UUID]map[string]models.LogEntry
	payments []models.Payment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[uuid.UUID]models.User),
		logs:     make(map[uuid.UUID]map[string]models.LogEntry),
	}
}

// SeedProfile inserts a profile row directly.
func (s *MemoryStore) SeedProfile(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[user.ID] = user
}

// Payments returns a copy of the payment ledger.
func (s *MemoryStore) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *MemoryStore) GetProfile(_ context.Context, userID uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &user, nil
}

func (s *MemoryStore) UpdateProfile(_ context.Context, userID uuid.UUID, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.profiles[userID]
	if !ok {
		return ErrProfileNotFound
	}

	for key, value := range fields {
		switch key {
		case "current_streak":
			user.CurrentStreak = value.(int)
		case "longest_streak":
			user.LongestStreak = value.(int)
		case "last_log_date":
			t := value.(time.Time)
			user.LastLogDate = &t
		case "is_premium":
			user.IsPremium = value.(bool)
		case "premium_since":
			t := value.(time.Time)
			user.PremiumSince = &t
		case "plan_type":
			user.PlanType = value.(string)
		}
	}
	user.UpdatedAt = time.Now().UTC()
	s.profiles[userID] = user
	return nil
}

func (s *MemoryStore) ListRecentLogs(_ context.Context, userID uuid.UUID, limit int) ([]models.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.LogEntry
	for _, entry := range s.logs[userID] {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemoryStore) GetLog(_ context.Context, userID uuid.UUID, date string) (*models.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.logs[userID][date]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *MemoryStore) PutLog(_ context.Context, userID uuid.UUID, entry models.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.UserID = userID
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if s.logs[userID] == nil {
		s.logs[userID] = make(map[string]models.LogEntry)
	}
	s.logs[userID][entry.Date] = entry
	return nil
}

func (s *MemoryStore) DeleteLog(_ context.Context, userID uuid.UUID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.logs[userID], date)
	return nil
}

func (s *MemoryStore) RecordPayment(_ context.Context, payment models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	s.payments = append(s.payments, payment)
	return nil
}
