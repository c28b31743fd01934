package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record plus the journaling profile: premium status and
// streak counters live on the same row, mirroring the single profile document
// the web client reads.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Username      string         `gorm:"not null;size:100" json:"username"`
	Password      string         `gorm:"not null" json:"-"`
	IsPremium     bool           `gorm:"default:false" json:"is_premium"`
	PremiumSince  *time.Time     `json:"premium_since,omitempty"`
	PlanType      string         `gorm:"size:20" json:"plan_type,omitempty"`
	CurrentStreak int            `gorm:"default:0" json:"current_streak"`
	LongestStreak int            `gorm:"default:0" json:"longest_streak"`
	LastLogDate   *time.Time     `json:"last_log_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
