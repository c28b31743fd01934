package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one completed mock checkout. There is no renewal or
// cancellation lifecycle; a premium grant is a one-shot event.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanType      string    `gorm:"not null;size:20" json:"plan_type"`
	TransactionID string    `gorm:"size:64;index" json:"transaction_id"`
	Status        string    `gorm:"not null;default:'completed';size:20" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
}
