package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Task is one row of a day's log. Tasks have no identity of their own; they
// are embedded in the entry in the order the user typed them.
type Task struct {
	Title  string `json:"title"`
	Rating int    `json:"rating"`
	Notes  string `json:"notes"`
}

// LogEntry is one user's journal for one calendar date. The (user_id, date)
// pair is the natural key; saves are full-overwrite upserts against it.
type LogEntry struct {
	ID          uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_logs_user_date" json:"user_id"`
	Date        string                    `gorm:"size:10;not null;uniqueIndex:idx_logs_user_date" json:"date"`
	Tasks       datatypes.JSONSlice[Task] `gorm:"type:jsonb" json:"tasks"`
	Reflection1 string                    `gorm:"type:text" json:"reflection1"`
	Reflection2 string                    `gorm:"type:text" json:"reflection2"`
	Reflection3 string                    `gorm:"type:text" json:"reflection3"`
	Timestamp   time.Time                 `json:"timestamp"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}
