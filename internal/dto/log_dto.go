package dto

import (
	"time"

	"github.com/joiful-app/joilogs-backend/internal/models"
)

// SaveLogRequest is the edit-session state the client submits. Tasks arrive
// in entry order; blank-title rows are filtered server-side, not rejected.
type SaveLogRequest struct {
	Date        string        `json:"date"`
	Tasks       []models.Task `json:"tasks"`
	Reflection1 string        `json:"reflection1"`
	Reflection2 string        `json:"reflection2"`
	Reflection3 string        `json:"reflection3"`
}

type LogResponse struct {
	Date        string        `json:"date"`
	DisplayDate string        `json:"display_date"`
	Tasks       []models.Task `json:"tasks"`
	Reflection1 string        `json:"reflection1"`
	Reflection2 string        `json:"reflection2"`
	Reflection3 string        `json:"reflection3"`
	Timestamp   time.Time     `json:"timestamp"`
}

// LogSummary is one row of the recent-entries listing.
type LogSummary struct {
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	TaskCount   int    `json:"task_count"`
}

type LogListResponse struct {
	Logs          []LogSummary `json:"logs"`
	CurrentStreak int          `json:"current_streak"`
	LongestStreak int          `json:"longest_streak"`
}

type SaveLogResponse struct {
	Date          string `json:"date"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}
