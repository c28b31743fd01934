package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joiful-app/joilogs-backend/internal/dates"
	"github.com/joiful-app/joilogs-backend/internal/dto"
	"github.com/joiful-app/joilogs-backend/internal/models"
	"gorm.io/datatypes"
)

// recentLogLimit caps the recent-entries listing. There is no pagination
// beyond it.
const recentLogLimit = 30

// JournalService orchestrates one user's edit session: opening a date,
// saving it together with the streak update, deleting it, and listing
// recent entries.
type JournalService struct {
	store Store
	now   func() time.Time
}

func NewJournalService(store Store) *JournalService {
	return &JournalService{
		store: store,
		now:   time.Now,
	}
}

// Open loads the entry for a date, defaulting to today when no date is
// selected. A date with no saved entry comes back with exactly one blank
// task row so the client always has a row to type into.
func (s *JournalService) Open(ctx context.Context, userID uuid.UUID, date string) (*models.LogEntry, error) {
	if date == "" {
		date = dates.Today()
	} else if _, err := dates.ParseISODate(date); err != nil {
		return nil, ErrInvalidDate
	}

	entry, err := s.store.GetLog(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &models.LogEntry{
			UserID: userID,
			Date:   date,
			Tasks:  datatypes.JSONSlice[models.Task]{{Title: "", Rating: 1, Notes: ""}},
		}, nil
	}
	return entry, nil
}

// Save persists the submitted day as a full overwrite, then advances the
// streak counters on the profile. The two writes are sequential and not
// atomic: if the profile update fails after the log write succeeded, the
// log stays saved and the error is surfaced rather than masked.
func (s *JournalService) Save(ctx context.Context, userID uuid.UUID, req dto.SaveLogRequest) (*models.User, error) {
	if req.Date == "" {
		return nil, ErrDateRequired
	}
	if _, err := dates.ParseISODate(req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	tasks, err := filterTasks(req.Tasks)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry := models.LogEntry{
		UserID:      userID,
		Date:        req.Date,
		Tasks:       datatypes.NewJSONSlice(tasks),
		Reflection1: req.Reflection1,
		Reflection2: req.Reflection2,
		Reflection3: req.Reflection3,
		Timestamp:   now,
	}
	if err := s.store.PutLog(ctx, userID, entry); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("log saved but profile read failed: %w", err)
	}

	newStreak := CalculateStreak(profile.CurrentStreak, profile.LastLogDate, now)
	longest := profile.LongestStreak
	if newStreak > longest {
		longest = newStreak
	}

	err = s.store.UpdateProfile(ctx, userID, map[string]any{
		"current_streak": newStreak,
		"last_log_date":  now,
		"longest_streak": longest,
	})
	if err != nil {
		return nil, fmt.Errorf("log saved but streak update failed: %w", err)
	}

	profile.CurrentStreak = newStreak
	profile.LongestStreak = longest
	profile.LastLogDate = &now
	return profile, nil
}

// Delete removes a day's entry. It never touches the streak counters:
// deleting a past entry does not walk back a streak already advanced.
func (s *JournalService) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	if date == "" {
		return ErrDateRequired
	}
	if _, err := dates.ParseISODate(date); err != nil {
		return ErrInvalidDate
	}
	return s.store.DeleteLog(ctx, userID, date)
}

// ListRecent returns the 30 most recent entries, newest date first.
func (s *JournalService) ListRecent(ctx context.Context, userID uuid.UUID) ([]models.LogEntry, error) {
	return s.store.ListRecentLogs(ctx, userID, recentLogLimit)
}

// filterTasks drops rows with blank titles and validates ratings on the
// rows that remain. Blank rows are how the client's empty inputs arrive;
// they are filtered silently, not rejected.
func filterTasks(in []models.Task) ([]models.Task, error) {
	out := make([]models.Task, 0, len(in))
	for _, t := range in {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		if t.Rating < 1 || t.Rating > 10 {
			return nil, ErrInvalidRating
		}
		out = append(out, t)
	}
	return out, nil
}
