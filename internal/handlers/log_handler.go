package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/joiful-app/joilogs-backend/internal/dates"
	"github.com/joiful-app/joilogs-backend/internal/dto"
	"github.com/joiful-app/joilogs-backend/internal/middleware"
	"github.com/joiful-app/joilogs-backend/internal/services"
)

type LogHandler struct {
	journal *services.JournalService
	store   services.Store
}

func NewLogHandler(journal *services.JournalService, store services.Store) *LogHandler {
	return &LogHandler{journal: journal, store: store}
}

// List handles GET /logs - the recent-entries listing plus the streak
// header the client renders above it.
func (h *LogHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.store.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error loading entries",
		})
	}

	entries, err := h.journal.ListRecent(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error loading entries",
		})
	}

	summaries := make([]dto.LogSummary, len(entries))
	for i, entry := range entries {
		summaries[i] = dto.LogSummary{
			Date:        entry.Date,
			DisplayDate: dates.FormatDisplayDate(entry.Date),
			TaskCount:   len(entry.Tasks),
		}
	}

	return c.JSON(dto.LogListResponse{
		Logs:          summaries,
		CurrentStreak: profile.CurrentStreak,
		LongestStreak: profile.LongestStreak,
	})
}

// Open handles GET /logs/open?date=YYYY-MM-DD - loads a day for editing.
// An empty date defaults to today; a day with no entry comes back with one
// blank task row.
func (h *LogHandler) Open(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	entry, err := h.journal.Open(c.Context(), userID, c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error loading log",
		})
	}

	return c.JSON(dto.LogResponse{
		Date:        entry.Date,
		DisplayDate: dates.FormatDisplayDate(entry.Date),
		Tasks:       entry.Tasks,
		Reflection1: entry.Reflection1,
		Reflection2: entry.Reflection2,
		Reflection3: entry.Reflection3,
		Timestamp:   entry.Timestamp,
	})
}

// Save handles POST /logs - upserts the submitted day and advances the
// streak counters.
func (h *LogHandler) Save(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SaveLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.journal.Save(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDateRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Please select a date before saving.",
			})
		case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrInvalidRating):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Error saving log",
			})
		}
	}

	return c.JSON(dto.SaveLogResponse{
		Date:          req.Date,
		CurrentStreak: profile.CurrentStreak,
		LongestStreak: profile.LongestStreak,
	})
}

// Delete handles DELETE /logs/:date - idempotent, never touches streaks.
func (h *LogHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.journal.Delete(c.Context(), userID, c.Params("date")); err != nil {
		if errors.Is(err, services.ErrDateRequired) || errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error deleting log",
		})
	}

	return c.JSON(fiber.Map{"message": "Log deleted"})
}
