package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/joiful-app/joilogs-backend/internal/dto"
	"github.com/joiful-app/joilogs-backend/internal/middleware"
	"github.com/joiful-app/joilogs-backend/internal/services"
)

type ProfileHandler struct {
	store services.Store
}

func NewProfileHandler(store services.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Me handles GET /me - the profile with premium status and streak counters.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
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
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(dto.ProfileResponse{
		ID:            profile.ID,
		Email:         profile.Email,
		Username:      profile.Username,
		IsPremium:     profile.IsPremium,
		PremiumSince:  profile.PremiumSince,
		PlanType:      profile.PlanType,
		CurrentStreak: profile.CurrentStreak,
		LongestStreak: profile.LongestStreak,
		LastLogDate:   profile.LastLogDate,
	})
}
