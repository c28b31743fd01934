package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/joiful-app/joilogs-backend/internal/config"
	"github.com/joiful-app/joilogs-backend/internal/dto"
	"github.com/joiful-app/joilogs-backend/internal/middleware"
	"github.com/joiful-app/joilogs-backend/internal/services"
)

type SupportHandler struct {
	store services.Store
	cfg   *config.Config
}

func NewSupportHandler(store services.Store, cfg *config.Config) *SupportHandler {
	return &SupportHandler{store: store, cfg: cfg}
}

// WidgetConfig handles GET /support/widget - hands the chat-widget embed
// settings to premium users only. The widget script itself is loaded by the
// client; the backend just gates the capability.
func (h *SupportHandler) WidgetConfig(c *fiber.Ctx) error {
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

	if !profile.IsPremium {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Premium required for support chat",
		})
	}

	return c.JSON(dto.WidgetConfigResponse{
		BotID:       h.cfg.WidgetBotID,
		ClientID:    h.cfg.WidgetClientID,
		Color:       h.cfg.WidgetColor,
		FontFamily:  h.cfg.WidgetFont,
		ButtonLabel: "Joi Coach",
	})
}
