package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/joiful-app/joilogs-backend/internal/dto"
	"github.com/joiful-app/joilogs-backend/internal/middleware"
	"github.com/joiful-app/joilogs-backend/internal/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Checkout handles POST /premium/checkout - runs the mock payment and
// grants premium on success.
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	payment, err := h.paymentService.Checkout(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlanRequired), errors.Is(err, services.ErrInvalidPlan):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidCard):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid card details",
			})
		case errors.Is(err, services.ErrPaymentDeclined):
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Error: true, Message: "Payment declined by issuer",
			})
		default:
			slog.Error("checkout failed", "user_id", userID.String(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Payment failed",
			})
		}
	}

	return c.JSON(dto.CheckoutResponse{
		TransactionID: payment.TransactionID,
		PlanType:      payment.PlanType,
		IsPremium:     true,
	})
}
