package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joiful-app/joilogs-backend/internal/dto"
	"github.com/joiful-app/joilogs-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() dto.CardDetails {
	return dto.CardDetails{
		Number: "4242 4242 4242 4242",
		Expiry: "12/30",
		CVC:    "123",
	}
}

func TestValidateCard(t *testing.T) {
	p := NewPaymentProcessor(1.0, 0)

	tests := []struct {
		name string
		card dto.CardDetails
		want bool
	}{
		{"spaced number", validCard(), true},
		{"unspaced number", dto.CardDetails{Number: "4242424242424242", Expiry: "12/30", CVC: "123"}, true},
		{"expiry without slash", dto.CardDetails{Number: "4242424242424242", Expiry: "1230", CVC: "123"}, true},
		{"four digit cvc", dto.CardDetails{Number: "4242424242424242", Expiry: "12/30", CVC: "1234"}, true},
		{"thirteen digit number", dto.CardDetails{Number: "4222222222222", Expiry: "12/30", CVC: "123"}, true},
		{"number too short", dto.CardDetails{Number: "424242424242", Expiry: "12/30", CVC: "123"}, false},
		{"number too long", dto.CardDetails{Number: "42424242424242424242", Expiry: "12/30", CVC: "123"}, false},
		{"letters in number", dto.CardDetails{Number: "4242abcd42424242", Expiry: "12/30", CVC: "123"}, false},
		{"month thirteen", dto.CardDetails{Number: "4242424242424242", Expiry: "13/30", CVC: "123"}, false},
		{"month zero", dto.CardDetails{Number: "4242424242424242", Expiry: "00/30", CVC: "123"}, false},
		{"expired decade", dto.CardDetails{Number: "4242424242424242", Expiry: "12/19", CVC: "123"}, false},
		{"cvc too short", dto.CardDetails{Number: "4242424242424242", Expiry: "12/30", CVC: "12"}, false},
		{"cvc too long", dto.CardDetails{Number: "4242424242424242", Expiry: "12/30", CVC: "12345"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ValidateCard(tt.card))
		})
	}
}

func TestProcessAlwaysApproveYieldsMockTransaction(t *testing.T) {
	p := NewPaymentProcessor(1.0, 0)

	id, err := p.Process(validCard())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "MOCK_"))
}

func TestProcessAlwaysDecline(t *testing.T) {
	p := NewPaymentProcessor(0, 0)

	_, err := p.Process(validCard())
	assert.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestProcessRejectsBadCardBeforeRolling(t *testing.T) {
	p := NewPaymentProcessor(1.0, 0)

	_, err := p.Process(dto.CardDetails{Number: "not a card", Expiry: "12/30", CVC: "123"})
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func newPaymentFixture(t *testing.T, successRate float64) (*PaymentService, *MemoryStore, uuid.UUID) {
	t.Helper()
	store := NewMemoryStore()
	userID := uuid.New()
	store.SeedProfile(models.User{
		ID:       userID,
		Email:    "joi@example.com",
		Username: "joi",
	})
	return NewPaymentService(store, NewPaymentProcessor(successRate, 0)), store, userID
}

func TestCheckoutGrantsPremiumAndRecordsPayment(t *testing.T) {
	svc, store, userID := newPaymentFixture(t, 1.0)

	granted := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return granted }

	payment, err := svc.Checkout(context.Background(), userID, dto.CheckoutRequest{
		PlanType: "monthly",
		Card:     validCard(),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payment.TransactionID, "MOCK_"))
	assert.Equal(t, "completed", payment.Status)
	assert.Equal(t, "monthly", payment.PlanType)

	profile, err := store.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, profile.IsPremium)
	assert.Equal(t, "monthly", profile.PlanType)
	require.NotNil(t, profile.PremiumSince)
	assert.Equal(t, granted, *profile.PremiumSince)

	ledger := store.Payments()
	require.Len(t, ledger, 1)
	assert.Equal(t, userID, ledger[0].UserID)
	assert.Equal(t, payment.TransactionID, ledger[0].TransactionID)
}

func TestCheckoutDeclineLeavesProfileUntouched(t *testing.T) {
	svc, store, userID := newPaymentFixture(t, 0)

	_, err := svc.Checkout(context.Background(), userID, dto.CheckoutRequest{
		PlanType: "yearly",
		Card:     validCard(),
	})
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	profile, err := store.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, profile.IsPremium)
	assert.Empty(t, store.Payments())
}

func TestCheckoutPlanValidation(t *testing.T) {
	svc, _, userID := newPaymentFixture(t, 1.0)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{Card: validCard()})
	assert.ErrorIs(t, err, ErrPlanRequired)

	_, err = svc.Checkout(ctx, userID, dto.CheckoutRequest{PlanType: "weekly", Card: validCard()})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestCheckoutInvalidCard(t *testing.T) {
	svc, store, userID := newPaymentFixture(t, 1.0)

	_, err := svc.Checkout(context.Background(), userID, dto.CheckoutRequest{
		PlanType: "monthly",
		Card:     dto.CardDetails{Number: "1234", Expiry: "12/30", CVC: "123"},
	})
	assert.ErrorIs(t, err, ErrInvalidCard)

	profile, err := store.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, profile.IsPremium)
}
