package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joiful-app/joilogs-backend/internal/dto"
	"github.com/joiful-app/joilogs-backend/internal/models"
)

var (
	ErrPlanRequired    = errors.New("a plan must be selected first")
	ErrInvalidPlan     = errors.New("plan must be monthly or yearly")
	ErrInvalidCard     = errors.New("invalid card details")
	ErrPaymentDeclined = errors.New("payment declined by issuer")
)

var validPlans = map[string]bool{"monthly": true, "yearly": true}

// PaymentProcessor simulates a card payment gateway: format validation,
// artificial latency, and a configurable random decline rate. Nothing here
// talks to a real processor.
type PaymentProcessor struct {
	successRate float64
	latency     time.Duration

	numberPattern *regexp.Regexp
	expiryPattern *regexp.Regexp
	cvcPattern    *regexp.Regexp

	mu   sync.Mutex
	rand *rand.Rand
}

func NewPaymentProcessor(successRate float64, latency time.Duration) *PaymentProcessor {
	return &PaymentProcessor{
		successRate:   successRate,
		latency:       latency,
		numberPattern: regexp.MustCompile(`^\d{13,19}$`),
		expiryPattern: regexp.MustCompile(`^(0[1-9]|1[0-2])/?([2-9]\d)$`),
		cvcPattern:    regexp.MustCompile(`^\d{3,4}$`),
		rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ValidateCard checks card number (13-19 digits, spaces allowed), expiry
// (MM/YY, slash optional) and CVC (3-4 digits) formats.
func (p *PaymentProcessor) ValidateCard(card dto.CardDetails) bool {
	cleanNumber := strings.ReplaceAll(card.Number, " ", "")
	return p.numberPattern.MatchString(cleanNumber) &&
		p.expiryPattern.MatchString(card.Expiry) &&
		p.cvcPattern.MatchString(card.CVC)
}

// Process runs one simulated charge and returns a mock transaction ID on
// success. Once started it runs to completion; no cancellation.
func (p *PaymentProcessor) Process(card dto.CardDetails) (string, error) {
	time.Sleep(p.latency)

	if !p.ValidateCard(card) {
		return "", ErrInvalidCard
	}

	p.mu.Lock()
	roll := p.rand.Float64()
	p.mu.Unlock()

	if roll >= p.successRate {
		return "", ErrPaymentDeclined
	}
	return fmt.Sprintf("MOCK_%d", time.Now().UnixMilli()), nil
}

// PaymentService runs the premium checkout: charge the mock processor,
// grant premium on the profile, and append to the payment ledger.
type PaymentService struct {
	store     Store
	processor *PaymentProcessor
	now       func() time.Time
}

func NewPaymentService(store Store, processor *PaymentProcessor) *PaymentService {
	return &PaymentService{
		store:     store,
		processor: processor,
		now:       time.Now,
	}
}

func (s *PaymentService) Checkout(ctx context.Context, userID uuid.UUID, req dto.CheckoutRequest) (*models.Payment, error) {
	if req.PlanType == "" {
		return nil, ErrPlanRequired
	}
	if !validPlans[req.PlanType] {
		return nil, ErrInvalidPlan
	}

	transactionID, err := s.processor.Process(req.Card)
	if err != nil {
		return nil, err
	}

	if err := s.GrantPremium(ctx, userID, req.PlanType); err != nil {
		return nil, err
	}

	payment := models.Payment{
		ID:            uuid.New(),
		UserID:        userID,
		PlanType:      req.PlanType,
		TransactionID: transactionID,
		Status:        "completed",
	}
	if err := s.store.RecordPayment(ctx, payment); err != nil {
		// Premium is already granted; a ledger miss is logged, not fatal.
		slog.Error("payment recorded premium but ledger write failed",
			"user_id", userID.String(), "transaction_id", transactionID, "error", err)
	}
	return &payment, nil
}

// GrantPremium flips the premium flag and stamps when and which plan. This
// is the only premium-related mutation the rest of the system depends on.
func (s *PaymentService) GrantPremium(ctx context.Context, userID uuid.UUID, planType string) error {
	return s.store.UpdateProfile(ctx, userID, map[string]any{
		"is_premium":    true,
		"premium_since": s.now().UTC(),
		"plan_type":     planType,
	})
}
