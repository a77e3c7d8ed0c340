package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/karthik/printdesk/internal/pkg/apperrors"
	"github.com/karthik/printdesk/internal/pkg/payment"
)

// PaymentService creates gateway payment orders. Pure pass-through: the
// gateway's order id and amount go back to the caller unchanged and no
// settlement confirmation is persisted.
type PaymentService interface {
	CreatePaymentOrder(ctx context.Context, amountStr, studentName string) (*payment.GatewayOrder, error)
}

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	gateway payment.Gateway
	logger  zerolog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(gateway payment.Gateway, logger zerolog.Logger) PaymentService {
	return &paymentServiceImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// CreatePaymentOrder asks the gateway for an order over the given
// amount in whole INR
func (s *paymentServiceImpl) CreatePaymentOrder(ctx context.Context, amountStr, studentName string) (*payment.GatewayOrder, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(amountStr), 10, 64)
	if err != nil || amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer", apperrors.ErrValidationFailed)
	}

	if s.gateway == nil {
		return nil, payment.ErrGatewayNotConfigured
	}

	receipt := "rcpt_" + uuid.New().String()

	// The gateway bills in paise, the ledger in whole INR
	order, err := s.gateway.CreateOrder(ctx, amount*100, receipt)
	if err != nil {
		return nil, fmt.Errorf("payment order creation failed: %w", err)
	}

	s.logger.Info().Str("gatewayOrderID", order.ID).Int64("amount", amount).
		Str("studentName", studentName).Str("receipt", receipt).Msg("Payment order created")

	return order, nil
}
