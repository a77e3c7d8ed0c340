package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/karthik/printdesk/internal/pkg/logger"
)

// ErrGatewayNotConfigured is returned when payment credentials are missing
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// GatewayOrder is the opaque result of a gateway order creation. The
// backend passes it through to the client and never persists a
// settlement confirmation.
type GatewayOrder struct {
	ID     string `json:"orderId"`
	Amount int64  `json:"amount"`
}

// Gateway creates payment orders with the external provider.
type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*GatewayOrder, error)
}

// RazorpayGateway wraps the Razorpay orders API.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway creates a gateway from API credentials.
func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		logger.Warn().Msg("Razorpay credentials missing, payment gateway disabled")
		return nil, ErrGatewayNotConfigured
	}

	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
	}, nil
}

// CreateOrder creates a capture-on-payment order for the given amount in
// paise and returns the provider's order id and amount unchanged.
func (g *RazorpayGateway) CreateOrder(_ context.Context, amountPaise int64, receipt string) (*GatewayOrder, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotConfigured
	}

	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		logger.Error().Err(err).Int64("amount", amountPaise).Msg("Razorpay order creation failed")
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay response missing order id")
	}

	return &GatewayOrder{
		ID:     id,
		Amount: numericField(body["amount"]),
	}, nil
}

// numericField coerces the provider's JSON number representations to int64.
func numericField(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}
