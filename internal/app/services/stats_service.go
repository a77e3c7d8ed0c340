package services

import (
	"context"
	"fmt"
	"time"

	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
	"github.com/karthik/printdesk/internal/pkg/helpers"
)

// Range filter values accepted by RangedPayments
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// dateLayout is the calendar-date format the daily report accepts
const dateLayout = "2006-01-02"

// StatsService computes read-only views over the order ledger. It never
// mutates state; daily and ranged payments are the same windowed sum
// with different bounds.
type StatsService interface {
	GlobalStats(ctx context.Context) (*models.OrderStats, error)
	DailyPayments(ctx context.Context, dateStr string) (*dto.DailyPaymentsResponse, error)
	RangedPayments(ctx context.Context, filter string) (*dto.RangedPaymentsResponse, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	orderStore OrderStore
	now        func() time.Time
}

// NewStatsService creates a new stats service instance
func NewStatsService(orderStore OrderStore) StatsService {
	return &statsServiceImpl{
		orderStore: orderStore,
		now:        time.Now,
	}
}

// GlobalStats returns the ledger-wide dashboard counts
func (s *statsServiceImpl) GlobalStats(ctx context.Context) (*models.OrderStats, error) {
	stats, err := s.orderStore.GlobalStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing global stats: %w", err)
	}
	return stats, nil
}

// DailyPayments sums one calendar day's orders by payment method.
// dateStr is optional YYYY-MM-DD; empty means the server's current date.
func (s *statsServiceImpl) DailyPayments(ctx context.Context, dateStr string) (*dto.DailyPaymentsResponse, error) {
	var day time.Time
	if dateStr == "" {
		day = helpers.StartOfDay(s.now())
	} else {
		parsed, err := time.ParseInLocation(dateLayout, dateStr, s.now().Location())
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		day = parsed
	}

	summary, err := s.orderStore.PaymentSummary(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("error computing daily payments: %w", err)
	}

	return &dto.DailyPaymentsResponse{
		Date:           day.Format(dateLayout),
		PaymentSummary: *summary,
	}, nil
}

// RangedPayments sums the orders of a sliding window by payment method.
// The window runs from the range start through now, lower bound
// inclusive, upper bound open.
func (s *statsServiceImpl) RangedPayments(ctx context.Context, filter string) (*dto.RangedPaymentsResponse, error) {
	now := s.now()

	var from time.Time
	switch filter {
	case RangeToday:
		from = helpers.StartOfDay(now)
	case RangeWeek:
		from = helpers.StartOfWeek(now)
	case RangeMonth:
		from = helpers.StartOfMonth(now)
	default:
		return nil, fmt.Errorf("%w: filter must be today, week or month", apperrors.ErrValidationFailed)
	}

	summary, err := s.orderStore.PaymentSummary(ctx, from, now)
	if err != nil {
		return nil, fmt.Errorf("error computing ranged payments: %w", err)
	}

	return &dto.RangedPaymentsResponse{
		Filter:         filter,
		PaymentSummary: *summary,
	}, nil
}
