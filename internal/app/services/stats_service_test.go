package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
)

// fixedNow is a Wednesday mid-month so today, week and month windows
// all differ.
var fixedNow = time.Date(2025, time.April, 16, 14, 30, 0, 0, time.UTC)

func newStatsServiceAt(store *fakeOrderStore, now time.Time) StatsService {
	return &statsServiceImpl{orderStore: store, now: func() time.Time { return now }}
}

func seedOrder(t *testing.T, store *fakeOrderStore, createdAt time.Time, method models.PaymentMethod, amount int64, status models.OrderStatus) {
	t.Helper()
	_, err := store.CreateOrder(context.Background(), &models.Order{
		StudentName:   "seed",
		FilePaths:     []string{"uploads/seed.pdf"},
		Status:        status,
		PaymentMethod: method,
		Amount:        amount,
		CreatedAt:     createdAt,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func TestGlobalStats(t *testing.T) {
	store := newFakeOrderStore()
	svc := newStatsServiceAt(store, fixedNow)

	seedOrder(t, store, fixedNow, models.PaymentMethodCash, 40, models.OrderStatusPending)
	seedOrder(t, store, fixedNow, models.PaymentMethodOnline, 60, models.OrderStatusCompleted)
	seedOrder(t, store, fixedNow, models.PaymentMethodCash, 25, models.OrderStatusCompleted)

	stats, err := svc.GlobalStats(context.Background())
	if err != nil {
		t.Fatalf("GlobalStats: %v", err)
	}

	if stats.Total != 3 || stats.Pending != 1 || stats.Completed != 2 {
		t.Errorf("counts = %d/%d/%d, want 3/1/2", stats.Total, stats.Pending, stats.Completed)
	}
	if stats.Cash != 2 || stats.Online != 1 {
		t.Errorf("methods = cash %d / online %d, want 2/1", stats.Cash, stats.Online)
	}
	// pending amounts never count toward earnings
	if stats.TotalEarned != 85 {
		t.Errorf("totalEarned = %d, want 85", stats.TotalEarned)
	}
}

func TestDailyPaymentsPartitionsByMethod(t *testing.T) {
	store := newFakeOrderStore()
	svc := newStatsServiceAt(store, fixedNow)

	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	seedOrder(t, store, day.Add(9*time.Hour), models.PaymentMethodCash, 30, models.OrderStatusPending)
	seedOrder(t, store, day.Add(13*time.Hour), models.PaymentMethodOnline, 45, models.OrderStatusCompleted)
	seedOrder(t, store, day.Add(23*time.Hour+59*time.Minute), models.PaymentMethodCash, 10, models.OrderStatusCompleted)
	// next midnight belongs to the following day
	seedOrder(t, store, day.AddDate(0, 0, 1), models.PaymentMethodCash, 99, models.OrderStatusPending)

	res, err := svc.DailyPayments(context.Background(), "2025-04-10")
	if err != nil {
		t.Fatalf("DailyPayments: %v", err)
	}

	if res.Date != "2025-04-10" {
		t.Errorf("date = %q, want 2025-04-10", res.Date)
	}
	if res.CashCount != 2 || res.CashTotal != 40 {
		t.Errorf("cash = %d/%d, want 2/40", res.CashCount, res.CashTotal)
	}
	if res.OnlineCount != 1 || res.OnlineTotal != 45 {
		t.Errorf("online = %d/%d, want 1/45", res.OnlineCount, res.OnlineTotal)
	}
	// every order of the day lands in exactly one partition
	if res.CashCount+res.OnlineCount != 3 {
		t.Errorf("partition total = %d, want 3", res.CashCount+res.OnlineCount)
	}
}

func TestDailyPaymentsDefaultsToToday(t *testing.T) {
	store := newFakeOrderStore()
	svc := newStatsServiceAt(store, fixedNow)

	seedOrder(t, store, fixedNow.Add(-time.Hour), models.PaymentMethodCash, 20, models.OrderStatusPending)
	seedOrder(t, store, fixedNow.AddDate(0, 0, -1), models.PaymentMethodCash, 80, models.OrderStatusPending)

	res, err := svc.DailyPayments(context.Background(), "")
	if err != nil {
		t.Fatalf("DailyPayments: %v", err)
	}
	if res.Date != "2025-04-16" {
		t.Errorf("date = %q, want 2025-04-16", res.Date)
	}
	if res.CashCount != 1 || res.CashTotal != 20 {
		t.Errorf("cash = %d/%d, want 1/20", res.CashCount, res.CashTotal)
	}
}

func TestDailyPaymentsRejectsMalformedDate(t *testing.T) {
	svc := newStatsServiceAt(newFakeOrderStore(), fixedNow)

	_, err := svc.DailyPayments(context.Background(), "16-04-2025")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestRangedPaymentsWindows(t *testing.T) {
	store := newFakeOrderStore()
	svc := newStatsServiceAt(store, fixedNow)
	ctx := context.Background()

	// 2025-04-16 is a Wednesday; the week began Sunday the 13th, the
	// month on the 1st.
	seedOrder(t, store, fixedNow.Add(-time.Hour), models.PaymentMethodCash, 10, models.OrderStatusPending)                              // today
	seedOrder(t, store, time.Date(2025, time.April, 14, 10, 0, 0, 0, time.UTC), models.PaymentMethodOnline, 20, models.OrderStatusPending) // this week
	seedOrder(t, store, time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC), models.PaymentMethodCash, 40, models.OrderStatusPending)    // this month
	seedOrder(t, store, time.Date(2025, time.March, 28, 10, 0, 0, 0, time.UTC), models.PaymentMethodCash, 80, models.OrderStatusPending)   // out of range

	counts := map[string]int64{}
	totals := map[string]int64{}
	for _, filter := range []string{RangeToday, RangeWeek, RangeMonth} {
		res, err := svc.RangedPayments(ctx, filter)
		if err != nil {
			t.Fatalf("RangedPayments(%s): %v", filter, err)
		}
		if res.Filter != filter {
			t.Errorf("filter echoed as %q, want %q", res.Filter, filter)
		}
		counts[filter] = res.CashCount + res.OnlineCount
		totals[filter] = res.CashTotal + res.OnlineTotal
	}

	if counts[RangeToday] != 1 || totals[RangeToday] != 10 {
		t.Errorf("today = %d orders / %d, want 1/10", counts[RangeToday], totals[RangeToday])
	}
	if counts[RangeWeek] != 2 || totals[RangeWeek] != 30 {
		t.Errorf("week = %d orders / %d, want 2/30", counts[RangeWeek], totals[RangeWeek])
	}
	if counts[RangeMonth] != 3 || totals[RangeMonth] != 70 {
		t.Errorf("month = %d orders / %d, want 3/70", counts[RangeMonth], totals[RangeMonth])
	}

	// the windows nest: today within week within month
	if counts[RangeToday] > counts[RangeWeek] || counts[RangeWeek] > counts[RangeMonth] {
		t.Errorf("window counts do not nest: %v", counts)
	}
}

func TestRangedPaymentsRejectsUnknownFilter(t *testing.T) {
	svc := newStatsServiceAt(newFakeOrderStore(), fixedNow)

	_, err := svc.RangedPayments(context.Background(), "year")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestRangedPaymentsWeekStartsSunday(t *testing.T) {
	store := newFakeOrderStore()
	// a Sunday afternoon: the week window opened that same midnight
	sunday := time.Date(2025, time.April, 13, 15, 0, 0, 0, time.UTC)
	svc := newStatsServiceAt(store, sunday)

	seedOrder(t, store, sunday.Add(-3*time.Hour), models.PaymentMethodCash, 10, models.OrderStatusPending) // Sunday morning
	seedOrder(t, store, sunday.Add(-16*time.Hour), models.PaymentMethodCash, 20, models.OrderStatusPending) // Saturday night

	res, err := svc.RangedPayments(context.Background(), RangeWeek)
	if err != nil {
		t.Fatalf("RangedPayments: %v", err)
	}
	if res.CashCount != 1 || res.CashTotal != 10 {
		t.Errorf("week on Sunday = %d/%d, want 1/10", res.CashCount, res.CashTotal)
	}
}
