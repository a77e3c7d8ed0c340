package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/app/models/dto"
)

// TestOrderDayWorkflow walks one shop day front to back: a student
// submits an order, the operator prints and completes it, and every
// report reflects the transition.
func TestOrderDayWorkflow(t *testing.T) {
	store := newFakeOrderStore()
	storage := newFakeFileStorage()
	spooler := newFakeSpooler()
	orders := NewOrderService(store, storage, zerolog.Nop())
	printing := NewPrintService(store, storage, spooler, zerolog.Nop())
	stats := newStatsServiceAt(store, fixedNow)
	ctx := context.Background()

	id, err := orders.CreateOrder(ctx, &dto.CreateOrderRequest{
		StudentName:   "Asha",
		PaymentMethod: "online",
		Amount:        "45",
		Pages:         "15",
		Copies:        "3",
		PrintType:     "bw",
		Sides:         "double",
	}, fileHeaders("assignment.pdf", "cover.pdf"))
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// walk-up cash order from another student
	if _, err := orders.CreateOrder(ctx, &dto.CreateOrderRequest{
		StudentName: "Ravi",
		Amount:      "30",
	}, fileHeaders("record.pdf")); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// the fake store stamps CreatedAt with wall time; pin both orders
	// into the report window
	store.mu.Lock()
	for _, order := range store.orders {
		order.CreatedAt = fixedNow.Add(-time.Hour)
	}
	store.mu.Unlock()

	// printing is advisory and leaves both orders pending
	if err := printing.DispatchPrint(ctx, id); err != nil {
		t.Fatalf("DispatchPrint: %v", err)
	}
	spooler.waitFor(t, 2)

	before, err := stats.GlobalStats(ctx)
	if err != nil {
		t.Fatalf("GlobalStats: %v", err)
	}
	if before.Pending != 2 || before.Completed != 0 || before.TotalEarned != 0 {
		t.Fatalf("pre-completion stats = %+v", before)
	}

	if err := orders.CompleteOrder(ctx, id); err != nil {
		t.Fatalf("CompleteOrder: %v", err)
	}

	after, err := stats.GlobalStats(ctx)
	if err != nil {
		t.Fatalf("GlobalStats: %v", err)
	}
	if after.Pending != 1 || after.Completed != 1 {
		t.Errorf("post-completion counts = %+v", after)
	}
	// only the completed online order earns
	if after.TotalEarned != 45 {
		t.Errorf("totalEarned = %d, want 45", after.TotalEarned)
	}

	daily, err := stats.DailyPayments(ctx, "")
	if err != nil {
		t.Fatalf("DailyPayments: %v", err)
	}
	if daily.OnlineCount != 1 || daily.OnlineTotal != 45 || daily.CashCount != 1 || daily.CashTotal != 30 {
		t.Errorf("daily summary = %+v", daily.PaymentSummary)
	}

	mine, err := orders.ListOrdersByStudent(ctx, "Asha")
	if err != nil {
		t.Fatalf("ListOrdersByStudent: %v", err)
	}
	if len(mine) != 1 || mine[0].Status != models.OrderStatusCompleted {
		t.Errorf("student view = %+v", mine)
	}
}
