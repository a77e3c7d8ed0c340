package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
)

// fakeSpooler records submitted paths on a channel so tests can wait
// for the asynchronous dispatch to land.
type fakeSpooler struct {
	submitted chan string
	err       error
}

func newFakeSpooler() *fakeSpooler {
	return &fakeSpooler{submitted: make(chan string, 16)}
}

func (f *fakeSpooler) Submit(_ context.Context, filePath string) error {
	f.submitted <- filePath
	return f.err
}

func (f *fakeSpooler) waitFor(t *testing.T, n int) []string {
	t.Helper()
	var got []string
	for len(got) < n {
		select {
		case path := <-f.submitted:
			got = append(got, path)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d submissions", len(got), n)
		}
	}
	return got
}

func seedPrintableOrder(t *testing.T, store *fakeOrderStore, files ...string) int64 {
	t.Helper()
	id, err := store.CreateOrder(context.Background(), &models.Order{
		StudentName:   "Asha",
		FilePaths:     files,
		Status:        models.OrderStatusPending,
		PaymentMethod: models.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return id
}

func TestDispatchPrintSubmitsEveryFile(t *testing.T) {
	store := newFakeOrderStore()
	storage := newFakeFileStorage()
	spooler := newFakeSpooler()
	svc := NewPrintService(store, storage, spooler, zerolog.Nop())

	id := seedPrintableOrder(t, store, "uploads/a.pdf", "uploads/b.pdf")

	if err := svc.DispatchPrint(context.Background(), id); err != nil {
		t.Fatalf("DispatchPrint: %v", err)
	}

	got := spooler.waitFor(t, 2)
	want := map[string]bool{
		"/var/data/uploads/a.pdf": true,
		"/var/data/uploads/b.pdf": true,
	}
	for _, path := range got {
		if !want[path] {
			t.Errorf("unexpected submission %q", path)
		}
	}
}

func TestDispatchPrintUnknownOrder(t *testing.T) {
	svc := NewPrintService(newFakeOrderStore(), newFakeFileStorage(), newFakeSpooler(), zerolog.Nop())

	err := svc.DispatchPrint(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestDispatchPrintNoFiles(t *testing.T) {
	store := newFakeOrderStore()
	svc := NewPrintService(store, newFakeFileStorage(), newFakeSpooler(), zerolog.Nop())

	id := seedPrintableOrder(t, store)

	err := svc.DispatchPrint(context.Background(), id)
	if !errors.Is(err, apperrors.ErrNoFilesToPrint) {
		t.Fatalf("err = %v, want ErrNoFilesToPrint", err)
	}
}

func TestDispatchPrintMissingFileBlocksWholeOrder(t *testing.T) {
	store := newFakeOrderStore()
	storage := newFakeFileStorage()
	spooler := newFakeSpooler()
	svc := NewPrintService(store, storage, spooler, zerolog.Nop())

	id := seedPrintableOrder(t, store, "uploads/a.pdf", "uploads/gone.pdf")
	storage.missing["uploads/gone.pdf"] = true

	err := svc.DispatchPrint(context.Background(), id)
	if !errors.Is(err, apperrors.ErrPrintFileMissing) {
		t.Fatalf("err = %v, want ErrPrintFileMissing", err)
	}

	// nothing may reach the spooler when any file is absent
	select {
	case path := <-spooler.submitted:
		t.Errorf("file %q was spooled despite missing sibling", path)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatchPrintNeverMutatesOrderState(t *testing.T) {
	store := newFakeOrderStore()
	spooler := newFakeSpooler()
	svc := NewPrintService(store, newFakeFileStorage(), spooler, zerolog.Nop())

	id := seedPrintableOrder(t, store, "uploads/a.pdf")

	if err := svc.DispatchPrint(context.Background(), id); err != nil {
		t.Fatalf("DispatchPrint: %v", err)
	}
	spooler.waitFor(t, 1)

	order, err := store.GetOrderByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetOrderByID: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q after print, want pending", order.Status)
	}
}

func TestDispatchPrintSpoolFailureNotSurfaced(t *testing.T) {
	store := newFakeOrderStore()
	spooler := newFakeSpooler()
	spooler.err = errors.New("printer on fire")
	svc := NewPrintService(store, newFakeFileStorage(), spooler, zerolog.Nop())

	id := seedPrintableOrder(t, store, "uploads/a.pdf")

	// dispatch already succeeded; the spool failure is only logged
	if err := svc.DispatchPrint(context.Background(), id); err != nil {
		t.Fatalf("DispatchPrint: %v", err)
	}
	spooler.waitFor(t, 1)
}
