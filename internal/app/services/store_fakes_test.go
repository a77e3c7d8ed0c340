package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/app/repositories"
)

// fakeOrderStore is an in-memory OrderStore with the same observable
// semantics as the pgx-backed repository.
type fakeOrderStore struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*models.Order

	createErr error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		nextID: 1,
		orders: make(map[int64]*models.Order),
	}
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, order *models.Order) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return 0, f.createErr
	}

	stored := *order
	stored.ID = f.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.orders[stored.ID] = &stored
	f.nextID++
	return stored.ID, nil
}

func (f *fakeOrderStore) GetOrderByID(_ context.Context, id int64) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, repositories.ErrOrderNotFound)
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderStore) GetOrdersByStudentName(_ context.Context, studentName string) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.Order
	for _, order := range f.orders {
		if order.StudentName == studentName {
			cp := *order
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeOrderStore) GetAllOrders(_ context.Context) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*models.Order, 0, len(f.orders))
	for _, order := range f.orders {
		cp := *order
		out = append(out, &cp)
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeOrderStore) MarkOrderCompleted(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, repositories.ErrOrderNotFound)
	}
	order.Status = models.OrderStatusCompleted
	return nil
}

func (f *fakeOrderStore) GlobalStats(_ context.Context) (*models.OrderStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := &models.OrderStats{}
	for _, order := range f.orders {
		stats.Total++
		switch order.Status {
		case models.OrderStatusPending:
			stats.Pending++
		case models.OrderStatusCompleted:
			stats.Completed++
			stats.TotalEarned += order.Amount
		}
		switch order.PaymentMethod {
		case models.PaymentMethodOnline:
			stats.Online++
		default:
			stats.Cash++
		}
	}
	return stats, nil
}

func (f *fakeOrderStore) PaymentSummary(_ context.Context, from, to time.Time) (*models.PaymentSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary := &models.PaymentSummary{}
	for _, order := range f.orders {
		if order.CreatedAt.Before(from) || !order.CreatedAt.Before(to) {
			continue
		}
		if order.PaymentMethod == models.PaymentMethodOnline {
			summary.OnlineCount++
			summary.OnlineTotal += order.Amount
		} else {
			summary.CashCount++
			summary.CashTotal += order.Amount
		}
	}
	return summary, nil
}

func (f *fakeOrderStore) DeleteAllOrders(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.orders = make(map[int64]*models.Order)
	f.nextID = 1
	return nil
}

func (f *fakeOrderStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func sortNewestFirst(orders []*models.Order) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
}

// fakeStudentStore is an in-memory StudentStore enforcing email
// uniqueness like the real table does.
type fakeStudentStore struct {
	mu       sync.Mutex
	nextID   int64
	students map[int64]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		nextID:   1,
		students: make(map[int64]*models.Student),
	}
}

func (f *fakeStudentStore) CreateStudent(_ context.Context, student *models.Student) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.students {
		if existing.Email == student.Email {
			return 0, repositories.ErrEmailExists
		}
	}

	stored := *student
	stored.ID = f.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.students[stored.ID] = &stored
	f.nextID++
	return stored.ID, nil
}

func (f *fakeStudentStore) GetStudentByEmail(_ context.Context, email string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, student := range f.students {
		if student.Email == email {
			cp := *student
			return &cp, nil
		}
	}
	return nil, repositories.ErrStudentNotFound
}

func (f *fakeStudentStore) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	student, ok := f.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	cp := *student
	cp.PasswordHash = ""
	return &cp, nil
}

// fakeFileStorage records saved uploads and lets tests mark references
// missing.
type fakeFileStorage struct {
	mu      sync.Mutex
	saved   []string
	saveErr error
	missing map[string]bool
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{missing: make(map[string]bool)}
}

func (f *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return "", f.saveErr
	}
	ref := "uploads/" + fileHeader.Filename
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeFileStorage) Exists(fileRef string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.missing[fileRef]
}

func (f *fakeFileStorage) GetFullPath(fileRef string) string {
	return "/var/data/" + fileRef
}

func (f *fakeFileStorage) DeleteFile(string) error { return nil }
