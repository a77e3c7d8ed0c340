package services

import (
	"context"
	"time"

	"github.com/karthik/printdesk/internal/app/models"
)

// OrderStore is the order-ledger surface the services depend on. The
// pgx-backed repository implements it in production; tests substitute
// an in-memory fake.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) (int64, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	GetOrdersByStudentName(ctx context.Context, studentName string) ([]*models.Order, error)
	GetAllOrders(ctx context.Context) ([]*models.Order, error)
	MarkOrderCompleted(ctx context.Context, id int64) error
	GlobalStats(ctx context.Context) (*models.OrderStats, error)
	PaymentSummary(ctx context.Context, from, to time.Time) (*models.PaymentSummary, error)
	DeleteAllOrders(ctx context.Context) error
}

// StudentStore is the student-registry surface the services depend on.
type StudentStore interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
}
