package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for lookups that match no row
var ErrNotFound = errors.New("not found")

// Repositories holds all the repository instances
type Repositories struct {
	OrderRepository   *OrderRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		OrderRepository:   NewOrderRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
