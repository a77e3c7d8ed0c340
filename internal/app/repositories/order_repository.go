package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/pkg/logger"
)

// Order error types
var (
	// ErrOrderNotFound is returned when an order id matches no row.
	ErrOrderNotFound = ErrNotFound
)

// orderColumns is the scan order every order query uses
var orderColumns = []string{
	"id", "student_id", "student_name", "file_paths", "status",
	"payment_method", "amount", "bin", "lunch_time", "pages", "copies",
	"print_type", "sides", "created_at",
}

// OrderRepository handles order ledger database operations
type OrderRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateOrder inserts a new pending order and returns its assigned id.
// Uploaded files must already be on disk; the row only carries their
// reference paths.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (int64, error) {
	sql, args, err := r.sb.Insert("orders").
		Columns("student_id", "student_name", "file_paths", "status",
			"payment_method", "amount", "bin", "lunch_time", "pages",
			"copies", "print_type", "sides").
		Values(order.StudentID, order.StudentName, order.FilePaths,
			models.OrderStatusPending, order.PaymentMethod, order.Amount,
			order.Bin, order.LunchTime, order.Pages, order.Copies,
			order.PrintType, order.Sides).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create order SQL")
		return 0, fmt.Errorf("failed to build create order query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create order query")
		return 0, fmt.Errorf("error creating order: %w", err)
	}

	return id, nil
}

// GetOrderByID retrieves an order by id
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	sql, args, err := r.sb.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get order by ID SQL")
		return nil, fmt.Errorf("failed to build get order query: %w", err)
	}

	order, err := scanOrderRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		logger.Error().Err(err).Int64("orderID", id).Msg("Error scanning order row")
		return nil, fmt.Errorf("error getting order by ID: %w", err)
	}

	return order, nil
}

// GetOrdersByStudentName retrieves a student's orders, newest first
func (r *OrderRepository) GetOrdersByStudentName(ctx context.Context, studentName string) ([]*models.Order, error) {
	sql, args, err := r.sb.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"student_name": studentName}).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get orders by student SQL")
		return nil, fmt.Errorf("failed to build get orders by student query: %w", err)
	}

	return r.queryOrders(ctx, sql, args)
}

// GetAllOrders retrieves every order in the ledger, newest first
func (r *OrderRepository) GetAllOrders(ctx context.Context) ([]*models.Order, error) {
	sql, args, err := r.sb.Select(orderColumns...).
		From("orders").
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all orders SQL")
		return nil, fmt.Errorf("failed to build get all orders query: %w", err)
	}

	return r.queryOrders(ctx, sql, args)
}

// MarkOrderCompleted moves an order to its terminal state. Completing an
// already-completed order is a harmless repeat of the same UPDATE; a
// missing id is reported as ErrOrderNotFound rather than silently
// updating zero rows.
func (r *OrderRepository) MarkOrderCompleted(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("orders").
		Set("status", models.OrderStatusCompleted).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building mark order completed SQL")
		return fmt.Errorf("failed to build mark order completed query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("orderID", id).Msg("Error executing mark order completed query")
		return fmt.Errorf("error marking order completed: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// GlobalStats aggregates the whole ledger in a single query so the
// returned counts are consistent with each other.
func (r *OrderRepository) GlobalStats(ctx context.Context) (*models.OrderStats, error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE payment_method = 'online')",
		"COUNT(*) FILTER (WHERE payment_method = 'cash')",
		"COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0)",
	).
		From("orders").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building global stats SQL")
		return nil, fmt.Errorf("failed to build global stats query: %w", err)
	}

	stats := &models.OrderStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.Total, &stats.Pending, &stats.Completed,
		&stats.Online, &stats.Cash, &stats.TotalEarned,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning global stats row")
		return nil, fmt.Errorf("error computing order stats: %w", err)
	}

	return stats, nil
}

// PaymentSummary partitions orders created in the half-open window
// [from, to) by payment method. Window bounds always travel as query
// parameters, never as interpolated literals.
func (r *OrderRepository) PaymentSummary(ctx context.Context, from, to time.Time) (*models.PaymentSummary, error) {
	sql, args, err := r.sb.Select(
		"COUNT(*) FILTER (WHERE payment_method = 'cash')",
		"COALESCE(SUM(amount) FILTER (WHERE payment_method = 'cash'), 0)",
		"COUNT(*) FILTER (WHERE payment_method = 'online')",
		"COALESCE(SUM(amount) FILTER (WHERE payment_method = 'online'), 0)",
	).
		From("orders").
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building payment summary SQL")
		return nil, fmt.Errorf("failed to build payment summary query: %w", err)
	}

	summary := &models.PaymentSummary{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&summary.CashCount, &summary.CashTotal,
		&summary.OnlineCount, &summary.OnlineTotal,
	)
	if err != nil {
		logger.Error().Err(err).Time("from", from).Time("to", to).Msg("Error scanning payment summary row")
		return nil, fmt.Errorf("error computing payment summary: %w", err)
	}

	return summary, nil
}

// DeleteAllOrders clears the order ledger entirely and resets id
// assignment. Destructive; the route is admin gated.
func (r *OrderRepository) DeleteAllOrders(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "TRUNCATE TABLE orders RESTART IDENTITY")
	if err != nil {
		logger.Error().Err(err).Msg("Error truncating orders table")
		return fmt.Errorf("error clearing order ledger: %w", err)
	}
	return nil
}

// queryOrders runs a multi-row order query and scans the result set
func (r *OrderRepository) queryOrders(ctx context.Context, sql string, args []interface{}) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing orders query")
		return nil, fmt.Errorf("error querying orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning order row")
			return nil, fmt.Errorf("error scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating order rows")
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	return orders, nil
}

// scanOrderRow scans one row in orderColumns order
func scanOrderRow(row pgx.Row) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID, &order.StudentID, &order.StudentName, &order.FilePaths,
		&order.Status, &order.PaymentMethod, &order.Amount, &order.Bin,
		&order.LunchTime, &order.Pages, &order.Copies, &order.PrintType,
		&order.Sides, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
