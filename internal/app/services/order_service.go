package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/app/repositories"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
	"github.com/karthik/printdesk/internal/pkg/filestorage"
)

// MaxFilesPerOrder bounds one order submission
const MaxFilesPerOrder = 10

// OrderService defines the order lifecycle operations
type OrderService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest, files []*multipart.FileHeader) (int64, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	ListOrdersByStudent(ctx context.Context, studentName string) ([]*models.Order, error)
	ListAllOrders(ctx context.Context) ([]*models.Order, error)
	CompleteOrder(ctx context.Context, id int64) error
	ResetLedger(ctx context.Context) error
}

// orderServiceImpl implements the OrderService interface
type orderServiceImpl struct {
	orderStore OrderStore
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(orderStore OrderStore, storage filestorage.FileStorage, logger zerolog.Logger) OrderService {
	return &orderServiceImpl{
		orderStore: orderStore,
		storage:    storage,
		logger:     logger,
	}
}

// CreateOrder validates a submission, stores its files and persists a
// pending order. Files hit durable storage before the row that
// references them, so a row never points at files that were not saved;
// the reverse (an orphaned file when the insert fails) is accepted.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest, files []*multipart.FileHeader) (int64, error) {
	if req == nil || strings.TrimSpace(req.StudentName) == "" {
		return 0, fmt.Errorf("%w: studentName is required", apperrors.ErrValidationFailed)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("%w: at least one file is required", apperrors.ErrValidationFailed)
	}
	if len(files) > MaxFilesPerOrder {
		return 0, fmt.Errorf("%w: at most %d files per order", apperrors.ErrValidationFailed, MaxFilesPerOrder)
	}

	filePaths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := s.storage.SaveFile(fh)
		if err != nil {
			return 0, fmt.Errorf("error storing uploaded file: %w", err)
		}
		filePaths = append(filePaths, path)
	}

	order := &models.Order{
		StudentID:     req.StudentID,
		StudentName:   strings.TrimSpace(req.StudentName),
		FilePaths:     filePaths,
		Status:        models.OrderStatusPending,
		PaymentMethod: models.NormalizePaymentMethod(req.PaymentMethod),
		Amount:        coerceAmount(req.Amount),
		Bin:           req.Bin,
		LunchTime:     req.LunchTime,
		Pages:         int(coerceAmount(req.Pages)),
		Copies:        int(coerceAmount(req.Copies)),
		PrintType:     req.PrintType,
		Sides:         req.Sides,
	}

	id, err := s.orderStore.CreateOrder(ctx, order)
	if err != nil {
		return 0, fmt.Errorf("error creating order: %w", err)
	}

	s.logger.Info().Int64("orderID", id).Str("studentName", order.StudentName).
		Int("files", len(filePaths)).Str("paymentMethod", string(order.PaymentMethod)).
		Int64("amount", order.Amount).Msg("Order created")

	return id, nil
}

// GetOrder retrieves an order by id
func (s *orderServiceImpl) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid order ID", apperrors.ErrValidationFailed)
	}

	order, err := s.orderStore.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("error retrieving order: %w", err)
	}
	return order, nil
}

// ListOrdersByStudent retrieves a student's orders, newest first
func (s *orderServiceImpl) ListOrdersByStudent(ctx context.Context, studentName string) ([]*models.Order, error) {
	if strings.TrimSpace(studentName) == "" {
		return nil, fmt.Errorf("%w: student name is required", apperrors.ErrValidationFailed)
	}

	orders, err := s.orderStore.GetOrdersByStudentName(ctx, studentName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student orders: %w", err)
	}
	return orders, nil
}

// ListAllOrders retrieves the whole ledger, newest first
func (s *orderServiceImpl) ListAllOrders(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orderStore.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving orders: %w", err)
	}
	return orders, nil
}

// CompleteOrder moves an order to completed. Idempotent: repeating the
// call on a completed order succeeds without changing anything.
func (s *orderServiceImpl) CompleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid order ID", apperrors.ErrValidationFailed)
	}

	if err := s.orderStore.MarkOrderCompleted(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return fmt.Errorf("error completing order: %w", err)
	}

	s.logger.Info().Int64("orderID", id).Msg("Order marked as completed")
	return nil
}

// ResetLedger clears the entire order ledger
func (s *orderServiceImpl) ResetLedger(ctx context.Context) error {
	if err := s.orderStore.DeleteAllOrders(ctx); err != nil {
		return fmt.Errorf("error resetting order ledger: %w", err)
	}

	s.logger.Warn().Msg("Order ledger cleared")
	return nil
}

// coerceAmount parses a numeric form field. Unparsable or negative
// input counts as 0; submissions are not rejected for sloppy numbers.
func coerceAmount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
