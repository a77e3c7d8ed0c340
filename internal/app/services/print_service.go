package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/karthik/printdesk/internal/app/repositories"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
	"github.com/karthik/printdesk/internal/pkg/filestorage"
	"github.com/karthik/printdesk/internal/pkg/printer"
)

// PrintService dispatches an order's files to the physical print sink.
// Dispatch is advisory and best effort; it never changes order state.
// Completion stays a separate, authoritative transition.
type PrintService interface {
	DispatchPrint(ctx context.Context, orderID int64) error
}

// printServiceImpl implements the PrintService interface
type printServiceImpl struct {
	orderStore OrderStore
	storage    filestorage.FileStorage
	spooler    printer.Spooler
	logger     zerolog.Logger
}

// NewPrintService creates a new print service instance
func NewPrintService(orderStore OrderStore, storage filestorage.FileStorage, spooler printer.Spooler, logger zerolog.Logger) PrintService {
	return &printServiceImpl{
		orderStore: orderStore,
		storage:    storage,
		spooler:    spooler,
		logger:     logger,
	}
}

// fileResult pairs one dispatched file with its spool outcome
type fileResult struct {
	fileRef string
	err     error
}

// DispatchPrint validates that the order and every one of its files
// exist, then submits each file to the spooler asynchronously. Spool
// outcomes come back on a result channel and are only logged; a
// submitted print job cannot be retracted and its failure does not
// surface to the caller.
func (s *printServiceImpl) DispatchPrint(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return fmt.Errorf("%w: invalid order ID", apperrors.ErrValidationFailed)
	}

	order, err := s.orderStore.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return fmt.Errorf("error retrieving order for print: %w", err)
	}

	if len(order.FilePaths) == 0 {
		return apperrors.ErrNoFilesToPrint
	}

	// All files must be present before anything is spooled; a partially
	// dispatched order is worse than a rejected request.
	paths := make([]string, 0, len(order.FilePaths))
	for _, fileRef := range order.FilePaths {
		if !s.storage.Exists(fileRef) {
			return apperrors.NewCustomError(apperrors.ErrPrintFileMissing,
				fmt.Sprintf("File not found: %s", fileRef))
		}
		paths = append(paths, s.storage.GetFullPath(fileRef))
	}

	// The HTTP response returns before spool outcomes are known, so the
	// submissions run against a background context, not the request's.
	results := make(chan fileResult, len(paths))
	for _, path := range paths {
		go func(path string) {
			results <- fileResult{fileRef: path, err: s.spooler.Submit(context.Background(), path)}
		}(path)
	}

	go s.drainResults(orderID, len(paths), results)

	s.logger.Info().Int64("orderID", orderID).Int("files", len(paths)).Msg("Print jobs dispatched")
	return nil
}

// drainResults logs each file's spool outcome. Failures are isolated
// per file and never abort sibling dispatches.
func (s *printServiceImpl) drainResults(orderID int64, count int, results <-chan fileResult) {
	for i := 0; i < count; i++ {
		res := <-results
		if res.err != nil {
			s.logger.Error().Err(res.err).Int64("orderID", orderID).
				Str("file", res.fileRef).Msg("Print job failed")
			continue
		}
		s.logger.Info().Int64("orderID", orderID).
			Str("file", res.fileRef).Msg("Print job sent")
	}
}
