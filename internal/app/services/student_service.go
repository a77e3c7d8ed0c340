package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/karthik/printdesk/internal/app/models"
	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/app/repositories"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
	"github.com/karthik/printdesk/internal/pkg/auth"
)

// StudentService defines student registration and account operations
type StudentService interface {
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error)
	Login(ctx context.Context, email, password string) (*models.Student, error)
	GetProfile(ctx context.Context, id int64) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentStore StudentStore
	logger       zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentStore: studentStore,
		logger:       logger,
	}
}

// Register creates a student account. Passwords are stored only as
// bcrypt hashes; a duplicate email fails without touching the store.
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return 0, fmt.Errorf("%w: name, email and password are required", apperrors.ErrValidationFailed)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:         strings.TrimSpace(req.Name),
		Department:   req.Department,
		Year:         req.Year,
		RollNo:       req.RollNo,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}

	id, err := s.studentStore.CreateStudent(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error registering student: %w", err)
	}

	s.logger.Info().Int64("studentID", id).Str("email", student.Email).Msg("Student registered")
	return id, nil
}

// Login verifies student credentials. The same error comes back whether
// the email is unknown or the password wrong.
func (s *studentServiceImpl) Login(ctx context.Context, email, password string) (*models.Student, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidationFailed)
	}

	student, err := s.studentStore.GetStudentByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(student.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// GetProfile retrieves a student's public profile
func (s *studentServiceImpl) GetProfile(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentStore.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return student, nil
}
