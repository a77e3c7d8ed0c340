package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
)

func registerAsha(t *testing.T, svc StudentService) int64 {
	t.Helper()
	id, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name:       "Asha",
		Department: "CSE",
		Year:       "3",
		RollNo:     "21CS042",
		Email:      "asha@college.edu",
		Password:   "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return id
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store, zerolog.Nop())
	id := registerAsha(t, svc)

	student, err := svc.Login(context.Background(), "asha@college.edu", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if student.ID != id || student.Name != "Asha" {
		t.Errorf("login returned %d/%q, want %d/Asha", student.ID, student.Name, id)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store, zerolog.Nop())
	registerAsha(t, svc)

	stored, err := store.GetStudentByEmail(context.Background(), "asha@college.edu")
	if err != nil {
		t.Fatalf("GetStudentByEmail: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret123" {
		t.Errorf("password stored as %q, want a bcrypt hash", stored.PasswordHash)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	registerAsha(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name:     "Impostor",
		Email:    "asha@college.edu",
		Password: "different",
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	registerAsha(t, svc)

	tests := []struct {
		name            string
		email, password string
	}{
		{"wrong password", "asha@college.edu", "nope"},
		{"unknown email", "ravi@college.edu", "secret123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			// unknown email and bad password are indistinguishable
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestGetProfileOmitsCredentials(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())
	id := registerAsha(t, svc)

	student, err := svc.GetProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if student.Email != "asha@college.edu" {
		t.Errorf("email = %q", student.Email)
	}
	if student.PasswordHash != "" {
		t.Error("profile lookup exposed the password hash")
	}
}

func TestGetProfileUnknownID(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), zerolog.Nop())

	_, err := svc.GetProfile(context.Background(), 77)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}
