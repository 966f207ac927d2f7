package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/session"
	mock_interfaces "mantranwebapi/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "sessions.json"))
}

func TestSessionUseCase_Login(t *testing.T) {
	t.Run("blank credentials", func(t *testing.T) {
		uc := NewSessionUseCase(nil, newSessionStore(t))
		_, _, err := uc.Login(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSessionUseCase(users, newSessionStore(t))

		users.EXPECT().FindByCredentials(gomock.Any(), "ana", "wrong").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "ana", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unmapped role is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSessionUseCase(users, newSessionStore(t))

		users.EXPECT().FindByCredentials(gomock.Any(), "ana", "pw").
			Return(entities.User{ID: "u-1", Role: "Gerente"}, nil)

		_, _, err := uc.Login(context.Background(), "ana", "pw")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues token and stores session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSessionUseCase(users, newSessionStore(t))

		users.EXPECT().FindByCredentials(gomock.Any(), "ana", "pw").
			Return(entities.User{ID: "u-1", Name: "Ana", Role: entities.RoleTechnician, Active: true}, nil)

		token, user, err := uc.Login(context.Background(), "ana", "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("expected non-empty token")
		}
		if user.Role != entities.RoleTechnician {
			t.Fatalf("expected technician role, got %v", user.Role)
		}

		current, err := uc.Current(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if current.ID != "u-1" {
			t.Fatalf("expected resolved session user, got %+v", current)
		}
	})
}

func TestSessionUseCase_LogoutAndCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewSessionUseCase(users, newSessionStore(t))

	users.EXPECT().FindByCredentials(gomock.Any(), "ana", "pw").
		Return(entities.User{ID: "u-1", Role: entities.RoleAdmin, Active: true}, nil)

	token, _, err := uc.Login(context.Background(), "ana", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Logout(token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Current(token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}

	if err := uc.Logout("   "); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for blank token, got %v", err)
	}
}
