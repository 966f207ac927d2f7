package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/session"
	"mantranwebapi/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid login or password (or inactive user)")
	ErrSessionNotFound    = errors.New("session not found")
)

// ISessionUseCase owns the signed-in identity: created at login, supplied
// to every request through Current, destroyed at logout. The store behind
// it is the only local persistence in the service.

type ISessionUseCase interface {
	Login(ctx context.Context, login, password string) (string, entities.User, error)
	Logout(token string) error
	Current(token string) (entities.User, error)
}

type SessionUseCase struct {
	users interfaces.IUserRepository
	store *session.Store
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(users interfaces.IUserRepository, store *session.Store) *SessionUseCase {
	return &SessionUseCase{users: users, store: store}
}

func (u *SessionUseCase) Login(ctx context.Context, login, password string) (string, entities.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	found, err := u.users.FindByCredentials(ctx, login, password)
	if err != nil {
		return "", entities.User{}, err
	}
	if found.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	// Reject rows whose perfil is outside the closed role set instead of
	// letting a stringly-typed value leak into view selection.
	role, err := entities.ParseRole(string(found.Role))
	if err != nil {
		log.Printf("[session][usecase] rejecting login with unmapped role login=%s err=%v", login, err)
		return "", entities.User{}, ErrInvalidCredentials
	}
	found.Role = role

	token := uuid.NewString()
	if err := u.store.Put(token, found); err != nil {
		return "", entities.User{}, err
	}
	log.Printf("[session][usecase] login success user=%s role=%s", found.ID, found.Role)
	return token, found, nil
}

func (u *SessionUseCase) Logout(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrSessionNotFound
	}
	return u.store.Delete(token)
}

func (u *SessionUseCase) Current(token string) (entities.User, error) {
	found, ok := u.store.Get(token)
	if !ok {
		return entities.User{}, ErrSessionNotFound
	}
	return found, nil
}
