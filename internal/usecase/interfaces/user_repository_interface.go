package interfaces

import (
	"context"

	"mantranwebapi/internal/domain/entities"
)

// IUserRepository abstracts the usuario table.
type IUserRepository interface {
	// FindByCredentials matches login and password against active users.
	// A zero-ID result means no match; authorization hardening is out of
	// scope, the check is a plaintext equality filter.
	FindByCredentials(ctx context.Context, login, password string) (entities.User, error)
}
