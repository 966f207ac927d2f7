package repository

import (
	"context"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/dataservice"
	"mantranwebapi/internal/usecase/interfaces"
)

const defaultUsersTable = "usuario"

type UserRestRepository struct {
	ds    *dataservice.Client
	table string
}

var _ interfaces.IUserRepository = (*UserRestRepository)(nil)

func NewUserRestRepository(ds *dataservice.Client) *UserRestRepository {
	return &UserRestRepository{
		ds:    ds,
		table: getenvDefault("USERS_TABLE", defaultUsersTable),
	}
}

// FindByCredentials is a plaintext equality filter against active users.
// Hardening is an explicit non-goal; the store is trusted as-is.
func (r *UserRestRepository) FindByCredentials(ctx context.Context, login, password string) (entities.User, error) {
	q := dataservice.NewQuery().
		Select("id", "nome", "login", "perfil", "ativo", "meta_semanal").
		Eq("login", login).
		Eq("senha", password).
		IsTrue("ativo").
		Limit(1)

	var rows []entities.User
	if err := r.ds.Get(ctx, r.table, q, &rows); err != nil {
		return entities.User{}, err
	}
	if len(rows) == 0 {
		return entities.User{}, nil
	}
	return rows[0], nil
}
