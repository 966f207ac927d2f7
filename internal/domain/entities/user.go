package entities

import "fmt"

// Role is the closed set of user profiles. View selection must switch
// exhaustively on it instead of comparing raw strings, so adding a third
// role is a compile-visible change.
type Role string

const (
	RoleAdmin      Role = "Administrador"
	RoleTechnician Role = "Tecnico"
)

// ParseRole maps the perfil column to a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleTechnician:
		return RoleTechnician, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is a row of the usuario table. The login check is a plaintext
// credential match against that table, trusted as-is.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Login        string `json:"login"`
	Role         Role   `json:"perfil"`
	Active       bool   `json:"ativo"`
	WeeklyTarget int    `json:"meta_semanal,omitempty"`
}
