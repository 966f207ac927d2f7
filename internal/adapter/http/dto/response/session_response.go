package response

import "mantranwebapi/internal/domain/entities"

type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Login        string `json:"login"`
	Role         string `json:"role"`
	WeeklyTarget int    `json:"weekly_target,omitempty"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromSession(token string, u entities.User) SessionResponse {
	return SessionResponse{
		Token: token,
		User: UserResponse{
			ID:           u.ID,
			Name:         u.Name,
			Login:        u.Login,
			Role:         string(u.Role),
			WeeklyTarget: u.WeeklyTarget,
		},
	}
}
