package response

import (
	"hotel-admin/internal/domain/user"
	"hotel-admin/internal/usecase/queries"
)

// UserResponse never exposes the password hash
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID(),
		Username: u.Username().String(),
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID,
		Username: v.Username,
	}
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(vs))
	for i, v := range vs {
		res[i] = FromUserView(v)
	}
	return res
}
