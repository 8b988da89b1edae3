package request

import "hotel-admin/internal/usecase/commands"

// LoginRequest accepts both an OAuth2 password form and a JSON body
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}
