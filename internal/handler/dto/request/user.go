package request

import "hotel-admin/internal/usecase/commands"

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1"`
	Password *string `json:"password" binding:"omitempty,min=1"`
}

func (r *CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{
		Username: r.Username,
		Password: r.Password,
	}
}

func (r *UpdateUserRequest) ToInput() commands.UpdateUserInput {
	return commands.UpdateUserInput{
		Username: r.Username,
		Password: r.Password,
	}
}
