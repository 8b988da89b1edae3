//go:build unit || e2e

package builder

import (
	"hotel-admin/internal/domain/user"
	reqdto "hotel-admin/internal/handler/dto/request"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/queries"
)

type UserBuilder struct {
	ID           int64
	Username     string
	Password     string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "admin",
		Password:     "password123",
		PasswordHash: "hashed_password",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.ID, u.Username, u.PasswordHash)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:       u.ID,
		Username: u.Username,
	}
}

func (u *UserBuilder) BuildCreateDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Username: u.Username,
		Password: u.Password,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}
