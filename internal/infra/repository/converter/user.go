package converter

import (
	"hotel-admin/internal/domain/user"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

func UserFromRow(row sqlc.Users) (*user.User, error) {
	return user.NewUser(row.ID, row.Username, row.PasswordHash)
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		Username:     u.Username().String(),
		PasswordHash: u.PasswordHash(),
	}
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	return sqlc.UpdateUserParams{
		ID:           u.ID(),
		Username:     u.Username().String(),
		PasswordHash: u.PasswordHash(),
	}
}
