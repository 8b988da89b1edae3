package commands

import (
	"context"

	"hotel-admin/internal/domain/user"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/password"
	"hotel-admin/internal/usecase/shared"
)

type CreateUserInput struct {
	Username string
	Password string
}

// Nil fields are left unchanged. A new password is hashed before it is stored.
type UpdateUserInput struct {
	Username *string
	Password *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (*user.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*user.User, error)
	Delete(ctx context.Context, id int64) (*user.User, error)
	// EnsureUser creates the user unless the username is already taken and
	// reports whether it did.
	EnsureUser(ctx context.Context, in CreateUserInput) (bool, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher password.Hasher
}

func NewUserCommands(uow shared.UnitOfWork, hasher password.Hasher) UserCommands {
	return &userCommandsImpl{
		uow:    uow,
		hasher: hasher,
	}
}

func (c *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (*user.User, error) {
	u, err := c.newUser(0, in.Username, in.Password)
	if err != nil {
		return nil, err
	}

	var created *user.User
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.Users().Create(ctx, u)
		if err != nil {
			return mapUserWriteErr(err)
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, id int64, in UpdateUserInput) (*user.User, error) {
	var updated *user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrUserNotFound)
		}

		username := current.Username().String()
		if in.Username != nil {
			username = *in.Username
		}
		hash := current.PasswordHash()
		if in.Password != nil {
			pw, err := user.NewPassword(*in.Password)
			if err != nil {
				return validationErr(err)
			}
			if hash, err = c.hasher.Hash(pw.Value()); err != nil {
				return errs.Wrap(err, "hash password")
			}
		}

		merged, err := user.NewUser(current.ID(), username, hash)
		if err != nil {
			return validationErr(err)
		}

		row, err := tx.Users().Update(ctx, merged)
		if err != nil {
			return mapUserWriteErr(err)
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, id int64) (*user.User, error) {
	var removed *user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.Users().Delete(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrUserNotFound)
		}
		removed = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (c *userCommandsImpl) EnsureUser(ctx context.Context, in CreateUserInput) (bool, error) {
	u, err := c.newUser(0, in.Username, in.Password)
	if err != nil {
		return false, err
	}

	created := false
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().FindByUsername(ctx, u.Username().String())
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return mapRepoErr(err, errs.ErrUserNotFound)
		}

		if _, err := tx.Users().Create(ctx, u); err != nil {
			return mapUserWriteErr(err)
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (c *userCommandsImpl) newUser(id int64, username, plain string) (*user.User, error) {
	pw, err := user.NewPassword(plain)
	if err != nil {
		return nil, validationErr(err)
	}
	// Reject a bad username before paying for bcrypt
	if _, err := user.NewUsername(username); err != nil {
		return nil, validationErr(err)
	}

	hash, err := c.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(id, username, hash)
	if err != nil {
		return nil, validationErr(err)
	}
	return u, nil
}

func mapUserWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicateUsername)
	}
	return mapRepoErr(err, errs.ErrUserNotFound)
}
