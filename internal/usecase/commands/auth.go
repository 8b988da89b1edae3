package commands

import (
	"context"

	"hotel-admin/internal/domain/user"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/pkg/password"
	"hotel-admin/internal/usecase/shared"
)

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     password.Hasher
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, hasher password.Hasher, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Login does not reveal whether the username or the password was wrong.
func (c *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	// same normalization as on create and update, so stored names match
	username, err := user.NewUsername(in.Username)
	if err != nil || in.Password == "" {
		return nil, errs.Mark(errs.New("username and password are required"), errs.ErrDomainValidation)
	}

	var found *user.User
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByUsername(ctx, username.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrInvalidCredentials
			}
			return mapRepoErr(err, errs.ErrInvalidCredentials)
		}
		found = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := c.hasher.Compare(found.PasswordHash(), in.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := c.jwtService.GenerateAccessToken(found.ID(), found.Username().String())
	if err != nil {
		return nil, errs.Wrap(err, "generate access token")
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   jwt.TokenTypeBearer,
	}, nil
}
