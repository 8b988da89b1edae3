package usecase

import (
	"context"

	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/usecase/queries"
)

// TokenValidator resolves a bearer token to the user it was issued for
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*queries.UserView, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserQueries
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserQueries) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

// A token for a user that has since been deleted is rejected.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*queries.UserView, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, errs.ErrUnauthorized
	}

	u, err := t.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errs.Is(err, errs.ErrUserNotFound) {
			return nil, errs.Mark(err, errs.ErrUnauthorized)
		}
		return nil, err
	}
	return u, nil
}
