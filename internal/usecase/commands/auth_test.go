//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", "hotel-admin-test", 30*time.Minute)
	hash, err := testHasher.Hash("password123")
	require.NoError(t, err)
	stored, err := builder.NewUserBuilder().WithID(1).WithPasswordHash(hash).BuildDomain()
	require.NoError(t, err)

	t.Run("success: issues a bearer token for the username", func(t *testing.T) {
		uow, repos := newMocks(t)
		repos.Users.EXPECT().FindByUsername(gomock.Any(), "admin").Return(stored, nil)

		got, err := commands.NewAuthCommands(uow, testHasher, jwtService).Login(ctx, commands.LoginInput{
			Username: "admin",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "bearer", got.TokenType)
		claims, err := jwtService.ValidateToken(got.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, int64(1), claims.UserID)
	})

	t.Run("success: surrounding whitespace is trimmed before lookup", func(t *testing.T) {
		uow, repos := newMocks(t)
		repos.Users.EXPECT().FindByUsername(gomock.Any(), "admin").Return(stored, nil)

		got, err := commands.NewAuthCommands(uow, testHasher, jwtService).Login(ctx, commands.LoginInput{
			Username: "  admin ",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, got.AccessToken)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		uow, repos := newMocks(t)
		repos.Users.EXPECT().FindByUsername(gomock.Any(), "admin").Return(stored, nil)

		_, err := commands.NewAuthCommands(uow, testHasher, jwtService).Login(ctx, commands.LoginInput{
			Username: "admin",
			Password: "wrong",
		})

		assert.True(t, errs.Is(err, errs.ErrInvalidCredentials))
	})

	t.Run("error: unknown user looks the same as a wrong password", func(t *testing.T) {
		uow, repos := newMocks(t)
		repos.Users.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, repoErr(infra.KindNotFound))

		_, err := commands.NewAuthCommands(uow, testHasher, jwtService).Login(ctx, commands.LoginInput{
			Username: "ghost",
			Password: "password123",
		})

		assert.True(t, errs.Is(err, errs.ErrInvalidCredentials))
	})

	t.Run("error: missing fields are a validation error", func(t *testing.T) {
		uow, _ := newMocks(t)

		_, err := commands.NewAuthCommands(uow, testHasher, jwtService).Login(ctx, commands.LoginInput{Username: "admin"})

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: blank username is a validation error", func(t *testing.T) {
		uow, _ := newMocks(t)

		_, err := commands.NewAuthCommands(uow, testHasher, jwtService).Login(ctx, commands.LoginInput{
			Username: "   ",
			Password: "password123",
		})

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
