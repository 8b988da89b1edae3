//go:build unit

package usecase_test

import (
	"errors"
	"testing"
	"time"

	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/usecase"
	"hotel-admin/tests/common/builder"
	queriesmock "hotel-admin/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestTokenValidator(t *testing.T) {
	service := jwt.NewService(testSecret, "hotel-admin-test", time.Minute)
	view := builder.NewUserBuilder().WithID(3).WithUsername("admin").BuildView()

	issue := func(t *testing.T, s *jwt.Service, username string) string {
		t.Helper()
		token, err := s.GenerateAccessToken(3, username)
		require.NoError(t, err)
		return token
	}

	t.Run("resolves the subject to a user", func(t *testing.T) {
		users := queriesmock.NewMockUserQueries(gomock.NewController(t))
		users.EXPECT().GetByUsername(gomock.Any(), "admin").Return(view, nil)

		got, err := usecase.NewTokenValidator(service, users).ValidateToken(t.Context(), issue(t, service, "admin"))

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("rejects tokens signed with another key", func(t *testing.T) {
		users := queriesmock.NewMockUserQueries(gomock.NewController(t))
		other := jwt.NewService("another-secret", "hotel-admin-test", time.Minute)

		_, err := usecase.NewTokenValidator(service, users).ValidateToken(t.Context(), issue(t, other, "admin"))

		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		users := queriesmock.NewMockUserQueries(gomock.NewController(t))
		expired := jwt.NewService(testSecret, "hotel-admin-test", -time.Minute)

		_, err := usecase.NewTokenValidator(service, users).ValidateToken(t.Context(), issue(t, expired, "admin"))

		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("rejects tokens for deleted users", func(t *testing.T) {
		users := queriesmock.NewMockUserQueries(gomock.NewController(t))
		users.EXPECT().GetByUsername(gomock.Any(), "gone").Return(nil, errs.ErrUserNotFound)

		_, err := usecase.NewTokenValidator(service, users).ValidateToken(t.Context(), issue(t, service, "gone"))

		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("store failures pass through", func(t *testing.T) {
		users := queriesmock.NewMockUserQueries(gomock.NewController(t))
		boom := errors.New("connection refused")
		users.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, boom)

		_, err := usecase.NewTokenValidator(service, users).ValidateToken(t.Context(), issue(t, service, "admin"))

		assert.ErrorIs(t, err, boom)
		assert.False(t, errs.Is(err, errs.ErrUnauthorized))
	})
}
