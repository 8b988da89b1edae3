//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/httptest"
	usecasemock "hotel-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	mw := middleware.NewAuthMiddleware(validator)

	r := gin.New()
	r.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		u, ok := middleware.GetCurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": u.Username})
	})
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	view := builder.NewUserBuilder().WithID(1).WithUsername("admin").BuildView()

	t.Run("valid token stores the current user", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken(gomock.Any(), "good-token").Return(view, nil)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "good-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"admin"}`, w.Body.String())
	})

	t.Run("missing header is challenged", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Not authenticated")
		httptest.AssertHeaders(t, w, map[string]string{"WWW-Authenticate": "Bearer"})
	})

	t.Run("invalid token is challenged", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken(gomock.Any(), "bad-token").
			Return(nil, errs.Mark(errors.New("token is expired"), errs.ErrUnauthorized))

		w := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "bad-token")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Could not validate credentials")
		httptest.AssertHeaders(t, w, map[string]string{"WWW-Authenticate": "Bearer"})
	})

	t.Run("store failure is not reported as 401", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken(gomock.Any(), "good-token").Return(nil, errors.New("connection refused"))

		w := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "good-token")

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestRequireAuthSchemes(t *testing.T) {
	view := builder.NewUserBuilder().WithID(1).BuildView()

	tests := []struct {
		name       string
		header     string
		wantCalled bool
		wantStatus int
	}{
		{name: "lowercase scheme accepted", header: "bearer tok", wantCalled: true, wantStatus: http.StatusOK},
		{name: "basic scheme rejected", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "scheme without token rejected", header: "Bearer", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, validator := newAuthRouter(t)
			if tt.wantCalled {
				validator.EXPECT().ValidateToken(gomock.Any(), "tok").Return(view, nil)
			}

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			w := stdhttptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
