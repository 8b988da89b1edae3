//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/tests/common/dbtest"
	"hotel-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const TokenURL = "/auth/token"

func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformFormRequest(t, router, TokenURL, url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp resdto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken, "access token missing from response")

	return resp.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, username, dbtest.DefaultPassword)
	return LoginUser(t, router, username, dbtest.DefaultPassword)
}
