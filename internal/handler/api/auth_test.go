//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"hotel-admin/internal/handler/api"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/httptest"
	"hotel-admin/tests/common/testutil"
	commandsmock "hotel-admin/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/token", s.handler.Login)
	s.router.GET("/users/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetCurrentUser(c, builder.NewUserBuilder().WithID(7).BuildView())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	path := "/auth/token"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	expectedInput := reqBody.ToInput()
	issued := &commands.LoginResult{AccessToken: "test-jwt-token", TokenType: "bearer"}

	s.Run("success: returns 200 OK for JSON credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), expectedInput).Return(issued, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("bearer", response.TokenType)
	})

	s.Run("success: accepts OAuth2 password form", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), expectedInput).Return(issued, nil).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, path, url.Values{
			"username": {reqBody.Username},
			"password": {reqBody.Password},
		})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 on missing or empty fields", func() {
		cases := []testCaseAuth{
			{name: "missing field: username", mutate: testutil.Field("username", nil), expectCode: http.StatusUnprocessableEntity},
			{name: "missing field: password", mutate: testutil.Field("password", nil), expectCode: http.StatusUnprocessableEntity},
			{name: "empty username", mutate: testutil.Field("username", ""), expectCode: http.StatusUnprocessableEntity},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusUnprocessableEntity},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, requestMap, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Validation failed")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Incorrect username or password",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), expectedInput).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				if tc.expectedStatus == http.StatusUnauthorized {
					s.Equal("Bearer", rec.Header().Get("WWW-Authenticate"))
				}
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	path := "/users/me"

	s.Run("success: returns the authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.ID)
		s.Equal("admin", response.Username)
	})

	s.Run("error: 401 without a user in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
		s.Equal("Bearer", rec.Header().Get("WWW-Authenticate"))
	})
}
