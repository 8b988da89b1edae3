//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-admin/internal/handler/api"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/queries"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/httptest"
	"hotel-admin/tests/common/testutil"
	commandsmock "hotel-admin/tests/mock/commands"
	queriesmock "hotel-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RateAdjustmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRateAdjustmentCommands
	mockQueries  *queriesmock.MockRateAdjustmentQueries
}

func (s *RateAdjustmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRateAdjustmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRateAdjustmentQueries(s.mockCtrl)
	handler := api.NewRateAdjustmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rate-adjustments", handler.Create)
	s.router.GET("/rate-adjustments", handler.List)
	s.router.GET("/rate-adjustments/:adjustment_id", handler.Get)
	s.router.PUT("/rate-adjustments/:adjustment_id", handler.Update)
	s.router.DELETE("/rate-adjustments/:adjustment_id", handler.Delete)
}

func (s *RateAdjustmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRateAdjustmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(RateAdjustmentHandlerTestSuite))
}

func (s *RateAdjustmentHandlerTestSuite) TestCreate() {
	b := builder.NewRateAdjustmentBuilder().WithID(8).WithRoomTypeID(4).WithAmount(-15)
	reqBody := b.BuildCreateDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: accepts negative amounts", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateRateAdjustmentInput{
			RoomTypeID:       4,
			AdjustmentAmount: -15,
			EffectiveDate:    b.EffectiveDate,
			Reason:           b.Reason,
		}).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rate-adjustments", reqBody, "")

		var response resdto.RateAdjustmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(-15.0, response.AdjustmentAmount, 1e-9)
		s.True(b.EffectiveDate.Equal(response.EffectiveDate))
	})

	s.Run("error: 422 on bad payloads", func() {
		cases := map[string]func(map[string]any){
			"missing amount":  testutil.Field("adjustment_amount", nil),
			"empty reason":    testutil.Field("reason", ""),
			"malformed date":  testutil.Field("effective_date", "06/15/2024"),
			"missing room id": testutil.Field("room_type_id", nil),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				body := testutil.DtoMap(s.T(), reqBody, mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rate-adjustments", body, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
			})
		}
	})

	s.Run("error: 404 when room type is absent", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.ErrRoomTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rate-adjustments", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room Type not found")
	})
}

func (s *RateAdjustmentHandlerTestSuite) TestList() {
	s.Run("success: returns the page", func() {
		views := []*queries.RateAdjustmentView{builder.NewRateAdjustmentBuilder().WithID(1).BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.Page{Skip: 0, Limit: 1}).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rate-adjustments?limit=1", nil, "")

		var response []resdto.RateAdjustmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

func (s *RateAdjustmentHandlerTestSuite) TestGet() {
	s.Run("error: 404 when absent", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, errs.ErrRateAdjustmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rate-adjustments/9", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rate Adjustment not found")
	})
}

func (s *RateAdjustmentHandlerTestSuite) TestUpdate() {
	s.Run("success: moves the effective date", func() {
		moved := dateonly.New(2024, time.July, 1)
		updated, err := builder.NewRateAdjustmentBuilder().WithID(8).WithEffectiveDate(moved).BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().
			Update(gomock.Any(), int64(8), commands.UpdateRateAdjustmentInput{EffectiveDate: &moved}).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rate-adjustments/8",
			map[string]any{"effective_date": "2024-07-01"}, "")

		var response resdto.RateAdjustmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2024-07-01", response.EffectiveDate.String())
	})
}

func (s *RateAdjustmentHandlerTestSuite) TestDelete() {
	s.Run("success: returns the removed adjustment", func() {
		removed, err := builder.NewRateAdjustmentBuilder().WithID(8).BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(8)).Return(removed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rate-adjustments/8", nil, "")

		var response resdto.RateAdjustmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(8), response.ID)
	})
}
