//go:build unit

package api_test

import (
	"errors"
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

type RoomTypeHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockRoomTypeCommands
	mockQueries     *queriesmock.MockRoomTypeQueries
	mockAdjustments *queriesmock.MockRateAdjustmentQueries
	mockRates       *queriesmock.MockEffectiveRateQueries
}

func (s *RoomTypeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomTypeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomTypeQueries(s.mockCtrl)
	s.mockAdjustments = queriesmock.NewMockRateAdjustmentQueries(s.mockCtrl)
	s.mockRates = queriesmock.NewMockEffectiveRateQueries(s.mockCtrl)
	handler := api.NewRoomTypeHandler(s.mockCommands, s.mockQueries, s.mockAdjustments, s.mockRates)

	s.router.POST("/room-types", handler.Create)
	s.router.GET("/room-types/:room_type_id", handler.Get)
	s.router.PUT("/room-types/:room_type_id", handler.Update)
	s.router.DELETE("/room-types/:room_type_id", handler.Delete)
	s.router.GET("/room-types/:room_type_id/rate-adjustments", handler.ListRateAdjustments)
	s.router.GET("/room-types/:room_type_id/effective-rate", handler.EffectiveRate)
}

func (s *RoomTypeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomTypeHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomTypeHandlerTestSuite))
}

func (s *RoomTypeHandlerTestSuite) TestCreate() {
	b := builder.NewRoomTypeBuilder().WithID(4).WithHotelID(1)
	reqBody := b.BuildCreateDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 200 with the created record", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateRoomTypeInput{
			HotelID:  1,
			Name:     b.Name,
			BaseRate: b.BaseRate,
		}).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/room-types", reqBody, "")

		var response resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(*resdto.FromRoomType(created), response)
	})

	s.Run("error: 422 on invalid base rate", func() {
		cases := map[string]func(map[string]any){
			"zero":     testutil.Field("base_rate", 0),
			"negative": testutil.Field("base_rate", -1.5),
			"missing":  testutil.Field("base_rate", nil),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				body := testutil.DtoMap(s.T(), reqBody, mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/room-types", body, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
			})
		}
	})

	s.Run("error: 404 when hotel is absent", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/room-types", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})
}

func (s *RoomTypeHandlerTestSuite) TestUpdate() {
	s.Run("success: forwards only supplied fields", func() {
		updated, err := builder.NewRoomTypeBuilder().WithID(4).WithBaseRate(250).BuildDomain()
		s.Require().NoError(err)
		rate := 250.0
		s.mockCommands.EXPECT().
			Update(gomock.Any(), int64(4), commands.UpdateRoomTypeInput{BaseRate: &rate}).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/room-types/4", map[string]any{"base_rate": 250}, "")

		var response resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(250.0, response.BaseRate, 1e-9)
	})
}

func (s *RoomTypeHandlerTestSuite) TestDelete() {
	s.Run("error: 404 when absent", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil, errs.ErrRoomTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/room-types/9", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room Type not found")
	})
}

func (s *RoomTypeHandlerTestSuite) TestListRateAdjustments() {
	s.Run("success: returns adjustments newest first", func() {
		views := []*queries.RateAdjustmentView{
			builder.NewRateAdjustmentBuilder().WithID(2).WithRoomTypeID(4).BuildView(),
			builder.NewRateAdjustmentBuilder().WithID(1).WithRoomTypeID(4).BuildView(),
		}
		s.mockAdjustments.EXPECT().ListByRoomType(gomock.Any(), int64(4)).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/4/rate-adjustments", nil, "")

		var response []resdto.RateAdjustmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(int64(2), response[0].ID)
	})
}

func (s *RoomTypeHandlerTestSuite) TestEffectiveRate() {
	on := dateonly.New(2024, time.June, 15)
	view := &queries.EffectiveRateView{
		RoomTypeID:        4,
		BaseRate:          200,
		EffectiveRate:     250,
		AdjustmentApplied: 50,
		EffectiveDate:     on,
	}

	s.Run("success: parses date_str", func() {
		s.mockRates.EXPECT().Calculate(gomock.Any(), int64(4), &on).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/4/effective-rate?date_str=2024-06-15", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{
			"room_type_id": 4,
			"base_rate": 200,
			"effective_rate": 250,
			"adjustment_applied": 50,
			"effective_date": "2024-06-15"
		}`, rec.Body.String())
	})

	s.Run("success: omitted date defers to today", func() {
		s.mockRates.EXPECT().Calculate(gomock.Any(), int64(4), gomock.Nil()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/4/effective-rate", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 on malformed date", func() {
		for _, bad := range []string{"15-06-2024", "2024-13-01", "2024-02-30", "today"} {
			s.Run(bad, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/4/effective-rate?date_str="+bad, nil, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid date format. Use YYYY-MM-DD")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown room type", err: errs.ErrRoomTypeNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Room Type not found"},
			{name: "store failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRates.EXPECT().Calculate(gomock.Any(), int64(4), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/4/effective-rate", nil, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
