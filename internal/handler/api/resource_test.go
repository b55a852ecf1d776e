//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"resbook/internal/domain/resource"
	"resbook/internal/handler/api"
	reqdto "resbook/internal/handler/dto/request"
	resdto "resbook/internal/handler/dto/response"
	"resbook/internal/infra/locks"
	"resbook/internal/infra/memstore"
	"resbook/internal/pkg/clock"
	"resbook/internal/pkg/ident"
	"resbook/internal/usecase/commands"
	"resbook/internal/usecase/queries"
	"resbook/tests/common/httptest"
	commandsmock "resbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	reservations commands.ReservationCommands
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	mockNotifier := commandsmock.NewMockNotifier(s.mockCtrl)
	mockNotifier.EXPECT().NotifyAllocated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockNotifier.EXPECT().NotifyReleased(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	catalog := memstore.NewCatalog()
	store := memstore.NewReservationStore()
	registry := locks.NewRegistry()
	gen := ident.NewUUIDGenerator()
	clk := clock.NewFrozen(handlerT0)

	resourceCommands := commands.NewResourceCommands(catalog, registry, gen)
	s.reservations = commands.NewReservationCommands(catalog, store, registry, mockNotifier, gen, clk, commands.NewDefaultStrategies())

	handler := api.NewResourceHandler(
		resourceCommands,
		queries.NewResourceQueries(catalog, store),
		queries.NewReservationQueries(store, catalog),
	)
	s.router.POST("/resources", handler.Create)
	s.router.GET("/resources/available", handler.FindAvailable)
	s.router.GET("/resources/:id/reservations", handler.ListReservations)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func (s *ResourceHandlerTestSuite) createResource(body map[string]any) uuid.UUID {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", body)
	var response resdto.CreateResourceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return response.ID
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ResourceHandlerTestSuite) TestCreate() {
	s.Run("success: interval resource", func() {
		id := s.createResource(map[string]any{"name": "Board Room", "kind": "interval", "capacity": 8})
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("success: exclusive resource", func() {
		id := s.createResource(map[string]any{"name": "L1-S01", "kind": "exclusive", "spot_type": "compact"})
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing name", body: map[string]any{"kind": "interval", "capacity": 8}},
			{name: "missing kind", body: map[string]any{"name": "Room"}},
			{name: "unknown kind", body: map[string]any{"name": "Room", "kind": "virtual"}},
			{name: "unknown spot type", body: map[string]any{"name": "Spot", "kind": "exclusive", "spot_type": "helipad"}},
			{name: "negative capacity", body: map[string]any{"name": "Room", "kind": "interval", "capacity": -1}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", tc.body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when interval resource lacks capacity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", map[string]any{"name": "Room", "kind": "interval"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource definition")
	})
}

// ================================================================================
// TestFindAvailable
// ================================================================================

func (s *ResourceHandlerTestSuite) TestFindAvailable() {
	roomID := s.createResource(map[string]any{"name": "Board Room", "kind": "interval", "capacity": 8})
	s.createResource(map[string]any{"name": "Huddle", "kind": "interval", "capacity": 2})
	spotID := s.createResource(map[string]any{"name": "L1-S01", "kind": "exclusive", "spot_type": "large"})

	start := handlerT0.Format(time.RFC3339)
	end := handlerT0.Add(time.Hour).Format(time.RFC3339)

	s.Run("success: capacity filter", func() {
		url := "/resources/available?min_capacity=4&start=" + start + "&end=" + end
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(roomID, response[0].ID)
	})

	s.Run("success: vehicle filter", func() {
		url := "/resources/available?vehicle=truck&start=" + start
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(spotID, response[0].ID)
	})

	s.Run("success: an occupied spot disappears and returns on leave", func() {
		parked, err := s.reservations.Allocate(context.Background(), commands.AllocateParams{
			Occupant: "TRK-1",
			Vehicle:  resource.VehicleTruck,
			Start:    handlerT0,
		})
		s.Require().NoError(err)

		url := "/resources/available?vehicle=truck&start=" + start
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		var response []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)

		released, err := s.reservations.Release(context.Background(), parked.ID())
		s.Require().NoError(err)
		s.Require().True(released)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
	})

	s.Run("error: 400 when start is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/available?min_capacity=4", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 on capacity query without end", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/available?min_capacity=4&start="+start, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid availability window")
	})

	s.Run("error: 400 on unknown vehicle type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/available?vehicle=submarine&start="+start, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ResourceHandlerTestSuite) TestListReservations() {
	roomID := s.createResource(map[string]any{"name": "Board Room", "kind": "interval", "capacity": 8})

	end := handlerT0.Add(time.Hour)
	_, err := s.reservations.Allocate(context.Background(), commands.AllocateParams{
		Occupant:    "alice",
		MinCapacity: 8,
		Start:       handlerT0,
		End:         &end,
	})
	s.Require().NoError(err)

	day := handlerT0.Format("2006-01-02")
	url := "/resources/" + roomID.String() + "/reservations?day=" + day

	s.Run("success: returns the day's reservations", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("alice", response[0].Occupant)
	})

	s.Run("success: empty for a different day", func() {
		otherDay := handlerT0.Add(48 * time.Hour).Format("2006-01-02")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+roomID.String()+"/reservations?day="+otherDay, nil)

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/invalid-uuid/reservations?day="+day, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID")
	})

	s.Run("error: 400 Bad Request for a malformed day", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+roomID.String()+"/reservations?day=yesterday", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+uuid.NewString()+"/reservations?day="+day, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}
