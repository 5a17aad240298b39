//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"elite-drive/internal/handler/api"
	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/internal/pkg/errs"
	"elite-drive/internal/usecase/queries"
	"elite-drive/tests/common/builder"
	"elite-drive/tests/common/httptest"
	queriesmock "elite-drive/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogueHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCars      *queriesmock.MockCarQueries
	mockSchedules *queriesmock.MockScheduleQueries
	mockCustomers *queriesmock.MockCustomerQueries
	mockServices  *queriesmock.MockServiceQueries
}

func (s *CatalogueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCars = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.mockSchedules = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.mockCustomers = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.mockServices = queriesmock.NewMockServiceQueries(s.mockCtrl)

	cars := api.NewCarHandler(s.mockCars)
	schedules := api.NewScheduleHandler(s.mockSchedules)
	customers := api.NewCustomerHandler(s.mockCustomers)
	services := api.NewServiceHandler(s.mockServices)

	s.router.GET("/cars", cars.List)
	s.router.GET("/cars/brand/:brand", cars.ListByBrand)
	s.router.GET("/cars/availability", cars.ListWithAvailability)
	s.router.GET("/schedules/car/:carId", schedules.ListAvailableForCar)
	s.router.GET("/customers", customers.List)
	s.router.GET("/customers/:id/history", customers.History)
	s.router.GET("/services/due", services.ListDue)
}

func (s *CatalogueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogueHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogueHandlerTestSuite))
}

// ================================================================================
// Cars
// ================================================================================

func (s *CatalogueHandlerTestSuite) TestCars() {
	view := builder.NewCarBuilder().BuildView()

	s.Run("success: list renders the store id as _id", func() {
		s.mockCars.EXPECT().List(gomock.Any()).Return([]*queries.CarView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/cars", nil)

		var body []resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := []resdto.CarResponse{{
			ID:       view.ID.String(),
			Brand:    "Ferrari",
			Model:    "SF90 Stradale",
			Year:     2024,
			Price:    625000,
			Specs:    map[string]any{"hp": float64(986), "engine": "V8 Hybrid"},
			Category: "Supercar",
		}}
		if diff := cmp.Diff(want, body); diff != "" {
			s.Failf("cars mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("success: brand path parameter is passed through", func() {
		s.mockCars.EXPECT().ListByBrand(gomock.Any(), "ferrari").Return([]*queries.CarView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/cars/brand/ferrari", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: unknown brand is an empty array", func() {
		s.mockCars.EXPECT().ListByBrand(gomock.Any(), "Trabant").Return([]*queries.CarView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/cars/brand/Trabant", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: unusable brand is a 400", func() {
		s.mockCars.EXPECT().ListByBrand(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("bad pattern"), errs.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/cars/brand/x", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid input")
	})

	s.Run("error: availability store failure is a 500", func() {
		s.mockCars.EXPECT().ListWithAvailability(gomock.Any()).Return(nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/cars/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// Schedules
// ================================================================================

func (s *CatalogueHandlerTestSuite) TestSchedules() {
	s.Run("success: open slots of the car", func() {
		slot := builder.NewSlotBuilder().BuildView()
		s.mockSchedules.EXPECT().ListAvailableForCar(gomock.Any(), slot.CarID.String()).
			Return([]*queries.SlotView{slot}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/schedules/car/"+slot.CarID.String(), nil)

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(slot.ID.String(), body[0].ID)
		s.True(body[0].IsAvailable)
	})

	s.Run("error: malformed car id is a 400", func() {
		s.mockSchedules.EXPECT().ListAvailableForCar(gomock.Any(), "abc").
			Return(nil, errs.Mark(errors.New("malformed"), errs.ErrInvalidIdentifier))

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/schedules/car/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid identifier")
	})
}

// ================================================================================
// Customers
// ================================================================================

func (s *CatalogueHandlerTestSuite) TestCustomerHistory() {
	customerID := uuid.New()
	url := "/customers/" + customerID.String() + "/history"

	s.Run("success: slot_details is null for a vanished slot and absent without a slot", func() {
		car := builder.NewCarBuilder().BuildView()
		withMissingSlot := builder.NewTestDriveBuilder().ForCustomer(customerID).ForCar(car.ID).BuildView()
		withoutSlot := builder.NewTestDriveBuilder().ForCustomer(customerID).WithoutSlot().BuildView()

		s.mockCustomers.EXPECT().History(gomock.Any(), customerID.String()).Return([]*queries.TestDriveDetail{
			{TestDriveView: *withMissingSlot, Car: car},
			{TestDriveView: *withoutSlot},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)

		s.Contains(body[0], "slot_details")
		s.Nil(body[0]["slot_details"])
		s.NotNil(body[0]["car_details"])
		s.NotContains(body[0], "customer_details")

		s.NotContains(body[1], "slot_id")
		s.NotContains(body[1], "slot_details")
		s.Contains(body[1], "car_details")
		s.Nil(body[1]["car_details"])
	})

	s.Run("success: no bookings is an empty array", func() {
		s.mockCustomers.EXPECT().History(gomock.Any(), customerID.String()).Return([]*queries.TestDriveDetail{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: malformed id is a 400", func() {
		s.mockCustomers.EXPECT().History(gomock.Any(), "nope").
			Return(nil, errs.Mark(errors.New("malformed"), errs.ErrInvalidIdentifier))

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/customers/nope/history", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid identifier")
	})

	s.Run("success: customers list", func() {
		cust := builder.NewCustomerBuilder().BuildView()
		s.mockCustomers.EXPECT().List(gomock.Any()).Return([]*queries.CustomerView{cust}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/customers", nil)

		var body []resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(cust.ID.String(), body[0].ID)
	})
}

// ================================================================================
// Services
// ================================================================================

func (s *CatalogueHandlerTestSuite) TestServicesDue() {
	s.Run("success: alerts carry car details", func() {
		car := builder.NewCarBuilder().BuildView()
		alert := &queries.ServiceAlert{
			ServiceRecordView: queries.ServiceRecordView{ID: uuid.New(), CarID: car.ID, Description: "Routine Maintenance", Cost: 2500, NextServiceDue: true},
			Car:               car,
		}
		s.mockServices.EXPECT().ListDueAlerts(gomock.Any()).Return([]*queries.ServiceAlert{alert}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/services/due", nil)

		var body []resdto.ServiceAlertResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.True(body[0].NextServiceDue)
		s.Require().NotNil(body[0].CarDetails)
		s.Equal(car.ID.String(), body[0].CarDetails.ID)
	})
}
