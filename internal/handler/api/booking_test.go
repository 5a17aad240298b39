//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"elite-drive/internal/handler/api"
	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/internal/pkg/errs"
	"elite-drive/internal/usecase/commands"
	"elite-drive/internal/usecase/queries"
	"elite-drive/tests/common/builder"
	"elite-drive/tests/common/httptest"
	"elite-drive/tests/common/testutil"
	commandsmock "elite-drive/tests/mock/commands"
	queriesmock "elite-drive/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTestDriveCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTestDriveCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/book-test-drive", s.handler.BookTestDrive)
	s.router.GET("/bookings", s.handler.ListAll)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestBookTestDrive
// ================================================================================

func (s *BookingHandlerTestSuite) TestBookTestDrive() {
	url := "/book-test-drive"
	req := builder.NewTestDriveBuilder().BuildRequest()

	s.Run("success: returns 201 with the booking id", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().BookTestDrive(gomock.Any(), req).
			Return(&commands.BookTestDriveResult{BookingID: bookingID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, req)

		var body resdto.BookTestDriveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.BookTestDriveResponse{Message: "Booking confirmed", BookingID: bookingID.String()}, body)
	})

	s.Run("success: unknown fields are ignored", func() {
		s.mockCommands.EXPECT().BookTestDrive(gomock.Any(), req).
			Return(&commands.BookTestDriveResult{BookingID: uuid.New()}, nil).Times(1)

		body := testutil.DtoMap(s.T(), req, testutil.Field("notes", "window seat"))
		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
		s.Equal(http.StatusCreated, rec.Code)
	})

	missing := []testCaseBooking{
		{name: "missing field: customer_id", mutate: testutil.Omit("customer_id"), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "missing field: car_id", mutate: testutil.Omit("car_id"), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "missing field: slot_id", mutate: testutil.Omit("slot_id"), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "empty field: slot_id", mutate: testutil.Field("slot_id", ""), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "wrong type: car_id", mutate: testutil.Field("car_id", 42), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
	}

	for _, tc := range missing {
		s.Run("error: "+tc.name, func() {
			// The use case must not be reached.
			body := testutil.DtoMap(s.T(), req, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, "POST", url, `{"customer_id":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	useCaseErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"malformed identifier", errs.Mark(errors.New("bad id"), errs.ErrInvalidIdentifier), http.StatusBadRequest, "Invalid identifier"},
		{"missing field", errs.Mark(errors.New("empty"), errs.ErrMissingField), http.StatusBadRequest, "Missing required fields"},
		{"slot taken", errs.Mark(errors.New("no rows"), errs.ErrSlotNotAvailable), http.StatusConflict, "Slot not available"},
		{"database failure", errs.Mark(errors.New("conn reset"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		{"unclassified failure", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range useCaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().BookTestDrive(gomock.Any(), req).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, "POST", url, req)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestListAll
// ================================================================================

func (s *BookingHandlerTestSuite) TestListAll() {
	s.Run("success: renders every detail key", func() {
		car := builder.NewCarBuilder().BuildView()
		cust := builder.NewCustomerBuilder().BuildView()
		slot := builder.NewSlotBuilder().ForCar(car.ID).AsTaken().BuildView()
		td := builder.NewTestDriveBuilder().ForCar(car.ID).ForCustomer(cust.ID).With(func(b *builder.TestDriveBuilder) {
			b.SlotID = &slot.ID
		}).BuildView()

		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return([]*queries.TestDriveDetail{
			{TestDriveView: *td, Car: car, Customer: cust, Slot: slot},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/bookings", nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)

		slotID := slot.ID.String()
		want := map[string]any{
			"_id":         td.ID.String(),
			"customer_id": cust.ID.String(),
			"car_id":      car.ID.String(),
			"slot_id":     slotID,
			"status":      "confirmed",
			"booked_at":   td.BookedAt.Format(time.RFC3339),
		}
		got := map[string]any{}
		for k := range want {
			got[k] = body[0][k]
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.Failf("booking mismatch", "(-want +got):\n%s", diff)
		}
		s.Equal(car.ID.String(), body[0]["car_details"].(map[string]any)["_id"])
		s.Equal(cust.ID.String(), body[0]["customer_details"].(map[string]any)["_id"])
		s.Equal(slotID, body[0]["slot_details"].(map[string]any)["_id"])
	})

	s.Run("success: empty store returns an empty array", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return([]*queries.TestDriveDetail{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/bookings", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: store failure is a 500", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/bookings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
