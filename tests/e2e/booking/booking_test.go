//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "elite-drive/internal/handler/dto/request"
	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/tests/common/dbtest"
	"elite-drive/tests/common/httptest"
	"elite-drive/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookURL     = "/book-test-drive"
	bookingsURL = "/bookings"
	historyURL  = "/customers/%s/history"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	customerID uuid.UUID
	carID      uuid.UUID
	slotID     uuid.UUID
}

func (s *BookingSuite) newFixture() fixture {
	t := s.T()
	carID := dbtest.CreateTestCar(t, s.DB, "Ferrari", "SF90 Stradale")
	return fixture{
		customerID: dbtest.CreateTestCustomer(t, s.DB, "Alex Chen"),
		carID:      carID,
		slotID:     dbtest.CreateTestSlot(t, s.DB, carID, time.Now().Add(24*time.Hour).Truncate(time.Hour), true),
	}
}

func (f fixture) request() reqdto.BookTestDriveRequest {
	return reqdto.BookTestDriveRequest{
		CustomerID: f.customerID.String(),
		CarID:      f.carID.String(),
		SlotID:     f.slotID.String(),
	}
}

// =============================================================================
// TestBookTestDrive
// =============================================================================

func (s *BookingSuite) TestBookTestDrive() {
	s.Run("Normal case: first booking wins, second gets 409", func() {
		t := s.T()
		f := s.newFixture()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, f.request())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.BookTestDriveResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "Booking confirmed", created.Message)
		_, err := uuid.Parse(created.BookingID)
		require.NoError(t, err)

		require.False(t, dbtest.IsSlotAvailable(t, s.DB, f.slotID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, f.request())
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot not available")
		require.Equal(t, 1, dbtest.CountTestDrives(t, s.DB))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/schedules/car/"+f.carID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	s.Run("Normal case: concurrent requests for one slot produce exactly one booking", func() {
		t := s.T()
		f := s.newFixture()

		const workers = 10
		reqs := make([]reqdto.BookTestDriveRequest, workers)
		for i := range reqs {
			reqs[i] = f.request()
			reqs[i].CustomerID = dbtest.CreateTestCustomer(t, s.DB, fmt.Sprintf("Racer %d", i)).String()
		}

		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, reqs[i]).Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, workers-1, conflicts)
		require.Equal(t, 1, dbtest.CountTestDrives(t, s.DB))
	})

	s.Run("Error case: slot of another car is not claimed", func() {
		t := s.T()
		f := s.newFixture()
		req := f.request()
		req.CarID = dbtest.CreateTestCar(t, s.DB, "Porsche", "911 GT3 RS").String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot not available")
		require.True(t, dbtest.IsSlotAvailable(t, s.DB, f.slotID))
	})

	s.Run("Error case: unknown slot is a 409", func() {
		t := s.T()
		f := s.newFixture()
		req := f.request()
		req.SlotID = uuid.NewString()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot not available")
	})

	s.Run("Error case: missing field is a 400 and changes nothing", func() {
		t := s.T()
		f := s.newFixture()
		body := map[string]string{"customer_id": f.customerID.String(), "car_id": f.carID.String()}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, body)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing required fields")
		require.True(t, dbtest.IsSlotAvailable(t, s.DB, f.slotID))
		require.Zero(t, dbtest.CountTestDrives(t, s.DB))
	})

	s.Run("Error case: malformed identifier is a 400 and changes nothing", func() {
		t := s.T()
		f := s.newFixture()
		req := f.request()
		req.CustomerID = "not-a-valid-id"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid identifier")
		require.True(t, dbtest.IsSlotAvailable(t, s.DB, f.slotID))
	})
}

// =============================================================================
// TestHistoryAndBookings
// =============================================================================

func (s *BookingSuite) TestHistoryAndBookings() {
	s.Run("Normal case: booking shows up with its details", func() {
		t := s.T()
		f := s.newFixture()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, f.request())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, f.customerID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var history []resdto.TestDriveResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.Len(t, history, 1)
		require.Equal(t, "confirmed", history[0].Status)
		require.NotNil(t, history[0].CarDetails)
		require.Equal(t, f.carID.String(), history[0].CarDetails.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var all []map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))
		require.Len(t, all, 1)
		require.Equal(t, f.customerID.String(), all[0]["customer_details"].(map[string]any)["_id"])
		slot := all[0]["slot_details"].(map[string]any)
		require.Equal(t, false, slot["is_available"])
	})

	s.Run("Normal case: unknown customer has an empty history", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, uuid.New()), nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	s.Run("Error case: malformed customer id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, "12345"), nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid identifier")
	})
}
