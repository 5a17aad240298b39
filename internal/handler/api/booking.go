package api

import (
	"net/http"

	reqdto "elite-drive/internal/handler/dto/request"
	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/internal/usecase/commands"
	"elite-drive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	testDriveCommands commands.TestDriveCommands
	bookingQueries    queries.BookingQueries
}

func NewBookingHandler(testDriveCommands commands.TestDriveCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		testDriveCommands: testDriveCommands,
		bookingQueries:    bookingQueries,
	}
}

// @Summary Book a test drive
// @Description Claim an open slot and record a confirmed test drive
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookTestDriveRequest true "Booking request"
// @Success 201 {object} resdto.BookTestDriveResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /book-test-drive [post]
func (h *BookingHandler) BookTestDrive(c *gin.Context) {
	var req reqdto.BookTestDriveRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.testDriveCommands.BookTestDrive(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookTestDriveResult(result))
}

// @Summary List bookings
// @Description Every booking with car, customer and slot details
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(bookings))
}
