package handlers

import (
	"errors"
	"net/http"

	"ecoskip/middleware"
	"ecoskip/models"
	"ecoskip/services/booking"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(s booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: s}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), middleware.CurrentUserID(c), input)
	if errors.Is(err, booking.ErrInvalidBooking) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": b})
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if errors.Is(err, booking.ErrBookingNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
