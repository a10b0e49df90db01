// File: handlers/admin.go
package handlers

import (
	"net/http"

	"ecoskip/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	BookingService booking.BookingService
}

func NewAdminHandler(bs booking.BookingService) *AdminHandler {
	return &AdminHandler{BookingService: bs}
}

// GetAllBookingsHandler returns every customer's bookings, newest first.
func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.BookingService.ListAllBookings(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch all bookings", zap.Error(err))
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
