package bookingRepo

import (
	"context"
	"errors"

	"ecoskip/models"
)

var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	// ListByUser returns the user's bookings, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// GetByIDForUser returns the booking only when userID owns it.
	GetByIDForUser(ctx context.Context, bookingID, userID string) (*models.Booking, error)
	// ListAll returns every booking, newest first.
	ListAll(ctx context.Context) ([]models.Booking, error)
}
