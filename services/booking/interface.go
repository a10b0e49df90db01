package booking

import (
	"context"
	"time"

	bookingRepo "ecoskip/database/repository/booking"
	"ecoskip/events"
	"ecoskip/models"
	"ecoskip/services/pricing"
	"ecoskip/services/wizard"
)

// BookingService creates and reads persisted bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
}

// SkipFinder resolves a catalog offering that may still be booked and checks waste
// type ids against the same catalog.
type SkipFinder interface {
	FindSelectable(id int) (models.SkipOffering, error)
	IsWasteType(id string) bool
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Skips   SkipFinder
	Pricer  *pricing.Calculator
	Fees    wizard.Fees
	Events  events.Publisher
	Topic   string
	Loc     *time.Location
	NowFunc func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now()
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Loc == nil {
		return time.UTC
	}
	return s.Loc
}
