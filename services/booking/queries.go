package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "ecoskip/database/repository/booking"
	"ecoskip/models"
)

// ListBookings returns the user's bookings, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetBooking returns one booking. Bookings owned by another user read as not found.
func (s *DefaultBookingService) GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByIDForUser(ctx, bookingID, userID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return b, nil
}

// ListAllBookings is the admin listing across every customer.
func (s *DefaultBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
