package session

import (
	"context"

	"ecoskip/models"
	"ecoskip/services/wizard"
	"ecoskip/utils"

	"go.uber.org/zap"
)

// Submit turns a session at the payment step into a booking owned by userID and
// discards the session.
func (s *Service) Submit(ctx context.Context, id, userID string) (*models.Booking, error) {
	st, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Step != wizard.StepPayment {
		return nil, ErrNotAtPayment
	}

	input := models.BookingInput{
		Address:           st.Data.Address,
		WasteTypes:        st.Data.WasteTypes,
		Placement:         st.Data.Placement,
		DeliveryDate:      st.Data.DeliveryDate,
		AdditionalCharges: st.Charges(s.Fees),
	}
	if st.Data.SelectedSkip != nil {
		snap := st.Data.SelectedSkip.Snapshot()
		input.SelectedSkip = &snap
	}

	b, err := s.Bookings.CreateBooking(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Del(ctx, key(id)).Err(); err != nil {
		utils.GetLogger().Warn("failed to delete submitted booking session",
			zap.String("sessionId", id), zap.String("bookingId", b.BookingID), zap.Error(err))
	}
	return b, nil
}
