package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecoskip/events"
	"ecoskip/models"
	"ecoskip/services/wizard"
	"ecoskip/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingIDPrefix starts every booking reference.
const BookingIDPrefix = "SK-"

func newBookingID() string {
	return BookingIDPrefix + uuid.New().String()
}

// CreateBooking validates the input, prices it from the catalog and stores it as a
// pending booking owned by userID. The client's skip price, total, permit flag and
// collection date are never trusted; a client may only drop a charge, not set its amount.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	skip, err := s.Skips.FindSelectable(input.SelectedSkip.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	wasteTypes, err := s.wasteTypes(input.WasteTypes)
	if err != nil {
		return nil, err
	}

	// The client sends its own local midnight; keep that calendar day rather than
	// converting the instant into the server's zone.
	now := s.now().In(s.location())
	permit := input.Placement == models.PlacementPublic
	y, m, d := input.DeliveryDate.Date()
	delivery := time.Date(y, m, d, 0, 0, 0, 0, s.location())
	if !wizard.IsSelectable(delivery, now, permit) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBooking, wizard.ErrDateTooEarly)
	}
	collection := wizard.CollectionDate(delivery, &skip)

	charges := s.charges(permit, input.AdditionalCharges)
	snapshot := skip.Snapshot()

	b := &models.Booking{
		BookingID:         newBookingID(),
		UserID:            userID,
		Address:           input.Address,
		WasteTypes:        wasteTypes,
		SelectedSkip:      &snapshot,
		Placement:         input.Placement,
		DeliveryDate:      &delivery,
		CollectionDate:    &collection,
		PermitRequired:    permit,
		AdditionalCharges: charges,
		TotalAmount:       s.Pricer.QuoteSnapshot(&snapshot, charges).Total,
		Status:            models.BookingPending,
		PaymentStatus:     models.PaymentPending,
		CreatedAt:         now.UTC(),
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	utils.GetLogger().Info("Booking created",
		zap.String("bookingId", b.BookingID),
		zap.String("userId", userID),
		zap.Int("skipId", snapshot.ID),
		zap.Stringer("total", b.TotalAmount),
	)

	// The booking is already durable; a failed publish is logged and not surfaced.
	if err := s.Events.Publish(ctx, s.Topic, b.BookingID, events.NewBookingCreated(b)); err != nil {
		utils.GetLogger().Warn("failed to publish booking event", zap.String("bookingId", b.BookingID), zap.Error(err))
	}
	return b, nil
}

// wasteTypes drops repeated ids and rejects ids the catalog does not know.
func (s *DefaultBookingService) wasteTypes(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !s.Skips.IsWasteType(id) {
			return nil, fmt.Errorf("%w: unknown waste type %q", ErrInvalidBooking, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

func (s *DefaultBookingService) charges(permit bool, requested models.AdditionalCharges) models.AdditionalCharges {
	var out models.AdditionalCharges
	if permit && requested.PermitFee > 0 {
		out.PermitFee = s.Fees.PermitFee
	}
	if requested.TonneBag > 0 {
		out.TonneBag = s.Fees.TonneBag
	}
	return out
}

func validateInput(in models.BookingInput) error {
	var problems []error
	if !in.Address.Complete() {
		problems = append(problems, errors.New("address is incomplete"))
	}
	if len(in.WasteTypes) == 0 {
		problems = append(problems, errors.New("at least one waste type is required"))
	}
	if in.SelectedSkip == nil {
		problems = append(problems, errors.New("selectedSkip is required"))
	}
	if !in.Placement.Valid() {
		problems = append(problems, errors.New("placement must be private or public"))
	}
	if in.DeliveryDate == nil {
		problems = append(problems, errors.New("deliveryDate is required"))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBooking, errors.Join(problems...))
	}
	return nil
}
