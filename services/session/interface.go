package session

import (
	"context"

	"ecoskip/models"
	"ecoskip/services/catalog"
	"ecoskip/services/wizard"
)

// BookingSessionService is the HTTP-facing surface of the booking wizard.
type BookingSessionService interface {
	Create(ctx context.Context) (*View, error)
	Get(ctx context.Context, id string) (*View, error)
	SetAddress(ctx context.Context, id string, a models.Address) (*View, error)
	ToggleWasteType(ctx context.Context, id, wasteType string) (*View, error)
	SelectSkip(ctx context.Context, id string, skipID int) (*View, error)
	SkipOptions(ctx context.Context, id string, f catalog.Filter) ([]catalog.SkipView, error)
	SetPlacement(ctx context.Context, id string, p models.Placement) (*View, error)
	SelectDeliveryDate(ctx context.Context, id, date string) (*View, error)
	RemoveCharge(ctx context.Context, id string, c wizard.Charge) (*View, error)
	Continue(ctx context.Context, id string) (*View, error)
	Back(ctx context.Context, id string) (*View, error)
	Reset(ctx context.Context, id string) (*View, error)
	Calendar(ctx context.Context, id, month string) (*wizard.CalendarView, error)
	Submit(ctx context.Context, id, userID string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) error
}

var _ BookingSessionService = (*Service)(nil)
