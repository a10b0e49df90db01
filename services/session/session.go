// Package session keeps booking wizard state in Redis between HTTP requests.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ecoskip/models"
	"ecoskip/services/booking"
	"ecoskip/services/catalog"
	"ecoskip/services/pricing"
	"ecoskip/services/wizard"
	"ecoskip/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrSessionNotFound = errors.New("booking session not found or expired")
	ErrNotAtPayment    = errors.New("booking session is not at the payment step")
	ErrInvalidDate     = errors.New("invalid date")
)

// SkipCatalog is the part of the catalog the wizard consults.
type SkipCatalog interface {
	Available(f catalog.Filter) []models.SkipOffering
	FindSelectable(id int) (models.SkipOffering, error)
	IsWasteType(id string) bool
}

// Service drives wizard.State values stored under SessionKeyPrefix+id. Every read
// slides the TTL forward.
type Service struct {
	Cache    *redis.Client
	TTL      time.Duration
	Skips    SkipCatalog
	Pricer   *pricing.Calculator
	Fees     wizard.Fees
	Bookings booking.BookingService
	Loc      *time.Location
	NowFunc  func() time.Time
}

// View is a session as returned to the client, with derived fields filled in.
type View struct {
	SessionID       string                   `json:"sessionId"`
	Step            wizard.Step              `json:"step"`
	Data            models.BookingData       `json:"data"`
	RemovedCharges  wizard.RemovedCharges    `json:"removedCharges"`
	PermitRequired  bool                     `json:"permitRequired"`
	MinDeliveryDate string                   `json:"minDeliveryDate"`
	Charges         models.AdditionalCharges `json:"additionalCharges"`
	Quote           pricing.Breakdown        `json:"quote"`
	CanContinue     bool                     `json:"canContinue"`
}

func key(id string) string {
	return utils.SessionKeyPrefix + id
}

func (s *Service) today() time.Time {
	now := time.Now
	if s.NowFunc != nil {
		now = s.NowFunc
	}
	loc := s.Loc
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

func (s *Service) view(id string, st *wizard.State) *View {
	today := s.today()
	return &View{
		SessionID:       id,
		Step:            st.Step,
		Data:            st.Data,
		RemovedCharges:  st.Removed,
		PermitRequired:  st.PermitRequired(),
		MinDeliveryDate: wizard.MinDeliveryDate(today, st.PermitRequired()).Format("2006-01-02"),
		Charges:         st.Charges(s.Fees),
		Quote:           st.Quote(s.Pricer, s.Fees),
		CanContinue:     st.CanContinue(today),
	}
}

func (s *Service) save(ctx context.Context, id string, st *wizard.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, key(id), string(data), s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*wizard.State, error) {
	raw, err := s.Cache.GetEx(ctx, key(id), s.TTL).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var st wizard.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &st, nil
}

// update loads the session, applies fn and writes it back. Nothing is written when fn fails.
func (s *Service) update(ctx context.Context, id string, fn func(st *wizard.State, today time.Time) error) (*View, error) {
	st, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(st, s.today()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, id, st); err != nil {
		return nil, err
	}
	return s.view(id, st), nil
}

// Create starts a new wizard at the first step.
func (s *Service) Create(ctx context.Context) (*View, error) {
	id := uuid.New().String()
	st := wizard.New()
	if err := s.save(ctx, id, st); err != nil {
		return nil, err
	}
	return s.view(id, st), nil
}

func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	st, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(id, st), nil
}

// Cancel discards the session.
func (s *Service) Cancel(ctx context.Context, id string) error {
	n, err := s.Cache.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
