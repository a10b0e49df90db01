// Package wizard holds the booking wizard's step machine. A State is owned by exactly
// one booking session; operations mutate it in place and never panic on partial data.
package wizard

import (
	"errors"
	"time"

	"ecoskip/models"
	"ecoskip/services/pricing"
)

type Step string

const (
	StepPostcode      Step = "postcode"
	StepWasteType     Step = "waste-type"
	StepSkipSize      Step = "skip-size"
	StepPermit        Step = "permit"
	StepDateSelection Step = "date-selection"
	StepPayment       Step = "payment"
)

// Steps is the linear happy path.
var Steps = []Step{StepPostcode, StepWasteType, StepSkipSize, StepPermit, StepDateSelection, StepPayment}

func (s Step) index() int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	return -1
}

type Charge string

const (
	ChargePermit   Charge = "permit"
	ChargeTonneBag Charge = "tonne-bag"
)

var (
	ErrStepIncomplete   = errors.New("current step is incomplete")
	ErrLastStep         = errors.New("already at the final step")
	ErrDateTooEarly     = errors.New("delivery date is before the earliest available date")
	ErrSkipForbidden    = errors.New("skip is forbidden for this area")
	ErrUnknownPlacement = errors.New("placement must be private or public")
	ErrUnknownCharge    = errors.New("unknown charge")
	ErrInvalidWasteType = errors.New("waste type is required")
)

// Fees are the configured flat charges.
type Fees struct {
	PermitFee models.Money
	TonneBag  models.Money
}

// RemovedCharges records charges the customer has struck off. Removal is one-way.
type RemovedCharges struct {
	Permit   bool `json:"permit"`
	TonneBag bool `json:"tonneBag"`
}

// State is the whole wizard: the data collected so far plus the step cursor.
type State struct {
	Step          Step               `json:"step"`
	Data          models.BookingData `json:"data"`
	Removed       RemovedCharges     `json:"removedCharges"`
	CalendarMonth string             `json:"calendarMonth,omitempty"`
}

// New returns a state at the first step with default values.
func New() *State {
	return &State{
		Step: StepPostcode,
		Data: models.BookingData{
			WasteTypes: []string{},
			Placement:  models.PlacementPrivate,
		},
	}
}

// Reset returns the state to its initial values.
func (s *State) Reset() {
	*s = *New()
}

func (s *State) SetAddress(a models.Address) {
	s.Data.Address = a
}

// ToggleWasteType selects id if absent and deselects it if present.
func (s *State) ToggleWasteType(id string) error {
	if id == "" {
		return ErrInvalidWasteType
	}
	for i, w := range s.Data.WasteTypes {
		if w == id {
			s.Data.WasteTypes = append(s.Data.WasteTypes[:i:i], s.Data.WasteTypes[i+1:]...)
			return nil
		}
	}
	s.Data.WasteTypes = append(s.Data.WasteTypes, id)
	return nil
}

// SelectSkip replaces any previous selection. The collection date follows the new
// offering's hire period when a delivery date is already chosen.
func (s *State) SelectSkip(skip models.SkipOffering) error {
	if skip.Forbidden {
		return ErrSkipForbidden
	}
	s.Data.SelectedSkip = &skip
	if s.Data.DeliveryDate != nil {
		c := CollectionDate(*s.Data.DeliveryDate, s.Data.SelectedSkip)
		s.Data.CollectionDate = &c
	}
	return nil
}

// SetPlacement is the only mutator of placement; the permit requirement follows it.
func (s *State) SetPlacement(p models.Placement) error {
	if !p.Valid() {
		return ErrUnknownPlacement
	}
	s.Data.Placement = p
	return nil
}

// PermitRequired is derived from placement and never stored.
func (s *State) PermitRequired() bool {
	return s.Data.PermitRequired()
}

// SelectDeliveryDate sets the delivery day and recomputes the collection day.
// Days before MinDeliveryDate are rejected.
func (s *State) SelectDeliveryDate(d, today time.Time) error {
	if !IsSelectable(d, today, s.PermitRequired()) {
		return ErrDateTooEarly
	}
	delivery := Day(d.In(today.Location()))
	collection := CollectionDate(delivery, s.Data.SelectedSkip)
	s.Data.DeliveryDate = &delivery
	s.Data.CollectionDate = &collection
	return nil
}

// RemoveCharge strikes a charge off for the rest of the session.
func (s *State) RemoveCharge(c Charge) error {
	switch c {
	case ChargePermit:
		s.Removed.Permit = true
	case ChargeTonneBag:
		s.Removed.TonneBag = true
	default:
		return ErrUnknownCharge
	}
	return nil
}

// Charges derives the additional charges from placement and removals.
func (s *State) Charges(f Fees) models.AdditionalCharges {
	var out models.AdditionalCharges
	if s.PermitRequired() && !s.Removed.Permit {
		out.PermitFee = f.PermitFee
	}
	if !s.Removed.TonneBag {
		out.TonneBag = f.TonneBag
	}
	return out
}

// Quote prices the current selection.
func (s *State) Quote(calc *pricing.Calculator, f Fees) pricing.Breakdown {
	return calc.Quote(s.Data.SelectedSkip, s.Charges(f))
}

// CanContinue evaluates the current step's completeness predicate.
func (s *State) CanContinue(today time.Time) bool {
	switch s.Step {
	case StepPostcode:
		return s.Data.Address.Complete()
	case StepWasteType:
		return len(s.Data.WasteTypes) > 0
	case StepSkipSize:
		return s.Data.SelectedSkip != nil
	case StepPermit:
		return true
	case StepDateSelection:
		// A date picked before switching to public placement may now be too early.
		return s.Data.DeliveryDate != nil && IsSelectable(*s.Data.DeliveryDate, today, s.PermitRequired())
	}
	return false
}

// Continue advances the cursor when the current step is complete.
func (s *State) Continue(today time.Time) error {
	i := s.Step.index()
	if i < 0 {
		s.Step = StepPostcode
		return ErrStepIncomplete
	}
	if i == len(Steps)-1 {
		return ErrLastStep
	}
	if !s.CanContinue(today) {
		return ErrStepIncomplete
	}
	s.Step = Steps[i+1]
	return nil
}

// Back moves the cursor one step back. It is a no-op on the first step.
func (s *State) Back() {
	if i := s.Step.index(); i > 0 {
		s.Step = Steps[i-1]
	}
}
