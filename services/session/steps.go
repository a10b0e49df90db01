package session

import (
	"context"
	"fmt"
	"time"

	"ecoskip/models"
	"ecoskip/services/catalog"
	"ecoskip/services/wizard"
)

func (s *Service) SetAddress(ctx context.Context, id string, a models.Address) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, _ time.Time) error {
		st.SetAddress(a)
		return nil
	})
}

// ToggleWasteType only accepts ids from the catalog's waste type list.
func (s *Service) ToggleWasteType(ctx context.Context, id, wasteType string) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, _ time.Time) error {
		if !s.Skips.IsWasteType(wasteType) {
			return fmt.Errorf("%w: %q", catalog.ErrUnknownWasteType, wasteType)
		}
		return st.ToggleWasteType(wasteType)
	})
}

func (s *Service) SelectSkip(ctx context.Context, id string, skipID int) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, _ time.Time) error {
		skip, err := s.Skips.FindSelectable(skipID)
		if err != nil {
			return err
		}
		return st.SelectSkip(skip)
	})
}

// SkipOptions lists the offerings for the skip-size step with the session's current
// choice marked.
func (s *Service) SkipOptions(ctx context.Context, id string, f catalog.Filter) ([]catalog.SkipView, error) {
	st, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return catalog.Views(s.Skips.Available(f), st.Data.SelectedSkip), nil
}

func (s *Service) SetPlacement(ctx context.Context, id string, p models.Placement) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, _ time.Time) error {
		return st.SetPlacement(p)
	})
}

// SelectDeliveryDate takes a YYYY-MM-DD calendar date.
func (s *Service) SelectDeliveryDate(ctx context.Context, id, date string) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, today time.Time) error {
		d, err := wizard.ParseDay(date, today.Location())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		return st.SelectDeliveryDate(d, today)
	})
}

func (s *Service) RemoveCharge(ctx context.Context, id string, c wizard.Charge) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, _ time.Time) error {
		return st.RemoveCharge(c)
	})
}

func (s *Service) Continue(ctx context.Context, id string) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, today time.Time) error {
		return st.Continue(today)
	})
}

func (s *Service) Back(ctx context.Context, id string) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, _ time.Time) error {
		st.Back()
		return nil
	})
}

func (s *Service) Reset(ctx context.Context, id string) (*View, error) {
	return s.update(ctx, id, func(st *wizard.State, _ time.Time) error {
		st.Reset()
		return nil
	})
}

// Calendar moves the displayed month and renders it. month is "next", "prev",
// a YYYY-MM value, or empty to keep the current month.
func (s *Service) Calendar(ctx context.Context, id, month string) (*wizard.CalendarView, error) {
	var out wizard.CalendarView
	_, err := s.update(ctx, id, func(st *wizard.State, today time.Time) error {
		switch month {
		case "":
		case "next":
			st.NextMonth(today)
		case "prev":
			st.PrevMonth(today)
		default:
			m, err := time.ParseInLocation("2006-01", month, today.Location())
			if err != nil {
				return fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidDate)
			}
			st.ShowMonth(m)
		}
		out = st.Calendar(today)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
