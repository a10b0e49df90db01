package wizard

import (
	"fmt"
	"time"

	"ecoskip/models"
)

const (
	// DefaultHirePeriodDays applies when the selected offering carries no hire period.
	DefaultHirePeriodDays = 14

	standardLeadDays = 1
	permitLeadDays   = 5

	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MinDeliveryDate is the earliest selectable delivery day: tomorrow, or five days out
// when a council permit has to be processed first.
func MinDeliveryDate(today time.Time, permitRequired bool) time.Time {
	lead := standardLeadDays
	if permitRequired {
		lead = permitLeadDays
	}
	return Day(today).AddDate(0, 0, lead)
}

// IsSelectable reports whether d is on or after the minimum delivery day.
func IsSelectable(d, today time.Time, permitRequired bool) bool {
	earliest := MinDeliveryDate(today, permitRequired)
	return !Day(d.In(today.Location())).Before(earliest)
}

// HirePeriod is the number of days between delivery and collection for skip.
func HirePeriod(skip *models.SkipOffering) int {
	if skip == nil || skip.HirePeriodDays <= 0 {
		return DefaultHirePeriodDays
	}
	return skip.HirePeriodDays
}

// CollectionDate is delivery plus the skip's hire period.
func CollectionDate(delivery time.Time, skip *models.SkipOffering) time.Time {
	return Day(delivery).AddDate(0, 0, HirePeriod(skip))
}

// ParseDay parses a YYYY-MM-DD calendar date in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// CalendarDay is one cell of the delivery calendar.
type CalendarDay struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Selectable bool   `json:"selectable"`
	Selected   bool   `json:"selected"`
}

// CalendarView is the month currently displayed by the date step.
type CalendarView struct {
	Month           string        `json:"month"`
	LeadingBlanks   int           `json:"leadingBlanks"`
	MinDeliveryDate string        `json:"minDeliveryDate"`
	Days            []CalendarDay `json:"days"`
}

// ViewMonth returns the first day of the displayed month, defaulting to today's month.
func (s *State) ViewMonth(today time.Time) time.Time {
	if s.CalendarMonth != "" {
		if m, err := time.ParseInLocation(monthLayout, s.CalendarMonth, today.Location()); err == nil {
			return m
		}
	}
	y, m, _ := today.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, today.Location())
}

// ShowMonth moves the calendar to the month containing m.
func (s *State) ShowMonth(m time.Time) {
	s.CalendarMonth = m.Format(monthLayout)
}

// NextMonth and PrevMonth only move the view; the selected dates are untouched.
func (s *State) NextMonth(today time.Time) {
	s.ShowMonth(s.ViewMonth(today).AddDate(0, 1, 0))
}

func (s *State) PrevMonth(today time.Time) {
	s.ShowMonth(s.ViewMonth(today).AddDate(0, -1, 0))
}

// Calendar renders the displayed month with each day's selectability.
func (s *State) Calendar(today time.Time) CalendarView {
	first := s.ViewMonth(today)
	permit := s.PermitRequired()
	view := CalendarView{
		Month:           first.Format(monthLayout),
		LeadingBlanks:   int(first.Weekday()),
		MinDeliveryDate: MinDeliveryDate(today, permit).Format(dayLayout),
	}

	var selected string
	if s.Data.DeliveryDate != nil {
		selected = s.Data.DeliveryDate.Format(dayLayout)
	}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := d.Format(dayLayout)
		view.Days = append(view.Days, CalendarDay{
			Date:       date,
			Weekday:    d.Weekday().String()[:3],
			Selectable: IsSelectable(d, today, permit),
			Selected:   date == selected,
		})
	}
	return view
}
