package catalog

import (
	"errors"

	"ecoskip/models"
)

var (
	ErrSkipNotFound      = errors.New("skip not found")
	ErrUnknownWasteType  = errors.New("unknown waste type")
	ErrSkipNotSelectable = errors.New("skip is not available for selection")
)

// Filter narrows Available. Zero value matches every selectable offering.
type Filter struct {
	RoadPlacement bool
	HeavyWaste    bool
}

// Catalog is a fixed list of skip offerings. It stands in for a postcode-driven lookup
// and is never mutated after construction.
type Catalog struct {
	skips      []models.SkipOffering
	wasteTypes []models.WasteType
}

// New builds a catalog over the given offerings and waste types.
func New(skips []models.SkipOffering, wasteTypes []models.WasteType) *Catalog {
	return &Catalog{
		skips:      append([]models.SkipOffering(nil), skips...),
		wasteTypes: append([]models.WasteType(nil), wasteTypes...),
	}
}

// Default returns the catalog of standard NR32 offerings.
func Default() *Catalog {
	return New(defaultSkips(), defaultWasteTypes())
}

// All returns every offering including forbidden ones.
func (c *Catalog) All() []models.SkipOffering {
	return append([]models.SkipOffering(nil), c.skips...)
}

// Available returns the offerings a customer may pick. Forbidden offerings are never listed.
func (c *Catalog) Available(f Filter) []models.SkipOffering {
	out := make([]models.SkipOffering, 0, len(c.skips))
	for _, s := range c.skips {
		if s.Forbidden {
			continue
		}
		if f.RoadPlacement && !s.AllowedOnRoad {
			continue
		}
		if f.HeavyWaste && !s.AllowsHeavyWaste {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Find looks an offering up by id.
func (c *Catalog) Find(id int) (models.SkipOffering, error) {
	for _, s := range c.skips {
		if s.ID == id {
			return s, nil
		}
	}
	return models.SkipOffering{}, ErrSkipNotFound
}

// FindSelectable looks an offering up by id and rejects forbidden ones.
func (c *Catalog) FindSelectable(id int) (models.SkipOffering, error) {
	s, err := c.Find(id)
	if err != nil {
		return s, err
	}
	if s.Forbidden {
		return models.SkipOffering{}, ErrSkipNotSelectable
	}
	return s, nil
}

// IsSelected compares by identifier.
func IsSelected(selected *models.SkipOffering, s models.SkipOffering) bool {
	return selected != nil && selected.ID == s.ID
}

// SkipView is an offering as listed to customers, with its VAT-inclusive display price
// and whether it is the current selection.
type SkipView struct {
	models.SkipOffering
	PriceIncVAT models.Money `json:"price_inc_vat"`
	Selected    bool         `json:"selected"`
}

// Views decorates skips for display; selected may be nil.
func Views(skips []models.SkipOffering, selected *models.SkipOffering) []SkipView {
	out := make([]SkipView, 0, len(skips))
	for _, s := range skips {
		out = append(out, SkipView{
			SkipOffering: s,
			PriceIncVAT:  s.PriceIncVAT(),
			Selected:     IsSelected(selected, s),
		})
	}
	return out
}

// WasteTypes lists the selectable waste categories.
func (c *Catalog) WasteTypes() []models.WasteType {
	return append([]models.WasteType(nil), c.wasteTypes...)
}

// IsWasteType reports whether id names a known waste category.
func (c *Catalog) IsWasteType(id string) bool {
	for _, w := range c.wasteTypes {
		if w.ID == id {
			return true
		}
	}
	return false
}
