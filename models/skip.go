package models

// SkipOffering is an immutable catalog entry. Field names follow the skip lookup feed.
type SkipOffering struct {
	ID               int    `json:"id"`
	Size             int    `json:"size"`
	HirePeriodDays   int    `json:"hire_period_days"`
	TransportCost    *Money `json:"transport_cost"`
	PerTonneCost     *Money `json:"per_tonne_cost"`
	PriceBeforeVAT   Money  `json:"price_before_vat"`
	VAT              int    `json:"vat"`
	Postcode         string `json:"postcode"`
	Area             string `json:"area"`
	Forbidden        bool   `json:"forbidden"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
	AllowedOnRoad    bool   `json:"allowed_on_road"`
	AllowsHeavyWaste bool   `json:"allows_heavy_waste"`
}

// PriceIncVAT is the display price using the offering's own VAT percentage,
// rounded half up to the penny.
func (s SkipOffering) PriceIncVAT() Money {
	vat := (int64(s.PriceBeforeVAT)*int64(s.VAT) + 50) / 100
	return s.PriceBeforeVAT + Money(vat)
}

// Snapshot is the subset of the offering persisted with a booking.
func (s SkipOffering) Snapshot() SkipSnapshot {
	return SkipSnapshot{
		ID:             s.ID,
		Size:           s.Size,
		PriceBeforeVAT: s.PriceBeforeVAT,
		HirePeriodDays: s.HirePeriodDays,
	}
}

// SkipSnapshot is the skip as recorded on a booking document.
type SkipSnapshot struct {
	ID             int   `bson:"id" json:"id"`
	Size           int   `bson:"size" json:"size"`
	PriceBeforeVAT Money `bson:"price_before_vat" json:"price_before_vat"`
	HirePeriodDays int   `bson:"hire_period_days" json:"hire_period_days"`
}

// WasteType is one selectable waste category.
type WasteType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
