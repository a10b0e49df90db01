package pricing

import (
	"fmt"

	"ecoskip/models"
)

const (
	// StandardVATRateBps is 20% VAT.
	StandardVATRateBps int64 = 2000
	// RegionalVATRateBps is the 18% regional variant.
	RegionalVATRateBps int64 = 1800

	bpsDenominator int64 = 10000
)

// Breakdown is a priced booking. All amounts are in pence.
type Breakdown struct {
	SkipPrice  models.Money `json:"skipPrice"`
	PermitFee  models.Money `json:"permitFee"`
	TonneBag   models.Money `json:"tonneBag"`
	Subtotal   models.Money `json:"subtotal"`
	VAT        models.Money `json:"vat"`
	Total      models.Money `json:"total"`
	VATRateBps int64        `json:"vatRateBps"`
	VATRate    string       `json:"vatRate"`
}

// Calculator sums the skip price and additional charges and applies VAT.
// It holds no state beyond the rate and is safe for concurrent use.
type Calculator struct {
	VATRateBps int64
}

func NewCalculator(vatRateBps int64) *Calculator {
	if vatRateBps <= 0 {
		vatRateBps = StandardVATRateBps
	}
	return &Calculator{VATRateBps: vatRateBps}
}

// Quote prices a skip offering plus charges. A nil skip yields an all-zero breakdown.
func (c *Calculator) Quote(skip *models.SkipOffering, charges models.AdditionalCharges) Breakdown {
	if skip == nil {
		return c.zero()
	}
	return c.quote(skip.PriceBeforeVAT, charges)
}

// QuoteSnapshot prices the skip as recorded on a booking. Bookings are totalled from
// their snapshot so the stored total always matches the stored skip price.
func (c *Calculator) QuoteSnapshot(skip *models.SkipSnapshot, charges models.AdditionalCharges) Breakdown {
	if skip == nil {
		return c.zero()
	}
	return c.quote(skip.PriceBeforeVAT, charges)
}

func (c *Calculator) quote(skipPrice models.Money, charges models.AdditionalCharges) Breakdown {
	subtotal := skipPrice + charges.PermitFee + charges.TonneBag
	vat := c.VAT(subtotal)
	return Breakdown{
		SkipPrice:  skipPrice,
		PermitFee:  charges.PermitFee,
		TonneBag:   charges.TonneBag,
		Subtotal:   subtotal,
		VAT:        vat,
		Total:      subtotal + vat,
		VATRateBps: c.VATRateBps,
		VATRate:    c.RateLabel(),
	}
}

func (c *Calculator) zero() Breakdown {
	return Breakdown{VATRateBps: c.VATRateBps, VATRate: c.RateLabel()}
}

// VAT returns the tax on amount, rounded half up to the penny.
func (c *Calculator) VAT(amount models.Money) models.Money {
	return models.Money((int64(amount)*c.VATRateBps + bpsDenominator/2) / bpsDenominator)
}

// RateLabel renders the rate for display, e.g. "20%" or "17.5%".
func (c *Calculator) RateLabel() string {
	whole := c.VATRateBps / 100
	frac := c.VATRateBps % 100
	if frac == 0 {
		return fmt.Sprintf("%d%%", whole)
	}
	if frac%10 == 0 {
		return fmt.Sprintf("%d.%d%%", whole, frac/10)
	}
	return fmt.Sprintf("%d.%02d%%", whole, frac)
}
