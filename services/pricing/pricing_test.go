package pricing

import (
	"math/rand"
	"testing"

	"ecoskip/models"

	"github.com/stretchr/testify/assert"
)

func TestQuote_PrivatePlacementExample(t *testing.T) {
	calc := NewCalculator(StandardVATRateBps)
	skip := &models.SkipOffering{ID: 17934, Size: 6, PriceBeforeVAT: models.Pounds(305), VAT: 20}

	b := calc.Quote(skip, models.AdditionalCharges{TonneBag: models.Pounds(30)})

	assert.Equal(t, models.Pounds(335), b.Subtotal)
	assert.Equal(t, models.Pounds(67), b.VAT)
	assert.Equal(t, models.Pounds(402), b.Total)
	assert.Equal(t, "402.00", b.Total.String())
	assert.Equal(t, "20%", b.VATRate)
}

func TestQuote_WithPermitFee(t *testing.T) {
	calc := NewCalculator(StandardVATRateBps)
	skip := &models.SkipOffering{PriceBeforeVAT: models.Pounds(305)}

	b := calc.Quote(skip, models.AdditionalCharges{PermitFee: models.Pounds(84), TonneBag: models.Pounds(30)})

	assert.Equal(t, models.Pounds(419), b.Subtotal)
	assert.Equal(t, models.Money(8380), b.VAT)
	assert.Equal(t, models.Money(50280), b.Total)
}

func TestQuote_NoSkipIsZero(t *testing.T) {
	calc := NewCalculator(StandardVATRateBps)

	b := calc.Quote(nil, models.AdditionalCharges{PermitFee: models.Pounds(84), TonneBag: models.Pounds(30)})

	assert.Zero(t, b.Subtotal)
	assert.Zero(t, b.VAT)
	assert.Zero(t, b.Total)

	assert.Equal(t, "20%", b.VATRate)

	b = calc.QuoteSnapshot(nil, models.AdditionalCharges{TonneBag: models.Pounds(30)})
	assert.Zero(t, b.Total)
}

func TestQuote_RegionalRate(t *testing.T) {
	calc := NewCalculator(RegionalVATRateBps)
	skip := &models.SkipSnapshot{PriceBeforeVAT: models.Pounds(100)}

	b := calc.QuoteSnapshot(skip, models.AdditionalCharges{})

	assert.Equal(t, models.Pounds(18), b.VAT)
	assert.Equal(t, models.Pounds(118), b.Total)
	assert.Equal(t, "18%", b.VATRate)
}

func TestQuote_TotalsAreConsistent(t *testing.T) {
	calc := NewCalculator(StandardVATRateBps)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		skip := &models.SkipOffering{PriceBeforeVAT: models.Money(rng.Int63n(200000))}
		charges := models.AdditionalCharges{
			PermitFee: models.Money(rng.Int63n(20000)),
			TonneBag:  models.Money(rng.Int63n(10000)),
		}

		b := calc.Quote(skip, charges)

		assert.Equal(t, skip.PriceBeforeVAT+charges.PermitFee+charges.TonneBag, b.Subtotal)
		assert.Equal(t, b.Total-b.Subtotal, b.VAT)
		// Whole-pound subtotals are exact at 20%.
		if int64(b.Subtotal)%100 == 0 {
			assert.Equal(t, int64(b.Subtotal)*12/10, int64(b.Total))
		}
	}
}

func TestQuote_IsPure(t *testing.T) {
	calc := NewCalculator(StandardVATRateBps)
	skip := &models.SkipOffering{PriceBeforeVAT: models.Money(27899)}
	charges := models.AdditionalCharges{TonneBag: models.Pounds(30)}

	assert.Equal(t, calc.Quote(skip, charges), calc.Quote(skip, charges))
}

func TestVAT_RoundsHalfUp(t *testing.T) {
	calc := NewCalculator(StandardVATRateBps)

	assert.Equal(t, models.Money(1), calc.VAT(3))  // 0.6p
	assert.Equal(t, models.Money(0), calc.VAT(2))  // 0.4p
	assert.Equal(t, models.Money(1), calc.VAT(5))  // 1.0p
	assert.Equal(t, models.Money(2), calc.VAT(8))  // 1.6p
	assert.Equal(t, models.Money(3), calc.VAT(13)) // 2.6p
}

func TestNewCalculator_DefaultsRate(t *testing.T) {
	assert.Equal(t, StandardVATRateBps, NewCalculator(0).VATRateBps)
	assert.Equal(t, "17.5%", NewCalculator(1750).RateLabel())
}
