package calc

import (
	"testing"

	"github.com/rmscampos/gosales/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEffectiveCommissionRate(t *testing.T) {
	product := models.Product{CommissionRate: dec("5.00")}

	rate := EffectiveCommissionRate(nil, product)
	assert.True(t, rate.Equal(dec("5.00")), "no seller falls back to the product rate")

	zeroSeller := &models.Seller{Commission: decimal.Zero}
	rate = EffectiveCommissionRate(zeroSeller, product)
	assert.True(t, rate.Equal(dec("5.00")), "seller with zero commission falls back to the product rate")

	seller := &models.Seller{Commission: dec("8.00")}
	rate = EffectiveCommissionRate(seller, product)
	assert.True(t, rate.Equal(dec("8.00")), "seller commission wins when above zero")
}

func TestComputeSaleTotals_NoSeller(t *testing.T) {
	items := []models.SaleItem{
		{
			Product:  models.Product{CommissionRate: dec("5.00")},
			Price:    dec("10.00"),
			Quantity: 2,
		},
	}

	total, commission := ComputeSaleTotals(nil, items)

	assert.True(t, total.Equal(dec("20.00")), "total %s", total)
	assert.True(t, commission.Equal(dec("1.00")), "commission %s", commission)
	assert.True(t, items[0].CommissionRate.Equal(dec("5.00")))
}

func TestComputeSaleTotals_SellerOverride(t *testing.T) {
	seller := &models.Seller{Commission: dec("8.00")}
	items := []models.SaleItem{
		{
			Product:  models.Product{CommissionRate: dec("3.00")},
			Price:    dec("50.00"),
			Quantity: 1,
		},
	}

	total, commission := ComputeSaleTotals(seller, items)

	assert.True(t, total.Equal(dec("50.00")), "total %s", total)
	assert.True(t, commission.Equal(dec("4.00")), "commission %s", commission)
	assert.True(t, items[0].CommissionRate.Equal(dec("8.00")), "seller rate is written onto the item")
}

func TestComputeSaleTotals_MixedItems(t *testing.T) {
	items := []models.SaleItem{
		{Product: models.Product{CommissionRate: dec("5.00")}, Price: dec("10.00"), Quantity: 2},
		{Product: models.Product{CommissionRate: dec("10.00")}, Price: dec("2.50"), Quantity: 4},
	}

	total, commission := ComputeSaleTotals(nil, items)

	assert.True(t, total.Equal(dec("30.00")), "total %s", total)
	// 20.00 * 5% + 10.00 * 10%
	assert.True(t, commission.Equal(dec("2.00")), "commission %s", commission)
}

func TestComputeSaleTotals_EmptyItems(t *testing.T) {
	total, commission := ComputeSaleTotals(nil, nil)

	assert.True(t, total.IsZero())
	assert.True(t, commission.IsZero())
}

func TestComputeSaleTotals_ExactDecimalArithmetic(t *testing.T) {
	// 0.10 is not representable in binary floating point; ten of them must
	// still sum to exactly 1.00.
	items := make([]models.SaleItem, 10)
	for i := range items {
		items[i] = models.SaleItem{
			Product:  models.Product{CommissionRate: dec("10.00")},
			Price:    dec("0.10"),
			Quantity: 1,
		}
	}

	total, commission := ComputeSaleTotals(nil, items)

	assert.Equal(t, "1.00", total.StringFixed(2))
	assert.Equal(t, "0.10", commission.StringFixed(2))
}

func TestComputeSaleTotals_Idempotent(t *testing.T) {
	seller := &models.Seller{Commission: dec("7.50")}
	items := []models.SaleItem{
		{Product: models.Product{CommissionRate: dec("5.00")}, Price: dec("19.90"), Quantity: 3},
		{Product: models.Product{CommissionRate: dec("2.00")}, Price: dec("0.99"), Quantity: 7},
	}

	total1, commission1 := ComputeSaleTotals(seller, items)
	total2, commission2 := ComputeSaleTotals(seller, items)

	assert.True(t, total1.Equal(total2))
	assert.True(t, commission1.Equal(commission2))
}
