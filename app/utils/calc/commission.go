package calc

import (
	"github.com/rmscampos/gosales/app/models"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// EffectiveCommissionRate picks the rate applied to a sale item: the seller's
// commission when a seller is attached and has one above zero, otherwise the
// product's own rate.
func EffectiveCommissionRate(seller *models.Seller, product models.Product) decimal.Decimal {
	if seller != nil && seller.Commission.GreaterThan(decimal.Zero) {
		return seller.Commission
	}
	return product.CommissionRate
}

// ComputeSaleTotals resolves each item's CommissionRate in place and returns
// the sale's total amount and commission amount. Every item must carry its
// Product. The resolved rates must be persisted by the caller; nothing is
// written here.
func ComputeSaleTotals(seller *models.Seller, items []models.SaleItem) (totalAmount, commissionAmount decimal.Decimal) {
	totalAmount = decimal.Zero
	commissionAmount = decimal.Zero

	for i := range items {
		items[i].CommissionRate = EffectiveCommissionRate(seller, items[i].Product)

		itemTotal := items[i].Price.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		totalAmount = totalAmount.Add(itemTotal)
		commissionAmount = commissionAmount.Add(itemTotal.Mul(items[i].CommissionRate).Div(oneHundred))
	}

	return totalAmount, commissionAmount.Round(2)
}
