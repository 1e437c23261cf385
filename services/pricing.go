package services

import (
	"github.com/julirosales079/parrillerosfast/entity"

	"github.com/shopspring/decimal"
)

// CartTotal sums every line total. Prices are integer pesos so the sum
// is exact; rounding only ever happens once, here.
func CartTotal(lines []entity.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}

// TaxSplit derives the receipt cost breakdown from the tax-inclusive
// total: 92% taxable base, 8% INC. Both parts are rounded independently,
// so subtotal+inc can drift one peso from the total. Receipts have
// always shown exactly this split; do not replace it with a per-line
// tax sum.
func TaxSplit(total int64) (subtotal, inc int64) {
	t := decimal.NewFromInt(total)
	subtotal = t.Mul(decimal.New(92, -2)).Round(0).IntPart()
	inc = t.Mul(decimal.New(8, -2)).Round(0).IntPart()
	return subtotal, inc
}
