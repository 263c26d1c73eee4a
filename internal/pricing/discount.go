// Package pricing holds pure price-presentation arithmetic.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountPercent returns the integer discount percentage implied by a selling
// price and a list price (MRP), rounded half away from zero.
// When the MRP does not exceed the price — including the degenerate case of a
// zero or negative MRP — there is no discount and the result is 0.
func DiscountPercent(price, mrp decimal.Decimal) int {
	if mrp.Cmp(price) <= 0 {
		return 0
	}
	pct := mrp.Sub(price).Div(mrp).Mul(hundred).Round(0)
	return int(pct.IntPart())
}
