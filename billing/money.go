package billing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Totals are the derived money fields stored on every bill.
type Totals struct {
	TotalAmount float64
	Balance     float64
	GrandTotal  float64
	AmountWords string
}

// TravelBillTotals computes balance = total - advance and
// grandTotal = total + driverBatta + extraCharges. Nothing is clamped.
func TravelBillTotals(totalAmount, advance, driverBatta, extraCharges float64) Totals {
	total := money(totalAmount)
	balance := total.Sub(money(advance))
	grand := total.Add(money(driverBatta)).Add(money(extraCharges))
	return newTotals(total, balance, grand)
}

// TourBillTotals computes total = pricePerPerson * persons, balance = total - advance
// and grandTotal = total + extraCharges.
func TourBillTotals(pricePerPerson, persons, advance, extraCharges float64) Totals {
	total := money(pricePerPerson).Mul(money(persons))
	balance := total.Sub(money(advance))
	grand := total.Add(money(extraCharges))
	return newTotals(total, balance, grand)
}

// money converts v to a decimal; NaN and infinities count as zero.
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func newTotals(total, balance, grand decimal.Decimal) Totals {
	return Totals{
		TotalAmount: total.Round(2).InexactFloat64(),
		Balance:     balance.Round(2).InexactFloat64(),
		GrandTotal:  grand.Round(2).InexactFloat64(),
		AmountWords: AmountInWords(grand.InexactFloat64()),
	}
}

// PaidInFull compares the advance against the bill total only; driver batta
// and extra charges are not part of the check.
func PaidInFull(advance, totalAmount float64) bool {
	return advance >= totalAmount
}

// AmountInWords rounds amount to whole rupees. Negative amounts are spelled
// as their magnitude prefixed with "Minus".
// Magnitudes beyond int64 are spelled as math.MaxInt64.
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	rupees := int64(math.MaxInt64)
	if r := math.Round(math.Abs(amount)); r < maxWholeRupees {
		rupees = int64(r)
	}
	if amount < 0 && rupees > 0 {
		return "Minus " + NumberToWords(rupees)
	}
	return NumberToWords(rupees)
}

// maxWholeRupees is 2^63, the first float64 that does not fit in an int64.
const maxWholeRupees = float64(1 << 63)
