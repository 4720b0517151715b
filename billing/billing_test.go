package billing

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBillNo(t *testing.T) {
	tests := []struct {
		description string
		billNos     []string
		expected    int64
	}{
		{"mixed numeric and text", []string{"3", "5", "abc"}, 6},
		{"no bills", nil, 1},
		{"only text", []string{"abc", "T4"}, 1},
		{"padded and fractional", []string{" 12 ", "7.5"}, 13},
		{"empty strings are skipped", []string{"", "2"}, 3},
		{"numbers past float precision are skipped", []string{"1e19", "7"}, 8},
		{"infinity is skipped", []string{"Inf", "2"}, 3},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, NextBillNo(test.billNos), test.description)
	}
}

func TestNextTourBillNo(t *testing.T) {
	tests := []struct {
		description string
		billNos     []string
		expected    string
	}{
		{"prefixed serials", []string{"T1", "T4", "T2"}, "T5"},
		{"no bills", nil, "T1"},
		{"no digits count as zero", []string{"T", "draft"}, "T1"},
		{"digits are taken from anywhere", []string{"TB-0012", "T3"}, "T13"},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, NextTourBillNo(test.billNos), test.description)
	}
}

func TestSortOrder(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	keys := []SortKey{
		{BillNo: "abc", Date: day(1)},
		{BillNo: "10", Date: day(2)},
		{BillNo: "2", Date: day(5)},
		{BillNo: "2", Date: day(3)},
		{BillNo: "aaa", Date: day(9)},
		{BillNo: "abc", Date: day(1)},
	}

	assert.Equal(t, []int{3, 2, 1, 4, 0, 5}, SortOrder(keys))
}

func TestSortBills(t *testing.T) {
	type bill struct{ no string }
	bills := []bill{{"x"}, {"3"}, {"1"}}

	SortBills(bills, func(b bill) SortKey { return SortKey{BillNo: b.no} })

	assert.Equal(t, []bill{{"1"}, {"3"}, {"x"}}, bills)
}

func TestNumberToWords(t *testing.T) {
	tests := map[int64]string{
		0:          "Zero Rupees",
		7:          "Seven Rupees Only",
		15:         "Fifteen Rupees Only",
		40:         "Forty Rupees Only",
		100:        "One Hundred Rupees Only",
		1250:       "One Thousand Two Hundred Fifty Rupees Only",
		5500:       "Five Thousand Five Hundred Rupees Only",
		100000:     "One Lakh Rupees Only",
		1234567:    "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees Only",
		10000000:   "One Crore Rupees Only",
		123456789:  "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine Rupees Only",
		1000000000: "One Hundred Crore Rupees Only",
	}

	for n, expected := range tests {
		assert.Equalf(t, expected, NumberToWords(n), "number %d", n)
	}
}

func TestTravelBillTotals(t *testing.T) {
	totals := TravelBillTotals(5000, 2000, 500, 0)

	assert.Equal(t, 5000.0, totals.TotalAmount)
	assert.Equal(t, 3000.0, totals.Balance)
	assert.Equal(t, 5500.0, totals.GrandTotal)
	assert.Equal(t, "Five Thousand Five Hundred Rupees Only", totals.AmountWords)
}

func TestTravelBillTotals_NegativeBalanceIsKept(t *testing.T) {
	totals := TravelBillTotals(1000, 1500, 0, 0)

	assert.Equal(t, -500.0, totals.Balance)
	assert.Equal(t, 1000.0, totals.GrandTotal)
}

func TestTourBillTotals(t *testing.T) {
	totals := TourBillTotals(12500, 3, 10000, 1200.5)

	assert.Equal(t, 37500.0, totals.TotalAmount)
	assert.Equal(t, 27500.0, totals.Balance)
	assert.Equal(t, 38700.5, totals.GrandTotal)
	assert.Equal(t, "Thirty Eight Thousand Seven Hundred One Rupees Only", totals.AmountWords)
}

func TestTotals_FloatNoise(t *testing.T) {
	totals := TravelBillTotals(0.1, 0, 0.2, 0)

	assert.Equal(t, 0.3, totals.GrandTotal)
}

func TestAmountInWords_Negative(t *testing.T) {
	assert.Equal(t, "Minus Five Hundred Rupees Only", AmountInWords(-500))
}

func TestTotals_NonFiniteInputCountsAsZero(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.NotPanics(t, func() {
			totals := TravelBillTotals(v, 0, 0, 0)
			assert.Equal(t, 0.0, totals.GrandTotal)
			assert.Equal(t, "Zero Rupees", totals.AmountWords)
		})
		assert.NotPanics(t, func() { TourBillTotals(v, 2, v, 0) })
	}
}

func TestAmountInWords_BeyondInt64(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Contains(t, AmountInWords(1e30), "Rupees Only")
		assert.True(t, strings.HasPrefix(AmountInWords(-1e30), "Minus "))
	})
	assert.NotPanics(t, func() { NumberToWords(math.MinInt64) })
	assert.Equal(t, NumberToWords(math.MaxInt64), NumberToWords(math.MinInt64))
}

func TestPaidInFull(t *testing.T) {
	assert.True(t, PaidInFull(5000, 5000))
	assert.True(t, PaidInFull(6000, 5000))
	assert.False(t, PaidInFull(4999.99, 5000))
}

func TestFormatINR(t *testing.T) {
	tests := map[float64]string{
		0:           "0",
		500:         "500",
		1500.5:      "1,500.5",
		1234567.456: "12,34,567.46",
		100000:      "1,00,000",
		-3000:       "-3,000",
		99.999:      "100",
	}

	for amount, expected := range tests {
		assert.Equalf(t, expected, FormatINR(amount), "amount %v", amount)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2025", FormatDate(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "01/01/2025", FormatDate(time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", FormatDate(time.Time{}))
}
