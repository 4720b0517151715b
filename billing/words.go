package billing

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
)

func belowThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return ones[n] + " "
	case n < 100:
		return tens[n/10] + " " + belowThousand(n%10)
	default:
		return ones[n/100] + " Hundred " + belowThousand(n%100)
	}
}

// indian spells n with crore/lakh/thousand grouping. Crore counts of a thousand
// or more recurse through the same grouping.
func indian(n int64) string {
	var b strings.Builder
	if n >= crore {
		b.WriteString(indian(n / crore))
		b.WriteString(" Crore ")
		n %= crore
	}
	if n >= lakh {
		b.WriteString(belowThousand(n / lakh))
		b.WriteString("Lakh ")
		n %= lakh
	}
	if n >= thousand {
		b.WriteString(belowThousand(n / thousand))
		b.WriteString("Thousand ")
		n %= thousand
	}
	b.WriteString(belowThousand(n))
	return strings.Join(strings.Fields(b.String()), " ")
}

// NumberToWords converts a non-negative rupee amount into Indian-system words.
// Zero yields "Zero Rupees" without the "Only" suffix.
func NumberToWords(n int64) string {
	if n == 0 {
		return "Zero Rupees"
	}
	if n == math.MinInt64 {
		n = math.MaxInt64
	} else if n < 0 {
		n = -n
	}
	return indian(n) + " Rupees Only"
}
