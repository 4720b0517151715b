package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatINR renders amount with Indian digit grouping (12,34,567) and at most
// two decimals, dropping trailing zeros.
func FormatINR(amount float64) string {
	fixed := decimal.NewFromFloat(amount).Round(2).StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, frac := fixed, ""
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		intPart, frac = fixed[:dot], strings.TrimRight(fixed[dot+1:], "0")
	}

	grouped := groupIndian(intPart)
	if frac != "" {
		grouped += "." + frac
	}
	if negative && grouped != "0" {
		grouped = "-" + grouped
	}
	return grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}

// FormatDate renders t as DD/MM/YYYY in Indian Standard Time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(ist).Format("02/01/2006")
}

var ist = time.FixedZone("IST", 5*60*60+30*60)
