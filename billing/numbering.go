// Package billing holds the bill arithmetic: serial allocation, ordering,
// totals and the amount-in-words sentence.
package billing

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

const TourBillPrefix = "T"

// maxExactBillNo is 2^53; larger numbers lose integer precision and are
// treated as non-numeric.
const maxExactBillNo = 1 << 53

// parseBillNo reports the numeric value of a travel bill number.
func parseBillNo(billNo string) (float64, bool) {
	s := strings.TrimSpace(billNo)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxExactBillNo {
		return 0, false
	}
	return v, true
}

// NextBillNo returns max(numeric bill numbers, 0) + 1. Non-numeric values are ignored.
func NextBillNo(billNos []string) int64 {
	var max float64
	for _, billNo := range billNos {
		if v, ok := parseBillNo(billNo); ok && v > max {
			max = v
		}
	}
	return int64(math.Floor(max)) + 1
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// NextTourBillNo strips non-digits from every tour bill number and returns
// "T" followed by the max + 1.
func NextTourBillNo(billNos []string) string {
	var max int64
	for _, billNo := range billNos {
		digits := digitsOnly(billNo)
		if digits == "" {
			continue
		}
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}
	return fmt.Sprintf("%s%d", TourBillPrefix, max+1)
}

// SortKey is what SortBills needs to know about a bill.
type SortKey struct {
	BillNo string
	Date   time.Time
}

// SortOrder returns the indexes of keys in bill order: numeric bill numbers
// first in ascending value, then the rest by string comparison. Ties fall
// back to date ascending and then to the original position.
func SortOrder(keys []SortKey) []int {
	type entry struct {
		idx     int
		numeric bool
		value   float64
		key     SortKey
	}
	entries := make([]entry, len(keys))
	for i, k := range keys {
		v, ok := parseBillNo(k.BillNo)
		entries[i] = entry{idx: i, numeric: ok, value: v, key: k}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.numeric != b.numeric {
			return a.numeric
		}
		if a.numeric {
			if a.value != b.value {
				return a.value < b.value
			}
		} else if a.key.BillNo != b.key.BillNo {
			return a.key.BillNo < b.key.BillNo
		}
		if !a.key.Date.Equal(b.key.Date) {
			return a.key.Date.Before(b.key.Date)
		}
		return a.idx < b.idx
	})
	order := make([]int, len(entries))
	for i, e := range entries {
		order[i] = e.idx
	}
	return order
}

// SortBills reorders items in place using SortOrder.
func SortBills[T any](items []T, key func(T) SortKey) {
	keys := make([]SortKey, len(items))
	for i, item := range items {
		keys[i] = key(item)
	}
	order := SortOrder(keys)
	sorted := make([]T, len(items))
	for i, idx := range order {
		sorted[i] = items[idx]
	}
	copy(items, sorted)
}

