package breakeven

import (
	"slices"
	"time"
)

// recordDateLayouts are tried in a fixed priority order; the first layout
// that parses wins and parsing stops. An ambiguous date like "03/04/2025"
// therefore always resolves as US month/day.
var recordDateLayouts = []string{
	time.RFC3339,          // 2025-01-15T00:00:00Z or with explicit offset
	"2006-01-02T15:04:05", // ISO timestamp without offset
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

// ParseRecordDate parses a record date trying each supported layout in
// order. It reports false when no layout matches; such a record still
// counts in grand totals but joins no monthly bucket.
func ParseRecordDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Month is a calendar month aggregation key, formatted "YYYY-MM".
// Zero-padding makes lexicographic order chronological.
type Month string

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month { return Month(t.Format("2006-01")) }

// MonthlyBuckets accumulates monetary totals per calendar month.
type MonthlyBuckets map[Month]Money

// Add accumulates amount into the month's bucket.
func (b MonthlyBuckets) Add(m Month, amount Money) {
	b[m] = b[m].Add(amount)
}

// Months returns the bucket keys in chronological order.
func (b MonthlyBuckets) Months() []Month {
	months := make([]Month, 0, len(b))
	for m := range b {
		months = append(months, m)
	}
	slices.Sort(months)
	return months
}

// Total returns the sum of all buckets. It equals the grand total
// restricted to records that carried a parseable date.
func (b MonthlyBuckets) Total() Money {
	var total Money
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}
