package breakeven

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Record is one loosely-structured entry of the backup (a purchase, sale,
// transaction or withdrawal). The source schema is not fixed, so fields are
// accessed by trying an ordered chain of candidate key names; the first
// present, non-zero value wins.
type Record map[string]any

// Text returns the first non-empty string value among the candidate keys,
// or "" when none is present.
func (r Record) Text(keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// TextOr is Text with an explicit default for missing values.
func (r Record) TextOr(def string, keys ...string) string {
	if s := r.Text(keys...); s != "" {
		return s
	}
	return def
}

// Amount returns the first non-zero monetary value among the candidate
// keys, or zero Money. A present-but-zero field does not stop the chain,
// matching the tolerant lookup the backup producers rely on.
func (r Record) Amount(keys ...string) Money {
	return MoneyFromDecimal(r.Decimal(keys...))
}

// Decimal returns the first non-zero numeric value among the candidate
// keys, coerced to an exact decimal. Missing and malformed values count
// as zero, never as an error: a malformed record must not poison sums.
func (r Record) Decimal(keys ...string) decimal.Decimal {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		if d, ok := asDecimal(v); ok && !d.IsZero() {
			return d
		}
	}
	return decimal.Zero
}

// Int returns the first non-zero integral value among the candidate keys.
// Fractional values are truncated.
func (r Record) Int(keys ...string) int64 {
	return r.Decimal(keys...).IntPart()
}

// Records returns the nested list of records under key (e.g. purchase or
// sale line items). Entries that are not objects are skipped.
func (r Record) Records(key string) []Record {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	var out []Record
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// asDecimal coerces the dynamic JSON value types to a decimal.
// encoding/json decodes numbers in an `any` tree as float64, but some
// backup producers quote their numbers, so strings are accepted too.
func asDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}
