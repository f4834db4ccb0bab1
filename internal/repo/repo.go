// Package repo provides typed repositories over the generic query gateway.
// The gateway stays statement-agnostic for tooling and export; these types
// own the domain SQL and give callers compile-time safety.
package repo

import (
	"github.com/shopspring/decimal"
)

// Row accessors. The gateway normalizes driver values to string, int64,
// float64, or nil.

func rowString(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func rowInt(row map[string]any, key string) int64 {
	if v, ok := row[key].(int64); ok {
		return v
	}
	return 0
}

func rowDecimal(row map[string]any, key string) decimal.Decimal {
	switch v := row[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// rowFlag maps a nullable 0/1 column to a tri-state flag. One flag column
// carries TEXT affinity in the legacy schema, so the stored value may come
// back as a string.
func rowFlag(row map[string]any, key string) *bool {
	switch v := row[key].(type) {
	case int64:
		b := v == 1
		return &b
	case string:
		b := v == "1"
		return &b
	default:
		return nil
	}
}

// flagValue maps a tri-state flag back to a nullable 0/1 parameter.
func flagValue(b *bool) any {
	if b == nil {
		return nil
	}
	if *b {
		return int64(1)
	}
	return int64(0)
}
