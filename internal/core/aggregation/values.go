package aggregation

import (
	"fmt"
	"math"
	"reflect"

	"github.com/shopspring/decimal"
)

// ToDecimal converts a decoded record value to a decimal.
// JSON numbers arrive as float64, YAML integers as int; numeric strings are
// accepted too. NaN, infinities and anything else fail with ErrOperator.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case float64:
		if !finite(val) {
			return decimal.Zero, fmt.Errorf("%w: %v has no decimal value", ErrOperator, val)
		}
		return decimal.NewFromFloat(val), nil
	case float32:
		if !finite(float64(val)) {
			return decimal.Zero, fmt.Errorf("%w: %v has no decimal value", ErrOperator, val)
		}
		return decimal.NewFromFloat32(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case int32:
		return decimal.NewFromInt32(val), nil
	case uint64:
		return decimal.NewFromUint64(val), nil
	case string:
		d, err := decimal.NewFromString(val)
		if err == nil {
			return d, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: %T is not numeric", ErrOperator, v)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// asFloat is the fallback comparison domain for values ToDecimal rejects.
func asFloat(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	}
	d, _ := ToDecimal(v)
	return d.InexactFloat64()
}

func isNumeric(v any) bool {
	switch v.(type) {
	case decimal.Decimal, float64, float32, int, int64, int32, uint64:
		return true
	}
	return false
}

func hashable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// NormalizeKey turns a decoded record value into a group key. Integral
// numbers become int64, or uint64 above the int64 range, so that 1 and 1.0
// land in the same group and large integers stay distinct. Other numbers
// become float64. NaN and infinities are kept as float64 as they are; every
// NaN forms its own group.
func NormalizeKey(v any) (any, error) {
	if isNumeric(v) {
		d, err := ToDecimal(v)
		if err != nil {
			return asFloat(v), nil
		}
		if d.IsInteger() {
			n := d.BigInt()
			switch {
			case n.IsInt64():
				return n.Int64(), nil
			case n.IsUint64():
				return n.Uint64(), nil
			}
		}
		return d.InexactFloat64(), nil
	}
	if !hashable(v) {
		return nil, fmt.Errorf("%w: %T", ErrUnhashableKey, v)
	}
	return v, nil
}

// Equal reports whether two decoded values are semantically equal.
// Numbers compare by value regardless of their decoded type; arrays and
// objects compare element by element.
func Equal(a, b any) bool {
	if isNumeric(a) && isNumeric(b) {
		da, errA := ToDecimal(a)
		db, errB := ToDecimal(b)
		if errA != nil || errB != nil {
			return asFloat(a) == asFloat(b)
		}
		return da.Equal(db)
	}

	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, x := range av {
			y, ok := bv[k]
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	}

	if hashable(a) && hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
