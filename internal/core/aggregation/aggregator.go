package aggregation

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Aggregator defines the reduce semantics of an aggregation operator.
// To add a new operator: implement this interface and register it in Operators.
type Aggregator interface {
	// Initial returns the aggregate value after the very first record for a key.
	// count → 1; sum/min/max → the incoming value itself.
	Initial(incoming any) (any, error)

	// Apply folds an incoming value into an existing aggregate.
	Apply(current, incoming any) (any, error)
}

// Finalizer is implemented by aggregators whose running state differs from
// the value they report, e.g. avg keeps a sum and a count.
type Finalizer interface {
	Finalize(current any) any
}

// Operators is the registry of all supported aggregation operators.
var Operators = map[string]Aggregator{
	OpCount:  countAgg{},
	OpSum:    sumAgg{},
	OpAvg:    avgAgg{},
	OpMin:    minAgg{},
	OpMax:    maxAgg{},
	OpList:   listAgg{},
	OpSet:    setAgg{},
	OpUnique: uniqueAgg{},
}

// ValidOperator reports whether op is a registered aggregation operator.
func ValidOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}

// NumericOperator reports whether op requires numeric values.
func NumericOperator(op string) bool {
	switch op {
	case OpSum, OpAvg, OpMin, OpMax:
		return true
	}
	return false
}

// countAgg increments by 1 per record. The incoming value is ignored.
type countAgg struct{}

func (countAgg) Initial(_ any) (any, error) { return int64(1), nil }
func (countAgg) Apply(cur, _ any) (any, error) {
	return cur.(int64) + 1, nil
}

// sumAgg accumulates the sum of incoming values.
type sumAgg struct{}

func (sumAgg) Initial(v any) (any, error) { return ToDecimal(v) }
func (sumAgg) Apply(cur, inc any) (any, error) {
	d, err := ToDecimal(inc)
	if err != nil {
		return nil, err
	}
	return cur.(decimal.Decimal).Add(d), nil
}

// avgAgg keeps a running sum and count; the mean is taken in Finalize.
type avgAgg struct{}

type avgState struct {
	sum decimal.Decimal
	n   int64
}

func (avgAgg) Initial(v any) (any, error) {
	d, err := ToDecimal(v)
	if err != nil {
		return nil, err
	}
	return avgState{sum: d, n: 1}, nil
}

func (avgAgg) Apply(cur, inc any) (any, error) {
	d, err := ToDecimal(inc)
	if err != nil {
		return nil, err
	}
	s := cur.(avgState)
	return avgState{sum: s.sum.Add(d), n: s.n + 1}, nil
}

func (avgAgg) Finalize(cur any) any {
	s := cur.(avgState)
	return s.sum.Div(decimal.NewFromInt(s.n))
}

// minAgg tracks the minimum value seen.
type minAgg struct{}

func (minAgg) Initial(v any) (any, error) { return ToDecimal(v) }
func (minAgg) Apply(cur, inc any) (any, error) {
	d, err := ToDecimal(inc)
	if err != nil {
		return nil, err
	}
	return decimal.Min(cur.(decimal.Decimal), d), nil
}

// maxAgg tracks the maximum value seen.
type maxAgg struct{}

func (maxAgg) Initial(v any) (any, error) { return ToDecimal(v) }
func (maxAgg) Apply(cur, inc any) (any, error) {
	d, err := ToDecimal(inc)
	if err != nil {
		return nil, err
	}
	return decimal.Max(cur.(decimal.Decimal), d), nil
}

// listAgg collects values in arrival order.
type listAgg struct{}

func (listAgg) Initial(v any) (any, error) { return []any{v}, nil }
func (listAgg) Apply(cur, inc any) (any, error) {
	return append(cur.([]any), inc), nil
}

// setAgg collects distinct hashable values. Members are reported in
// first-seen order.
type setAgg struct{}

type setState struct {
	seen  map[any]struct{}
	items []any
}

func (setAgg) Initial(v any) (any, error) {
	return setAgg{}.Apply(&setState{seen: make(map[any]struct{})}, v)
}

func (setAgg) Apply(cur, inc any) (any, error) {
	key, err := NormalizeKey(inc)
	if err != nil {
		return nil, fmt.Errorf("%w: set members must be hashable", ErrOperator)
	}
	s := cur.(*setState)
	if _, ok := s.seen[key]; !ok {
		s.seen[key] = struct{}{}
		s.items = append(s.items, inc)
	}
	return s, nil
}

func (setAgg) Finalize(cur any) any {
	return cur.(*setState).items
}

// uniqueAgg collects values not semantically equal to one already held.
type uniqueAgg struct{}

func (uniqueAgg) Initial(v any) (any, error) { return []any{v}, nil }
func (uniqueAgg) Apply(cur, inc any) (any, error) {
	vs := cur.([]any)
	if slices.ContainsFunc(vs, func(e any) bool { return Equal(e, inc) }) {
		return vs, nil
	}
	return append(vs, inc), nil
}
