package aggregation

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aevon-lab/groupby/groupby"
)

// Evaluate groups records according to rule in a single pass.
// Errors wrap ErrShape, ErrMissingField, ErrUnhashableKey or ErrOperator and
// carry the index of the failing record as a *groupby.CallbackError.
func Evaluate(rule AggregationRule, records []any) (*Result, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	agg := Operators[rule.Operator]

	groups, err := groupby.TryGenericBy(slices.Values(records), rule.keyOf,
		func(cur any, present bool, rec any) (any, error) {
			v, err := rule.valueOf(rec)
			if err != nil {
				return nil, err
			}
			if !present {
				return agg.Initial(v)
			}
			return agg.Apply(cur, v)
		})
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", rule.Name, err)
	}

	fin, _ := agg.(Finalizer)
	res := &Result{
		Rule:        rule.Name,
		Operator:    rule.Operator,
		RecordCount: len(records),
		Groups:      make([]Entry, 0, groups.Len()),
	}
	for k, v := range groups.All() {
		if fin != nil {
			v = fin.Finalize(v)
		}
		res.Groups = append(res.Groups, Entry{Key: k, Value: v})
	}

	slog.Debug("[Evaluate] Grouped records",
		"rule", rule.Name,
		"operator", rule.Operator,
		"records", len(records),
		"groups", len(res.Groups),
	)
	return res, nil
}

func (r AggregationRule) keyOf(rec any) (any, error) {
	var raw any
	if r.KeyField == "" {
		pair, ok := rec.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: expected [key, value] pair, got %s", ErrShape, describe(rec))
		}
		raw = pair[0]
	} else {
		obj, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected object, got %s", ErrShape, describe(rec))
		}
		if raw, ok = obj[r.KeyField]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, r.KeyField)
		}
	}
	return NormalizeKey(raw)
}

// valueOf runs after keyOf has accepted the record's shape.
func (r AggregationRule) valueOf(rec any) (any, error) {
	if r.KeyField == "" {
		return rec.([]any)[1], nil
	}
	if r.ValueField == "" {
		return rec, nil
	}
	v, ok := rec.(map[string]any)[r.ValueField]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, r.ValueField)
	}
	return v, nil
}

func describe(v any) string {
	if s, ok := v.([]any); ok {
		return fmt.Sprintf("array of %d", len(s))
	}
	return fmt.Sprintf("%T", v)
}
