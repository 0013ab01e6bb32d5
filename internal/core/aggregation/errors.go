package aggregation

import "errors"

var (
	// ErrShape is returned when a record does not have the shape the rule
	// expects: a [key, value] pair without key_field, an object with it.
	ErrShape = errors.New("record has wrong shape")
	// ErrOperator is returned when a value does not support the operator,
	// e.g. summing a string.
	ErrOperator        = errors.New("value not supported by operator")
	ErrMissingField    = errors.New("record field missing")
	ErrUnhashableKey   = errors.New("group key is not hashable")
	ErrUnknownOperator = errors.New("unknown aggregation operator")
	ErrRuleNotFound    = errors.New("aggregation rule not found")
	ErrInvalidRule     = errors.New("invalid aggregation rule")
)
