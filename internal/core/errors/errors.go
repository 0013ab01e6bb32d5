package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidJsonError     = "invalid_json"
	HttpRuleNotFoundError    = "rule_not_found"
	HttpInvalidRuleError     = "invalid_rule"
	HttpAggregationError     = "aggregation_failed"
	HttpPayloadTooLargeError = "payload_too_large"
)

// ErrorResponse is the error response body for API errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
