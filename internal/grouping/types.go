package grouping

import coreagg "github.com/aevon-lab/groupby/internal/core/aggregation"

// AdHocRequest is the body of POST /v1/groupby: an inline rule plus its records.
type AdHocRequest struct {
	KeyField   string `json:"key_field"`
	ValueField string `json:"value_field"`
	Operator   string `json:"operator" binding:"required"`
	Records    []any  `json:"records"`
}

// GroupByResponse is returned by both grouping endpoints.
type GroupByResponse struct {
	RequestID string `json:"request_id"`
	coreagg.Result
}

// RuleSummary describes a loaded rule in GET /v1/rules.
type RuleSummary struct {
	Name        string `json:"name"`
	KeyField    string `json:"key_field,omitempty"`
	ValueField  string `json:"value_field,omitempty"`
	Operator    string `json:"operator"`
	Fingerprint string `json:"fingerprint,omitempty"`
}
