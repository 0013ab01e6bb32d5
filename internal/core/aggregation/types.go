package aggregation

// Supported aggregation operators.
const (
	OpCount  = "count"
	OpSum    = "sum"
	OpAvg    = "avg"
	OpMin    = "min"
	OpMax    = "max"
	OpList   = "list"
	OpSet    = "set"
	OpUnique = "unique"
)

// Entry is one group of a Result.
type Entry struct {
	Key   any `json:"key"`
	Value any `json:"value"`
}

// Result holds the groups produced by evaluating a rule, in first-seen key order.
type Result struct {
	Rule        string  `json:"rule"`
	Operator    string  `json:"operator"`
	RecordCount int     `json:"record_count"`
	Groups      []Entry `json:"groups"`
}

// Map returns the groups keyed by group key.
func (r *Result) Map() map[any]any {
	out := make(map[any]any, len(r.Groups))
	for _, e := range r.Groups {
		out[e.Key] = e.Value
	}
	return out
}
