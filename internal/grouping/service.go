package grouping

import (
	"context"
	"fmt"

	coreagg "github.com/aevon-lab/groupby/internal/core/aggregation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// adHocRuleName labels results of inline rules.
const adHocRuleName = "adhoc"

// Service evaluates grouping rules over request-supplied records.
type Service struct {
	rules            coreagg.RuleRepository
	maxBodySizeBytes int
	newRequestID     func() string
}

func NewService(rules coreagg.RuleRepository, maxBodySizeMB int) *Service {
	if rules == nil {
		panic("grouping: rule repository must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		rules:            rules,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		newRequestID:     uuid.NewString,
	}
}

// RegisterRoutes registers the grouping service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/rules", s.HandleListRules)
	r.POST("/v1/groupby", s.HandleGroupByAdHoc)
	r.POST("/v1/groupby/:rule", s.HandleGroupByRule)
}

// EvaluateRule looks up a named rule and applies it to records.
func (s *Service) EvaluateRule(ctx context.Context, name string, records []any) (*coreagg.Result, error) {
	rule, err := s.rules.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup rule: %w", err)
	}
	return coreagg.Evaluate(*rule, records)
}

// EvaluateAdHoc applies an inline rule to records.
func (s *Service) EvaluateAdHoc(req AdHocRequest) (*coreagg.Result, error) {
	rule := coreagg.AggregationRule{
		Name:       adHocRuleName,
		KeyField:   req.KeyField,
		ValueField: req.ValueField,
		Operator:   req.Operator,
	}
	return coreagg.Evaluate(rule, req.Records)
}

// ListRules returns summaries of the loaded rules, sorted by name.
func (s *Service) ListRules(ctx context.Context, operator string) ([]RuleSummary, error) {
	rules, err := s.rules.List(ctx, operator)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	out := make([]RuleSummary, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleSummary{
			Name:        r.Name,
			KeyField:    r.KeyField,
			ValueField:  r.ValueField,
			Operator:    r.Operator,
			Fingerprint: r.Fingerprint,
		})
	}
	return out, nil
}
