package aggregation

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// AggregationRule defines a single grouping rule.
// Without KeyField records are [key, value] pairs; with it records are
// objects and the key is read from that field.
type AggregationRule struct {
	Name        string `yaml:"name" json:"name"`
	KeyField    string `yaml:"key_field" json:"key_field,omitempty"`
	ValueField  string `yaml:"value_field" json:"value_field,omitempty"` // empty: the whole record
	Operator    string `yaml:"operator" json:"operator"`
	Fingerprint string `yaml:"-" json:"fingerprint,omitempty"` // SHA-256 of the raw YAML file
}

// Validate checks the rule definition without touching any records.
func (r AggregationRule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidRule)
	}
	if !ValidOperator(r.Operator) {
		return fmt.Errorf("rule %q: %w %q", r.Name, ErrUnknownOperator, r.Operator)
	}
	if r.KeyField == "" && r.ValueField != "" {
		return fmt.Errorf("rule %q: %w: value_field requires key_field", r.Name, ErrInvalidRule)
	}
	if r.KeyField != "" && r.ValueField == "" && NumericOperator(r.Operator) {
		return fmt.Errorf("rule %q: %w: operator %q requires value_field", r.Name, ErrInvalidRule, r.Operator)
	}
	return nil
}

// RuleRepository defines the interface for loading aggregation rules.
type RuleRepository interface {
	// Get returns the rule with the given name, or ErrRuleNotFound.
	Get(ctx context.Context, name string) (*AggregationRule, error)

	// List returns all loaded rules, optionally filtered by operator.
	List(ctx context.Context, operator string) ([]AggregationRule, error)

	// GetRules returns all rules sorted by name.
	GetRules() []AggregationRule
}

// FileSystemRuleRepository loads aggregation rules from *.yaml files in a directory.
// Each file contains exactly one rule at the top level. Rules are loaded once at
// startup and cached in memory.
type FileSystemRuleRepository struct {
	dir   string
	rules map[string]AggregationRule // keyed by Name
}

// NewFileSystemRuleRepository creates a new repository and eagerly loads all rules
// from dir. Returns an error if any rule file is malformed or invalid.
func NewFileSystemRuleRepository(dir string) (*FileSystemRuleRepository, error) {
	repo := &FileSystemRuleRepository{
		dir:   dir,
		rules: make(map[string]AggregationRule),
	}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *FileSystemRuleRepository) load() error {
	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil // no rules directory: zero rules configured
	}
	if err != nil {
		return fmt.Errorf("aggregation rule dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("aggregation rule path %q is not a directory", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("reading aggregation rule dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(r.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading rule file %s: %w", path, err)
		}

		var rule AggregationRule
		if err := yaml.Unmarshal(data, &rule); err != nil {
			return fmt.Errorf("parsing rule file %s: %w", path, err)
		}
		if rule.Name == "" {
			continue // skip empty / comment-only files
		}
		if err := rule.Validate(); err != nil {
			return err
		}
		if _, exists := r.rules[rule.Name]; exists {
			return fmt.Errorf("rule %q: duplicate rule name (check multiple YAML files)", rule.Name)
		}

		rule.Fingerprint = fmt.Sprintf("%x", sha256.Sum256(data))
		r.rules[rule.Name] = rule
	}
	return nil
}

// Get returns the rule with the given name, or ErrRuleNotFound.
func (r *FileSystemRuleRepository) Get(_ context.Context, name string) (*AggregationRule, error) {
	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRuleNotFound, name)
	}
	return &rule, nil
}

// List returns all loaded rules, optionally filtered by operator.
func (r *FileSystemRuleRepository) List(_ context.Context, operator string) ([]AggregationRule, error) {
	return filterRules(r.GetRules(), operator), nil
}

// GetRules returns all rules sorted by name.
func (r *FileSystemRuleRepository) GetRules() []AggregationRule {
	return sortedRules(r.rules)
}

// InMemoryRuleRepository serves a fixed set of rules. Used for ad hoc
// evaluation and tests.
type InMemoryRuleRepository struct {
	rules map[string]AggregationRule
}

// NewInMemoryRuleRepository creates a repository holding rules.
func NewInMemoryRuleRepository(rules ...AggregationRule) *InMemoryRuleRepository {
	repo := &InMemoryRuleRepository{
		rules: make(map[string]AggregationRule, len(rules)),
	}
	for _, rule := range rules {
		repo.rules[rule.Name] = rule
	}
	return repo
}

func (r *InMemoryRuleRepository) Get(_ context.Context, name string) (*AggregationRule, error) {
	if rule, ok := r.rules[name]; ok {
		return &rule, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrRuleNotFound, name)
}

func (r *InMemoryRuleRepository) List(_ context.Context, operator string) ([]AggregationRule, error) {
	return filterRules(r.GetRules(), operator), nil
}

func (r *InMemoryRuleRepository) GetRules() []AggregationRule {
	return sortedRules(r.rules)
}

func sortedRules(rules map[string]AggregationRule) []AggregationRule {
	out := make([]AggregationRule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func filterRules(rules []AggregationRule, operator string) []AggregationRule {
	if operator == "" {
		return rules
	}
	var out []AggregationRule
	for _, rule := range rules {
		if rule.Operator == operator {
			out = append(out, rule)
		}
	}
	return out
}
