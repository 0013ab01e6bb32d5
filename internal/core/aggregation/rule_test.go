package aggregation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRule(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFileSystemRuleRepository_Load(t *testing.T) {
	dir := t.TempDir()
	writeRule(t, dir, "fruit.yaml", `
name: "fruit_by_letter"
key_field: "letter"
value_field: "name"
operator: "list"
`)
	writeRule(t, dir, "pairs.yml", `
name: "count_pairs"
operator: "count"
`)
	writeRule(t, dir, "empty.yaml", "# nothing here\n")
	writeRule(t, dir, "notes.txt", "name: ignored\noperator: count\n")

	repo, err := NewFileSystemRuleRepository(dir)
	require.NoError(t, err)

	rules := repo.GetRules()
	require.Len(t, rules, 2)
	require.Equal(t, "count_pairs", rules[0].Name)
	require.Equal(t, "fruit_by_letter", rules[1].Name)
	require.Len(t, rules[1].Fingerprint, 64)

	rule, err := repo.Get(context.Background(), "fruit_by_letter")
	require.NoError(t, err)
	require.Equal(t, "letter", rule.KeyField)
	require.Equal(t, "name", rule.ValueField)
	require.Equal(t, OpList, rule.Operator)

	_, err = repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrRuleNotFound)

	counts, err := repo.List(context.Background(), OpCount)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	require.Equal(t, "count_pairs", counts[0].Name)
}

func TestFileSystemRuleRepository_MissingDirIsEmpty(t *testing.T) {
	repo, err := NewFileSystemRuleRepository(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Empty(t, repo.GetRules())
}

func TestFileSystemRuleRepository_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name:  "unknown operator",
			files: map[string]string{"a.yaml": "name: a\noperator: median\n"},
			want:  "unknown aggregation operator",
		},
		{
			name:  "numeric operator without value field",
			files: map[string]string{"a.yaml": "name: a\nkey_field: k\noperator: sum\n"},
			want:  "requires value_field",
		},
		{
			name:  "value field without key field",
			files: map[string]string{"a.yaml": "name: a\nvalue_field: v\noperator: list\n"},
			want:  "value_field requires key_field",
		},
		{
			name: "duplicate names",
			files: map[string]string{
				"a.yaml": "name: dup\noperator: count\n",
				"b.yaml": "name: dup\noperator: list\n",
			},
			want: "duplicate rule name",
		},
		{
			name:  "malformed yaml",
			files: map[string]string{"a.yaml": "name: [unterminated\n"},
			want:  "parsing rule file",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tc.files {
				writeRule(t, dir, name, body)
			}
			_, err := NewFileSystemRuleRepository(dir)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFileSystemRuleRepository_PathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\noperator: count\n"), 0o644))

	_, err := NewFileSystemRuleRepository(path)
	require.ErrorContains(t, err, "is not a directory")
}

func TestInMemoryRuleRepository(t *testing.T) {
	repo := NewInMemoryRuleRepository(
		AggregationRule{Name: "b", Operator: OpSet},
		AggregationRule{Name: "a", Operator: OpCount},
	)

	rules := repo.GetRules()
	require.Equal(t, "a", rules[0].Name)
	require.Equal(t, "b", rules[1].Name)

	rule, err := repo.Get(context.Background(), "b")
	require.NoError(t, err)
	require.Equal(t, OpSet, rule.Operator)

	_, err = repo.Get(context.Background(), "c")
	require.ErrorIs(t, err, ErrRuleNotFound)

	all, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}
