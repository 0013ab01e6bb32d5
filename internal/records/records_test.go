package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		want   []any
	}{
		{
			name:   "json pairs",
			format: FormatJSON,
			data:   `[[3, 1], ["a", "x"]]`,
			want:   []any{[]any{3.0, 1.0}, []any{"a", "x"}},
		},
		{
			name:   "json objects",
			format: FormatJSON,
			data:   `[{"name": "apple", "n": 2}]`,
			want:   []any{map[string]any{"name": "apple", "n": 2.0}},
		},
		{
			name:   "json lines",
			format: FormatJSONLines,
			data:   "{\"k\": 1}\n{\"k\": 2}\n",
			want:   []any{map[string]any{"k": 1.0}, map[string]any{"k": 2.0}},
		},
		{
			name:   "empty json lines",
			format: FormatJSONLines,
			data:   "",
			want:   []any{},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			data:   "- [x, 1]\n- name: apple\n  n: 2\n",
			want:   []any{[]any{"x", 1}, map[string]any{"name": "apple", "n": 2}},
		},
		{
			name:   "empty yaml",
			format: FormatYAML,
			data:   "",
			want:   []any{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.data), tc.format)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`{"k": 1}`), FormatJSON)
	require.ErrorIs(t, err, ErrNotSequence)

	_, err = Decode([]byte("k: 1\n"), FormatYAML)
	require.ErrorIs(t, err, ErrNotSequence)

	_, err = Decode([]byte(`[1,`), FormatJSON)
	require.ErrorContains(t, err, "invalid json")

	_, err = Decode([]byte("{\"k\": 1}\n{oops}\n"), FormatJSONLines)
	require.ErrorContains(t, err, "record 2")

	_, err = Decode([]byte(`[]`), Format("csv"))
	require.ErrorContains(t, err, "unsupported records format")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fruit.yml")
	require.NoError(t, os.WriteFile(path, []byte("- [a, apple]\n- [b, banana]\n"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = ReadFile(filepath.Join(dir, "fruit.csv"))
	require.ErrorContains(t, err, "unsupported records file extension")

	_, err = ReadFile(filepath.Join(dir, "absent.json"))
	require.ErrorContains(t, err, "reading records file")
}
