package aggregation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    decimal.Decimal
		wantErr bool
	}{
		{name: "float64", in: 12.5, want: decimal.RequireFromString("12.5")},
		{name: "float32", in: float32(7.25), want: decimal.RequireFromString("7.25")},
		{name: "int", in: 7, want: decimal.NewFromInt(7)},
		{name: "int32", in: int32(8), want: decimal.NewFromInt(8)},
		{name: "int64", in: int64(9), want: decimal.NewFromInt(9)},
		{name: "uint64", in: uint64(10), want: decimal.NewFromInt(10)},
		{name: "decimal string", in: "42.125", want: decimal.RequireFromString("42.125")},
		{name: "text", in: "not-a-number", wantErr: true},
		{name: "bool", in: true, wantErr: true},
		{name: "nil", in: nil, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToDecimal(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrOperator)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "want=%s got=%s", tc.want, got)
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	k1, err := NormalizeKey(1)
	require.NoError(t, err)
	k2, err := NormalizeKey(1.0)
	require.NoError(t, err)
	require.Equal(t, k1, k2)

	k, err := NormalizeKey("a")
	require.NoError(t, err)
	require.Equal(t, "a", k)

	k, err = NormalizeKey(nil)
	require.NoError(t, err)
	require.Nil(t, k)

	_, err = NormalizeKey([]any{1})
	require.ErrorIs(t, err, ErrUnhashableKey)
	_, err = NormalizeKey(map[string]any{})
	require.ErrorIs(t, err, ErrUnhashableKey)

	k, err = NormalizeKey(2.5)
	require.NoError(t, err)
	require.Equal(t, 2.5, k)

	k, err = NormalizeKey(uint64(math.MaxUint64))
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), k)

	big, err := NormalizeKey(int64(1)<<53 + 1)
	require.NoError(t, err)
	require.NotEqual(t, float64(1<<53), big)
	require.Equal(t, int64(1)<<53+1, big)

	k, err = NormalizeKey(math.Inf(-1))
	require.NoError(t, err)
	require.Equal(t, math.Inf(-1), k)

	k, err = NormalizeKey(math.NaN())
	require.NoError(t, err)
	require.True(t, math.IsNaN(k.(float64)))
}

func TestToDecimal_NonFinite(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), math.Inf(-1), float32(math.Inf(1))} {
		_, err := ToDecimal(v)
		require.ErrorIs(t, err, ErrOperator, "%v", v)
	}
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(1, 1.0))
	require.True(t, Equal("a", "a"))
	require.True(t, Equal(nil, nil))
	require.True(t, Equal([]any{1, "x"}, []any{1.0, "x"}))
	require.True(t, Equal(map[string]any{"a": []any{2}}, map[string]any{"a": []any{2.0}}))

	require.True(t, Equal(math.Inf(1), math.Inf(1)))
	require.False(t, Equal(math.NaN(), math.NaN()))
	require.False(t, Equal(math.Inf(1), 1))

	require.False(t, Equal(1, "1"))
	require.False(t, Equal([]any{1}, []any{1, 2}))
	require.False(t, Equal(map[string]any{"a": 1}, map[string]any{"b": 1}))
	require.False(t, Equal([]any{1}, map[string]any{}))
}
