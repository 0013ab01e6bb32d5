package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	coreagg "github.com/aevon-lab/groupby/internal/core/aggregation"
	"github.com/aevon-lab/groupby/internal/grouping"
	"github.com/stretchr/testify/require"
)

func TestRunOnce(t *testing.T) {
	input := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(input, []byte("- [1, 1]\n- [3, 1]\n- [1, 1]\n"), 0o644))

	svc := grouping.NewService(coreagg.NewInMemoryRuleRepository(
		coreagg.AggregationRule{Name: "count_pairs", Operator: coreagg.OpCount},
	), 1)

	var out bytes.Buffer
	require.NoError(t, runOnce(svc, "count_pairs", input, &out))

	var res struct {
		Groups []struct {
			Key   float64 `json:"key"`
			Value int     `json:"value"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Groups, 2)
	require.Equal(t, 1.0, res.Groups[0].Key)
	require.Equal(t, 2, res.Groups[0].Value)

	require.ErrorContains(t, runOnce(svc, "count_pairs", "", &out), "-input is required")
	require.ErrorIs(t, runOnce(svc, "missing", input, &out), coreagg.ErrRuleNotFound)
}
