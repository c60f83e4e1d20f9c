package scan_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oraclekit/ergoscan/scan"
)

func TestPredicateJSON(t *testing.T) {
	fixtures := []struct {
		name     string
		pred     scan.Predicate
		expected string
	}{
		{
			name:     "contains_asset",
			pred:     scan.ContainsAsset("aabb"),
			expected: `{"predicate":"containsAsset","assetId":"aabb"}`,
		},
		{
			name:     "equals_value",
			pred:     scan.EqualsValue("0008cd"),
			expected: `{"predicate":"equals","value":"0008cd"}`,
		},
		{
			name:     "equals_register",
			pred:     scan.EqualsRegister("R4", "07aabb"),
			expected: `{"predicate":"equals","register":"R4","value":"07aabb"}`,
		},
		{
			name: "and",
			pred: scan.And(
				scan.ContainsAsset("aabb"),
				scan.EqualsValue("0008cd"),
			),
			expected: `{
				"predicate": "and",
				"args": [
					{"predicate":"containsAsset","assetId":"aabb"},
					{"predicate":"equals","value":"0008cd"}
				]
			}`,
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			data, err := json.Marshal(f.pred)
			require.NoError(t, err)
			require.JSONEq(t, f.expected, string(data))
		})
	}
}

func TestPredicateRoundTrip(t *testing.T) {
	pred := scan.And(
		scan.ContainsAsset("aabb"),
		scan.EqualsValue("0008cd"),
		scan.EqualsRegister("R4", "07ccdd"),
	)

	data, err := json.Marshal(pred)
	require.NoError(t, err)

	var parsed scan.Predicate
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, pred, parsed)
}

func TestAndPreservesOrder(t *testing.T) {
	pred := scan.And(
		scan.EqualsValue("bb"),
		scan.ContainsAsset("aa"),
	)

	require.Len(t, pred.Args, 2)
	require.Equal(t, "equals", pred.Args[0].Predicate)
	require.Equal(t, "containsAsset", pred.Args[1].Predicate)
}

func TestAndCopiesArgs(t *testing.T) {
	preds := []scan.Predicate{scan.ContainsAsset("aa")}
	built := scan.And(preds...)

	preds[0] = scan.EqualsValue("bb")
	require.Equal(t, "containsAsset", built.Args[0].Predicate)
}
