package contrast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ratio  float64
		normal Level
		large  Level
	}{
		{ratio: 21, normal: LevelAAA, large: LevelAAA},
		{ratio: 7, normal: LevelAAA, large: LevelAAA},
		{ratio: 5, normal: LevelAA, large: LevelAAA},
		{ratio: 4.5, normal: LevelAA, large: LevelAAA},
		{ratio: 3.5, normal: LevelFail, large: LevelAA},
		{ratio: 1.6, normal: LevelFail, large: LevelFail},
	}

	for _, tc := range cases {
		got := Evaluate(tc.ratio)
		require.Equal(t, tc.normal, got.NormalText, "ratio %v", tc.ratio)
		require.Equal(t, tc.large, got.LargeText, "ratio %v", tc.ratio)
	}

	pair := EvaluatePair(White, Black)
	require.Equal(t, 21.0, pair.Ratio)
	require.Equal(t, LevelAAA, pair.NormalText)
}

func TestDistance(t *testing.T) {
	t.Parallel()

	gray := MustParseColor("#777777")
	require.InDelta(t, 0, Distance(gray, gray), 1e-9)

	near := Distance(gray, MustParseColor("#787878"))
	far := Distance(Black, White)
	require.Greater(t, far, near)
	require.InDelta(t, Distance(White, gray), Distance(gray, White), 1e-9)
}
