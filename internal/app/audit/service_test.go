package audit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/contrast"
	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

func TestAuditPreservesOrderAndReportsEachPair(t *testing.T) {
	t.Parallel()

	pairs := []Pair{
		{Name: "compliant", Background: "#FFFFFF", Foreground: "#000000", Target: 4.5},
		{Name: "fixable", Background: "#FFFFFF", Foreground: "#CCCCCC", Target: 4.5},
		{Name: "broken", Background: "#FFFFFF", Foreground: "#12", Target: 4.5},
		{Name: "stuck", Background: "#777777", Foreground: "#808080", Target: 7},
	}

	findings, err := NewService(nil, 2).Audit(context.Background(), pairs)
	require.NoError(t, err)
	require.Len(t, findings, 4)

	for i, f := range findings {
		require.Equal(t, pairs[i].Name, f.Name)
	}

	require.True(t, findings[0].Passed())
	require.Equal(t, 21.0, findings[0].Result.AchievedRatio)
	require.Equal(t, contrast.LevelAAA, findings[0].Before.NormalText)

	require.False(t, findings[1].Passed())
	require.True(t, findings[1].Result.MetTarget)
	require.Equal(t, contrast.LevelFail, findings[1].Before.NormalText)
	require.Equal(t, contrast.LevelAA, findings[1].After.NormalText)
	require.Greater(t, findings[1].Distance, 0.0)

	require.ErrorIs(t, findings[2].Err, fcerrors.ErrInvalidColor)

	require.NoError(t, findings[3].Err)
	require.False(t, findings[3].Result.MetTarget)
	require.True(t, findings[3].Result.Saturated)
}

func TestAuditManyPairsConcurrently(t *testing.T) {
	t.Parallel()

	pairs := make([]Pair, 0, 256)
	for i := 0; i < 256; i++ {
		pairs = append(pairs, Pair{
			Name:       fmt.Sprintf("pair-%03d", i),
			Background: "#FFFFFF",
			Foreground: fmt.Sprintf("#%02X%02X%02X", i, 255-i, (i*7)%256),
			Target:     4.5,
		})
	}

	findings, err := NewService(nil, 0).Audit(context.Background(), pairs)
	require.NoError(t, err)
	for i, f := range findings {
		require.Equal(t, pairs[i].Name, f.Name)
		require.NoError(t, f.Err)

		want, err := contrast.Solve(f.Query)
		require.NoError(t, err)
		require.Equal(t, want, f.Result)
	}
}

func TestAuditHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(nil, 1).Audit(ctx, []Pair{{Name: "x", Background: "#fff", Foreground: "#000", Target: 4.5}})
	require.ErrorIs(t, err, context.Canceled)
}
