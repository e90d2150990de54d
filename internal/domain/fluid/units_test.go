package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

func TestPxRemRoundTrip(t *testing.T) {
	t.Parallel()

	rem, err := PxToRem(20)
	require.NoError(t, err)
	require.Equal(t, 1.25, rem)

	px, err := RemToPx(rem)
	require.NoError(t, err)
	require.Equal(t, 20.0, px)

	zero, err := PxToRem(0)
	require.NoError(t, err)
	require.Zero(t, zero)
}

func TestConversionRejectsInvalidMagnitudes(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := PxToRem(v)
		require.ErrorIs(t, err, fcerrors.ErrInvalidUnit)

		_, err = RemToPx(v)
		require.ErrorIs(t, err, fcerrors.ErrInvalidUnit)
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{input: "px", want: UnitPx},
		{input: " REM ", want: UnitRem},
		{input: "em", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseUnit(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, fcerrors.ErrInvalidUnit)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestConvertUnknownUnit(t *testing.T) {
	t.Parallel()

	_, err := Convert(16, Unit("vh"))
	require.ErrorIs(t, err, fcerrors.ErrInvalidUnit)
}
