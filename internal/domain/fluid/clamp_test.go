package fluid

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

func TestGenerateClamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		minValue float64
		maxValue float64
		minVp    float64
		maxVp    float64
		unit     Unit
		want     string
	}{
		{name: "px body size", minValue: 16, maxValue: 20, minVp: 375, maxVp: 1620, unit: UnitPx, want: "clamp(16px, calc(14.80px + 0.3213vw), 20px)"},
		{name: "rem body size", minValue: 16, maxValue: 20, minVp: 375, maxVp: 1620, unit: UnitRem, want: "clamp(1rem, calc(0.9247rem + 0.3213vw), 1.25rem)"},
		{name: "zero intercept drops calc", minValue: 3.75, maxValue: 16.2, minVp: 375, maxVp: 1620, unit: UnitPx, want: "clamp(4px, 1.0000vw, 16px)"},
		{name: "negative slope is kept", minValue: 20, maxValue: 16, minVp: 375, maxVp: 1620, unit: UnitPx, want: "clamp(20px, calc(21.20px + -0.3213vw), 16px)"},
		{name: "constant px", minValue: 16, maxValue: 16, minVp: 375, maxVp: 1620, unit: UnitPx, want: "16px"},
		{name: "constant rem", minValue: 18, maxValue: 18, minVp: 375, maxVp: 1620, unit: UnitRem, want: "1.125rem"},
		{name: "constant zero has no unit", minValue: 0, maxValue: 0, minVp: 375, maxVp: 1620, unit: UnitRem, want: "0"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := GenerateClamp(tc.minValue, tc.maxValue, tc.minVp, tc.maxVp, tc.unit)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateClampConstantNeverWraps(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 1, 12.5, 16, 48, 200} {
		for _, unit := range []Unit{UnitPx, UnitRem} {
			got, err := GenerateClamp(v, v, 320, 1440, unit)
			require.NoError(t, err)
			require.NotContains(t, got, "clamp(")
			require.NotContains(t, got, "calc(")
		}
	}
}

func TestGenerateClampRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		call func() error
		kind error
	}{
		{name: "zero width span", call: func() error { _, err := GenerateClamp(16, 20, 800, 800, UnitPx); return err }, kind: fcerrors.ErrInvalidRange},
		{name: "reversed span", call: func() error { _, err := GenerateClamp(16, 20, 1620, 375, UnitPx); return err }, kind: fcerrors.ErrInvalidRange},
		{name: "zero viewport", call: func() error { _, err := GenerateClamp(16, 20, 0, 375, UnitPx); return err }, kind: fcerrors.ErrInvalidRange},
		{name: "negative value", call: func() error { _, err := GenerateClamp(-2, 20, 375, 1620, UnitPx); return err }, kind: fcerrors.ErrInvalidRange},
		{name: "unknown unit", call: func() error { _, err := GenerateClamp(16, 20, 375, 1620, Unit("em")); return err }, kind: fcerrors.ErrInvalidUnit},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.call(), tc.kind)
		})
	}
}

var clampPattern = regexp.MustCompile(`^clamp\(([-\d.]+)(px|rem), (?:calc\(([-\d.]+)(?:px|rem) \+ ([-\d.]+)vw\)|([-\d.]+)vw), ([-\d.]+)(px|rem)\)$`)

// evaluatePreferred substitutes a viewport into the preferred expression and
// returns the result in the expression's unit.
func evaluatePreferred(t *testing.T, expr string, viewport float64) (float64, string) {
	t.Helper()

	m := clampPattern.FindStringSubmatch(expr)
	require.NotNil(t, m, "unexpected clamp grammar: %s", expr)
	unit := m[2]

	var intercept, slope float64
	var err error
	if m[3] != "" {
		intercept, err = strconv.ParseFloat(m[3], 64)
		require.NoError(t, err)
		slope, err = strconv.ParseFloat(m[4], 64)
		require.NoError(t, err)
	} else {
		slope, err = strconv.ParseFloat(m[5], 64)
		require.NoError(t, err)
	}

	slopeInUnit := slope * viewport / 100
	if unit == string(UnitRem) {
		slopeInUnit /= BaseFontSize
	}
	return intercept + slopeInUnit, unit
}

func TestGenerateClampIsContinuousAtAnchors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		minValue, maxValue, minVp, maxVp float64
	}{
		{16, 20, 375, 1620},
		{14, 18, 320, 1440},
		{24, 64, 360, 1920},
		{12, 13, 200, 5000},
		{40, 28, 480, 1280},
		{0, 8, 375, 1620},
	}

	for _, tc := range cases {
		for _, unit := range []Unit{UnitPx, UnitRem} {
			expr, err := GenerateClamp(tc.minValue, tc.maxValue, tc.minVp, tc.maxVp, unit)
			require.NoError(t, err)

			wantMin, err := Convert(tc.minValue, unit)
			require.NoError(t, err)
			wantMax, err := Convert(tc.maxValue, unit)
			require.NoError(t, err)

			gotMin, gotUnit := evaluatePreferred(t, expr, tc.minVp)
			require.Equal(t, string(unit), gotUnit)
			require.InDelta(t, wantMin, gotMin, 0.01, expr)

			gotMax, _ := evaluatePreferred(t, expr, tc.maxVp)
			require.InDelta(t, wantMax, gotMax, 0.01, expr)
		}
	}
}

func TestFormulaResolve(t *testing.T) {
	t.Parallel()

	f, err := NewFormula(16, 20, 375, 1620)
	require.NoError(t, err)

	require.InDelta(t, 16, f.Resolve(375), 1e-9)
	require.InDelta(t, 20, f.Resolve(1620), 1e-9)
	require.InDelta(t, 18, f.Resolve(997.5), 1e-9)
	require.Equal(t, 16.0, f.Resolve(200))
	require.Equal(t, 20.0, f.Resolve(2560))
}

func TestFormulaResolveFollowsClampOrderForNegativeSlope(t *testing.T) {
	t.Parallel()

	f, err := NewFormula(20, 16, 375, 1620)
	require.NoError(t, err)

	// clamp(20px, ..., 16px) always yields its minimum.
	require.Equal(t, 20.0, f.Resolve(375))
	require.Equal(t, 20.0, f.Resolve(1620))
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	// Rem values trim trailing zeros on purpose: 16px is "1rem", never "1.000rem".
	for px, want := range map[float64]string{16: "1rem", 20: "1.25rem", 24: "1.5rem", 17: "1.063rem"} {
		got, err := FormatValue(px, UnitRem)
		require.NoError(t, err)
		require.Equal(t, want, got, "%gpx", px)
	}

	got, err := FormatValue(24, UnitPx)
	require.NoError(t, err)
	require.Equal(t, "24px", got)

	got, err = FormatValue(0, UnitPx)
	require.NoError(t, err)
	require.Equal(t, "0", got)

	_, err = FormatValue(-4, UnitPx)
	require.ErrorIs(t, err, fcerrors.ErrInvalidUnit)
}
