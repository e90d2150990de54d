package fluid

import (
	"testing"

	"github.com/stretchr/testify/require"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

func TestBuildTypeScale(t *testing.T) {
	t.Parallel()

	entries, err := BuildTypeScale(TypeScale{
		BaseMin:     16,
		BaseMax:     18,
		RatioMin:    1.2,
		RatioMax:    1.25,
		Steps:       []string{"sm", "base", "lg", "xl"},
		BaseStep:    "base",
		LabelPrefix: "fs-",
		FirstID:     10,
	})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label)
	}
	require.Equal(t, []string{"fs-sm", "fs-base", "fs-lg", "fs-xl"}, labels)
	require.Equal(t, 10, entries[0].ID)
	require.Equal(t, 13, entries[3].ID)

	base := entries[1].Properties[0]
	require.Equal(t, PropertyFontSize, base.Property)
	require.InDelta(t, 16, base.Min, 1e-9)
	require.InDelta(t, 18, base.Max, 1e-9)

	small := entries[0].Properties[0]
	require.InDelta(t, 16/1.2, small.Min, 1e-9)
	require.InDelta(t, 18/1.25, small.Max, 1e-9)

	xl := entries[3].Properties[0]
	require.InDelta(t, 16*1.2*1.2, xl.Min, 1e-9)
	require.InDelta(t, 18*1.25*1.25, xl.Max, 1e-9)
}

func TestBuildTypeScaleDefaultsBaseToFirstStep(t *testing.T) {
	t.Parallel()

	entries, err := BuildTypeScale(TypeScale{BaseMin: 16, BaseMax: 20, RatioMin: 1.5, RatioMax: 1.5, Steps: []string{"p", "h3"}})
	require.NoError(t, err)
	require.InDelta(t, 16, entries[0].Properties[0].Min, 1e-9)
	require.InDelta(t, 24, entries[1].Properties[0].Min, 1e-9)
	require.InDelta(t, 30, entries[1].Properties[0].Max, 1e-9)
}

func TestBuildTypeScaleValidation(t *testing.T) {
	t.Parallel()

	valid := TypeScale{BaseMin: 16, BaseMax: 18, RatioMin: 1.2, RatioMax: 1.25, Steps: []string{"a", "b"}}

	cases := []struct {
		name   string
		mutate func(ts *TypeScale)
	}{
		{name: "ratio below one", mutate: func(ts *TypeScale) { ts.RatioMin = 0.9 }},
		{name: "ratio above three", mutate: func(ts *TypeScale) { ts.RatioMax = 3.5 }},
		{name: "zero base", mutate: func(ts *TypeScale) { ts.BaseMin = 0 }},
		{name: "no steps", mutate: func(ts *TypeScale) { ts.Steps = nil }},
		{name: "duplicate steps", mutate: func(ts *TypeScale) { ts.Steps = []string{"a", "a"} }},
		{name: "unknown base step", mutate: func(ts *TypeScale) { ts.BaseStep = "c" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ts := valid
			ts.Steps = append([]string(nil), valid.Steps...)
			tc.mutate(&ts)
			_, err := BuildTypeScale(ts)
			require.ErrorIs(t, err, fcerrors.ErrInvalidRange)
		})
	}
}
