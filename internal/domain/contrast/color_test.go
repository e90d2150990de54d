package contrast

import (
	"testing"

	"github.com/stretchr/testify/require"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

func TestNormalizeHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "#abc", want: "AABBCC"},
		{input: "abc", want: "AABBCC"},
		{input: "#1a2B3c", want: "1A2B3C"},
		{input: "  #ffffff ", want: "FFFFFF"},
		{input: "#abcd", wantErr: true},
		{input: "#12345", wantErr: true},
		{input: "#ggg", wantErr: true},
		{input: "", wantErr: true},
		{input: "##abc", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeHex(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, fcerrors.ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestHexToRGB(t *testing.T) {
	t.Parallel()

	rgb, err := HexToRGB("#3366CC")
	require.NoError(t, err)
	require.Equal(t, RGB{R: 0x33, G: 0x66, B: 0xCC}, rgb)

	require.Equal(t, "3366CC", FromRGB(rgb).Hex)
	require.Equal(t, "#3366CC", FromRGB(rgb).String())

	_, err = HexToRGB("nope")
	require.ErrorIs(t, err, fcerrors.ErrInvalidColor)
}

func TestRelativeLuminanceBounds(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, White.Luminance())
	require.Equal(t, 0.0, Black.Luminance())
	require.InDelta(t, 0.2159, MustParseColor("#808080").Luminance(), 1e-4)
}

func TestContrastRatio(t *testing.T) {
	t.Parallel()

	require.Equal(t, 21.0, ContrastRatio(White, Black))
	require.Equal(t, 21.0, ContrastRatio(Black, White))
	require.InDelta(t, 1.6059, ContrastRatio(White, MustParseColor("#CCCCCC")), 1e-4)
}

func TestContrastRatioIsSymmetricAndOneForSameColor(t *testing.T) {
	t.Parallel()

	samples := []string{"#000", "#fff", "#777777", "#3366CC", "#E91E63", "#00FF7F", "#123456", "#FEDCBA"}
	for _, a := range samples {
		ca := MustParseColor(a)
		require.Equal(t, 1.0, ContrastRatio(ca, ca), a)
		for _, b := range samples {
			cb := MustParseColor(b)
			require.Equal(t, ContrastRatio(ca, cb), ContrastRatio(cb, ca), "%s vs %s", a, b)
		}
	}
}

func TestColorSampleValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, MustParseColor("#abc").Validate())
	require.ErrorIs(t, ColorSample{Hex: "abc"}.Validate(), fcerrors.ErrInvalidColor)
	require.ErrorIs(t, ColorSample{}.Validate(), fcerrors.ErrInvalidColor)
}
