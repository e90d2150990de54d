package contrast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// RGB holds 8-bit color channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorSample is a color in canonical form: six uppercase hex digits
// without a leading '#'.
type ColorSample struct {
	Hex string `json:"hex"`
}

var (
	White = ColorSample{Hex: "FFFFFF"}
	Black = ColorSample{Hex: "000000"}
)

// NormalizeHex strips a leading '#', expands 3-digit shorthand and uppercases
// the result.
func NormalizeHex(s string) (string, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	hex = strings.ToUpper(hex)

	if len(hex) != 6 {
		return "", fcerrors.NewColorError(s, "expected 3 or 6 hex digits")
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789ABCDEF", c) {
			return "", fcerrors.NewColorError(s, fmt.Sprintf("%q is not a hex digit", c))
		}
	}
	return hex, nil
}

// ParseColor normalizes s into a ColorSample.
func ParseColor(s string) (ColorSample, error) {
	hex, err := NormalizeHex(s)
	if err != nil {
		return ColorSample{}, err
	}
	return ColorSample{Hex: hex}, nil
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) ColorSample {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexToRGB splits a normalized hex string into its channels.
func HexToRGB(hex string) (RGB, error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return RGB{}, err
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(normalized[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fcerrors.NewColorError(hex, err.Error())
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// FromRGB builds the canonical sample for rgb.
func FromRGB(rgb RGB) ColorSample {
	return ColorSample{Hex: fmt.Sprintf("%02X%02X%02X", rgb.R, rgb.G, rgb.B)}
}

// RGB returns the sample's channels. A zero-value or malformed sample yields
// black.
func (c ColorSample) RGB() RGB {
	rgb, err := HexToRGB(c.Hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// Luminance returns the WCAG relative luminance of the sample.
func (c ColorSample) Luminance() float64 {
	rgb := c.RGB()
	return RelativeLuminance(rgb.R, rgb.G, rgb.B)
}

// String renders the sample as #RRGGBB.
func (c ColorSample) String() string {
	return "#" + c.Hex
}

// Validate reports whether the sample is in canonical form.
func (c ColorSample) Validate() error {
	hex, err := NormalizeHex(c.Hex)
	if err != nil {
		return err
	}
	if hex != c.Hex {
		return fcerrors.NewColorError(c.Hex, "sample is not normalized")
	}
	return nil
}

// RelativeLuminance computes WCAG relative luminance from 8-bit channels.
func RelativeLuminance(r, g, b uint8) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two samples, in [1, 21].
func ContrastRatio(a, b ColorSample) float64 {
	return ratioOfLuminances(a.Luminance(), b.Luminance())
}

func ratioOfLuminances(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
