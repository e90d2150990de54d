package fluid

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// Output precision per unit. Anchor values drop trailing zeros, the
// intercept and slope keep a fixed number of places.
const (
	anchorPlacesPx     = 0
	anchorPlacesRem    = 3
	interceptPlacesPx  = 2
	interceptPlacesRem = 4
	slopePlaces        = 4
)

// Formula is the linear function between two anchors:
// value(vw) = InterceptPx + SlopeVW * viewport / 100, bounded by the anchors.
type Formula struct {
	MinValuePx    float64
	MaxValuePx    float64
	MinViewportPx float64
	MaxViewportPx float64
	SlopeVW       float64
	InterceptPx   float64
}

// NewFormula validates the anchors and derives slope and intercept.
func NewFormula(minValuePx, maxValuePx, minViewportPx, maxViewportPx float64) (Formula, error) {
	if err := validateViewports(minViewportPx, maxViewportPx); err != nil {
		return Formula{}, err
	}
	if err := validateValue("min_value", minValuePx); err != nil {
		return Formula{}, err
	}
	if err := validateValue("max_value", maxValuePx); err != nil {
		return Formula{}, err
	}

	slope := (maxValuePx - minValuePx) / (maxViewportPx - minViewportPx) * 100
	return Formula{
		MinValuePx:    minValuePx,
		MaxValuePx:    maxValuePx,
		MinViewportPx: minViewportPx,
		MaxViewportPx: maxViewportPx,
		SlopeVW:       slope,
		InterceptPx:   minValuePx - slope*minViewportPx/100,
	}, nil
}

// Constant reports whether both anchors carry the same value.
func (f Formula) Constant() bool {
	return f.MinValuePx == f.MaxValuePx
}

// Resolve evaluates the expression at a viewport width the way a browser
// evaluates clamp(MIN, VAL, MAX), i.e. max(MIN, min(VAL, MAX)).
func (f Formula) Resolve(viewportPx float64) float64 {
	if f.Constant() {
		return f.MinValuePx
	}
	preferred := f.InterceptPx + f.SlopeVW*viewportPx/100
	return math.Max(f.MinValuePx, math.Min(preferred, f.MaxValuePx))
}

// CSS renders the formula in unit.
func (f Formula) CSS(unit Unit) (string, error) {
	if !unit.Valid() {
		return "", fmt.Errorf("render formula: %w", unitError(unit))
	}

	if f.Constant() {
		if f.MinValuePx == 0 {
			return "0", nil
		}
		return formatAnchor(f.MinValuePx, unit), nil
	}

	intercept := f.InterceptPx
	interceptPlaces := int32(interceptPlacesPx)
	if unit == UnitRem {
		intercept = f.InterceptPx / BaseFontSize
		interceptPlaces = interceptPlacesRem
	}
	interceptDec := decimal.NewFromFloat(intercept).Round(interceptPlaces)
	slope := decimal.NewFromFloat(f.SlopeVW).StringFixed(slopePlaces) + "vw"

	preferred := slope
	// Checked after rounding: an intercept that prints as zero is dropped.
	if !interceptDec.IsZero() {
		preferred = fmt.Sprintf("calc(%s%s + %s)", interceptDec.StringFixed(interceptPlaces), unit, slope)
	}

	return fmt.Sprintf("clamp(%s, %s, %s)", formatAnchor(f.MinValuePx, unit), preferred, formatAnchor(f.MaxValuePx, unit)), nil
}

// GenerateClamp turns an anchor pair into a clamp() expression, or a plain
// constant when both values are equal.
func GenerateClamp(minValuePx, maxValuePx, minViewportPx, maxViewportPx float64, unit Unit) (string, error) {
	if !unit.Valid() {
		return "", unitError(unit)
	}
	f, err := NewFormula(minValuePx, maxValuePx, minViewportPx, maxViewportPx)
	if err != nil {
		return "", err
	}
	return f.CSS(unit)
}

// FormatValue renders a canonical px magnitude in unit at anchor precision.
func FormatValue(px float64, unit Unit) (string, error) {
	if _, err := Convert(px, unit); err != nil {
		return "", err
	}
	if px == 0 {
		return "0", nil
	}
	return formatAnchor(px, unit), nil
}

func formatAnchor(px float64, unit Unit) string {
	if unit == UnitRem {
		return decimal.NewFromFloat(px/BaseFontSize).Round(anchorPlacesRem).String() + string(unit)
	}
	return decimal.NewFromFloat(px).Round(anchorPlacesPx).String() + string(unit)
}

func unitError(unit Unit) error {
	return fcerrors.NewUnitError(string(unit), "supported units are px and rem")
}
