package fluid

import (
	"fmt"
	"math"
	"strings"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// BaseFontSize is the root font size used for px/rem conversion.
const BaseFontSize = 16.0

// Unit is the output unit of generated sizes.
type Unit string

const (
	UnitPx  Unit = "px"
	UnitRem Unit = "rem"
)

// ParseUnit resolves a unit key such as "px" or " REM ".
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case UnitPx:
		return UnitPx, nil
	case UnitRem:
		return UnitRem, nil
	default:
		return "", fcerrors.NewUnitError(s, "supported units are px and rem")
	}
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	return u == UnitPx || u == UnitRem
}

// PxToRem converts a pixel size to rem.
func PxToRem(px float64) (float64, error) {
	if err := checkMagnitude(px); err != nil {
		return 0, err
	}
	return px / BaseFontSize, nil
}

// RemToPx converts a rem size to pixels.
func RemToPx(rem float64) (float64, error) {
	if err := checkMagnitude(rem); err != nil {
		return 0, err
	}
	return rem * BaseFontSize, nil
}

// Convert expresses a canonical px magnitude in unit.
func Convert(px float64, unit Unit) (float64, error) {
	switch unit {
	case UnitPx:
		if err := checkMagnitude(px); err != nil {
			return 0, err
		}
		return px, nil
	case UnitRem:
		return PxToRem(px)
	default:
		return 0, unitError(unit)
	}
}

func checkMagnitude(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fcerrors.NewUnitError("", "size must be a finite number")
	}
	if v < 0 {
		return fcerrors.NewUnitError("", fmt.Sprintf("size must not be negative, got %g", v))
	}
	return nil
}
