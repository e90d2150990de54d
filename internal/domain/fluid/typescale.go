package fluid

import (
	"fmt"
	"math"
	"strings"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// Ratio bounds accepted for modular scales.
const (
	MinScaleRatio = 1.0
	MaxScaleRatio = 3.0
)

// TypeScale describes a modular type scale interpolated between a small
// viewport scale and a large viewport scale.
type TypeScale struct {
	BaseMin  float64
	BaseMax  float64
	RatioMin float64
	RatioMax float64
	// Steps are ordered smallest to largest.
	Steps []string
	// BaseStep names the step rendered at BaseMin/BaseMax. Defaults to the
	// first step.
	BaseStep    string
	LabelPrefix string
	FirstID     int
}

// BuildTypeScale expands the scale into font-size entries, one per step, in
// step order. Step i relative to the base step is BaseMin*RatioMin^i at the
// small viewport and BaseMax*RatioMax^i at the large one.
func BuildTypeScale(ts TypeScale) ([]SizeEntry, error) {
	if err := ts.validate(); err != nil {
		return nil, err
	}

	baseIndex := 0
	if ts.BaseStep != "" {
		baseIndex = indexOf(ts.Steps, ts.BaseStep)
	}

	entries := make([]SizeEntry, 0, len(ts.Steps))
	for i, step := range ts.Steps {
		exp := float64(i - baseIndex)
		minPx := ts.BaseMin * math.Pow(ts.RatioMin, exp)
		maxPx := ts.BaseMax * math.Pow(ts.RatioMax, exp)
		entries = append(entries, NewFontSizeEntry(ts.FirstID+i, ts.LabelPrefix+step, minPx, maxPx))
	}
	return entries, nil
}

func (ts TypeScale) validate() error {
	if err := validatePositive("base_min", ts.BaseMin); err != nil {
		return err
	}
	if err := validatePositive("base_max", ts.BaseMax); err != nil {
		return err
	}
	if err := validateRatio("ratio_min", ts.RatioMin); err != nil {
		return err
	}
	if err := validateRatio("ratio_max", ts.RatioMax); err != nil {
		return err
	}
	if len(ts.Steps) == 0 {
		return fcerrors.NewRangeError("steps", "at least one step is required")
	}
	seen := make(map[string]bool, len(ts.Steps))
	for _, step := range ts.Steps {
		if strings.TrimSpace(step) == "" {
			return fcerrors.NewRangeError("steps", "step names must not be empty")
		}
		if seen[step] {
			return fcerrors.NewRangeError("steps", fmt.Sprintf("duplicate step %q", step))
		}
		seen[step] = true
	}
	if ts.BaseStep != "" && !seen[ts.BaseStep] {
		return fcerrors.NewRangeError("base_step", fmt.Sprintf("base step %q is not one of the steps", ts.BaseStep))
	}
	return nil
}

func validateRatio(field string, ratio float64) error {
	if math.IsNaN(ratio) || ratio < MinScaleRatio || ratio > MaxScaleRatio {
		return fcerrors.NewRangeError(field, fmt.Sprintf("ratio must be between %.1f and %.1f, got %g", MinScaleRatio, MaxScaleRatio, ratio))
	}
	return nil
}

func validatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fcerrors.NewRangeError(field, fmt.Sprintf("value must be a positive number, got %g", v))
	}
	return nil
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
