package contrast

import (
	"fmt"
	"math"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

const (
	maxSolverSteps = 100
	solverStepSize = 0.05
	// Backgrounds brighter than this push the foreground darker.
	darkerThreshold = 0.5
)

// ComplianceQuery asks for a foreground meeting TargetRatio against
// Background.
type ComplianceQuery struct {
	Background  ColorSample `json:"background"`
	Foreground  ColorSample `json:"foreground"`
	TargetRatio float64     `json:"target_ratio"`
}

// NewQuery parses both colors into a query.
func NewQuery(background, foreground string, target float64) (ComplianceQuery, error) {
	bg, err := ParseColor(background)
	if err != nil {
		return ComplianceQuery{}, fmt.Errorf("background: %w", err)
	}
	fg, err := ParseColor(foreground)
	if err != nil {
		return ComplianceQuery{}, fmt.Errorf("foreground: %w", err)
	}
	return ComplianceQuery{Background: bg, Foreground: fg, TargetRatio: target}, nil
}

// Validate checks the query's colors and target.
func (q ComplianceQuery) Validate() error {
	if err := q.Background.Validate(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if err := q.Foreground.Validate(); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if math.IsNaN(q.TargetRatio) || q.TargetRatio < MinRatio || q.TargetRatio > MaxRatio {
		return fcerrors.NewRangeError("target_ratio", fmt.Sprintf("target must be between %g and %g, got %g", MinRatio, MaxRatio, q.TargetRatio))
	}
	return nil
}

// ComplianceResult is the solver's answer. MetTarget=false is a normal
// outcome meaning no scaled foreground reached the target.
type ComplianceResult struct {
	AchievedColor ColorSample `json:"achieved_color"`
	AchievedRatio float64     `json:"achieved_ratio"`
	MetTarget     bool        `json:"met_target"`
	// Steps is the number of scaling iterations evaluated; zero when the
	// foreground was already compliant.
	Steps     int  `json:"steps"`
	Saturated bool `json:"saturated"`
}

// Solve searches for the nearest compliant foreground by scaling every RGB
// channel of the foreground by the same factor, away from the background's
// luminance, in 5% steps.
func Solve(q ComplianceQuery) (ComplianceResult, error) {
	if err := q.Validate(); err != nil {
		return ComplianceResult{}, err
	}

	current := ContrastRatio(q.Background, q.Foreground)
	if current >= q.TargetRatio {
		return ComplianceResult{AchievedColor: q.Foreground, AchievedRatio: current, MetTarget: true}, nil
	}

	goDarker := q.Background.Luminance() > darkerThreshold
	fg := q.Foreground.RGB()

	var result ComplianceResult
	for step := 1; step <= maxSolverSteps; step++ {
		factor := 1 + float64(step)*solverStepSize
		if goDarker {
			factor = 1 - float64(step)*solverStepSize
		}

		rgb := RGB{R: scaleChannel(fg.R, factor), G: scaleChannel(fg.G, factor), B: scaleChannel(fg.B, factor)}
		candidate := FromRGB(rgb)
		ratio := ContrastRatio(q.Background, candidate)
		result = ComplianceResult{AchievedColor: candidate, AchievedRatio: ratio, MetTarget: ratio >= q.TargetRatio, Steps: step}

		if result.MetTarget {
			return result, nil
		}
		if saturated(rgb, goDarker) {
			result.Saturated = true
			return result, nil
		}
	}

	return result, nil
}

func scaleChannel(c uint8, factor float64) uint8 {
	v := math.Round(float64(c) * factor)
	return uint8(math.Max(0, math.Min(255, v)))
}

func saturated(rgb RGB, goDarker bool) bool {
	if goDarker {
		return rgb == RGB{}
	}
	return rgb == RGB{R: 255, G: 255, B: 255}
}
