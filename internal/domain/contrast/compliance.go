package contrast

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// WCAG 2.x contrast thresholds.
const (
	RatioAA       = 4.5
	RatioAAA      = 7.0
	RatioAALarge  = 3.0
	RatioAAALarge = 4.5
	MinRatio      = 1.0
	MaxRatio      = 21.0
)

// Level is the highest WCAG tier a ratio satisfies.
type Level string

const (
	LevelFail Level = "fail"
	LevelAA   Level = "AA"
	LevelAAA  Level = "AAA"
)

// Compliance summarizes which tiers a ratio satisfies for normal and large
// text.
type Compliance struct {
	Ratio      float64 `json:"ratio"`
	NormalText Level   `json:"normal_text"`
	LargeText  Level   `json:"large_text"`
}

// Evaluate grades a contrast ratio.
func Evaluate(ratio float64) Compliance {
	return Compliance{
		Ratio:      ratio,
		NormalText: grade(ratio, RatioAA, RatioAAA),
		LargeText:  grade(ratio, RatioAALarge, RatioAAALarge),
	}
}

// EvaluatePair grades the contrast between two samples.
func EvaluatePair(a, b ColorSample) Compliance {
	return Evaluate(ContrastRatio(a, b))
}

func grade(ratio, aa, aaa float64) Level {
	switch {
	case ratio >= aaa:
		return LevelAAA
	case ratio >= aa:
		return LevelAA
	default:
		return LevelFail
	}
}

// Distance returns the CIEDE2000 difference between two samples on the
// conventional 0-100 scale. Suggestions that keep hue drift stay small.
func Distance(a, b ColorSample) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100
}

func toColorful(c ColorSample) colorful.Color {
	rgb := c.RGB()
	return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}
