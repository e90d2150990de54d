package fluid

import (
	"fmt"
	"math"
	"strings"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// ScaleAnchor is one end of the linear scaling function: a value (canonical
// px) reached at a viewport width (px).
type ScaleAnchor struct {
	Viewport float64 `json:"viewport" yaml:"viewport"`
	Value    float64 `json:"value" yaml:"value"`
}

// ScaleSettings describes the viewport span and output unit of a calculation.
// Anchor values are only meaningful for single-value calls; entries carry
// their own values.
type ScaleSettings struct {
	MinAnchor ScaleAnchor `json:"min_anchor" yaml:"min_anchor"`
	MaxAnchor ScaleAnchor `json:"max_anchor" yaml:"max_anchor"`
	Unit      Unit        `json:"unit" yaml:"unit"`
}

// Validate checks the invariants the generator depends on.
func (s ScaleSettings) Validate() error {
	if !s.Unit.Valid() {
		return unitError(s.Unit)
	}
	return validateViewports(s.MinAnchor.Viewport, s.MaxAnchor.Viewport)
}

// Clamp generates the clamp expression for the settings' own anchors.
func (s ScaleSettings) Clamp() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	return GenerateClamp(s.MinAnchor.Value, s.MaxAnchor.Value, s.MinAnchor.Viewport, s.MaxAnchor.Viewport, s.Unit)
}

// WithValues returns a copy of the settings anchored at a different value pair.
func (s ScaleSettings) WithValues(minPx, maxPx float64) ScaleSettings {
	clone := s
	clone.MinAnchor.Value = minPx
	clone.MaxAnchor.Value = maxPx
	return clone
}

func validateViewports(minVp, maxVp float64) error {
	if math.IsNaN(minVp) || math.IsInf(minVp, 0) || math.IsNaN(maxVp) || math.IsInf(maxVp, 0) {
		return fcerrors.NewRangeError("viewport", "viewports must be finite")
	}
	if minVp <= 0 || maxVp <= 0 {
		return fcerrors.NewRangeError("viewport", fmt.Sprintf("viewports must be positive, got %g and %g", minVp, maxVp))
	}
	if minVp == maxVp {
		return fcerrors.NewRangeError("viewport", fmt.Sprintf("zero-width viewport span at %gpx", minVp))
	}
	if minVp > maxVp {
		return fcerrors.NewRangeError("viewport", fmt.Sprintf("min viewport %gpx exceeds max viewport %gpx", minVp, maxVp))
	}
	return nil
}

func validateValue(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fcerrors.NewRangeError(field, "value must be finite")
	}
	if v < 0 {
		return fcerrors.NewRangeError(field, fmt.Sprintf("value must not be negative, got %g", v))
	}
	return nil
}

// Axis groups CSS properties for rule-per-axis emission.
type Axis string

const (
	AxisText       Axis = "text"
	AxisBox        Axis = "box"
	AxisBorder     Axis = "border"
	AxisBackground Axis = "background"
)

// Axes lists every axis in emission order.
var Axes = []Axis{AxisText, AxisBox, AxisBorder, AxisBackground}

// PropertyFontSize is the property assumed when an entry names none.
const PropertyFontSize = "font-size"

// PropertyLineHeight is emitted from SizeEntry.LineHeight.
const PropertyLineHeight = "line-height"

// CanonicalProperty lowercases a property name; an empty name means
// font-size.
func CanonicalProperty(property string) string {
	p := strings.ToLower(strings.TrimSpace(property))
	if p == "" {
		return PropertyFontSize
	}
	return p
}

// AxisOf classifies a CSS property.
func AxisOf(property string) Axis {
	p := strings.ToLower(strings.TrimSpace(property))
	switch {
	case p == "font-size", p == "line-height", p == "letter-spacing", p == "word-spacing", p == "text-indent":
		return AxisText
	case strings.HasPrefix(p, "border"), strings.HasPrefix(p, "outline"):
		return AxisBorder
	case strings.HasPrefix(p, "background"):
		return AxisBackground
	default:
		return AxisBox
	}
}

// PropertyValue is one scaled CSS property of an entry, in canonical px.
type PropertyValue struct {
	Property string  `json:"property" yaml:"property"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
}

// SizeEntry is a named set of scaled properties. Entries are emitted in the
// order the host supplies them.
type SizeEntry struct {
	ID         int             `json:"id" yaml:"id"`
	Label      string          `json:"label" yaml:"label"`
	Properties []PropertyValue `json:"properties" yaml:"properties"`
	// LineHeight is unitless; zero means unset.
	LineHeight float64 `json:"line_height,omitempty" yaml:"line_height,omitempty"`
}

// Validate checks that the entry can be rendered.
func (e SizeEntry) Validate() error {
	if strings.TrimSpace(e.Label) == "" {
		return fcerrors.NewRangeError("label", fmt.Sprintf("entry %d has an empty label", e.ID))
	}
	if len(e.Properties) == 0 {
		return fcerrors.NewRangeError("properties", fmt.Sprintf("entry %q has no properties", e.Label))
	}
	seen := make(map[string]int, len(e.Properties))
	for i, p := range e.Properties {
		name := CanonicalProperty(p.Property)
		if prev, dup := seen[name]; dup {
			return fcerrors.NewRangeError(fmt.Sprintf("properties[%d].property", i),
				fmt.Sprintf("entry %q sets %s twice (also properties[%d])", e.Label, name, prev))
		}
		seen[name] = i
		if err := validateValue(fmt.Sprintf("properties[%d].min", i), p.Min); err != nil {
			return err
		}
		if err := validateValue(fmt.Sprintf("properties[%d].max", i), p.Max); err != nil {
			return err
		}
	}
	if e.LineHeight < 0 || math.IsNaN(e.LineHeight) || math.IsInf(e.LineHeight, 0) {
		return fcerrors.NewRangeError("line_height", fmt.Sprintf("entry %q has an invalid line height", e.Label))
	}
	if _, dup := seen[PropertyLineHeight]; dup && e.LineHeight > 0 {
		return fcerrors.NewRangeError("line_height", fmt.Sprintf("entry %q sets line-height both as a property and as line_height", e.Label))
	}
	return nil
}

// AxesUsed returns the axes touched by the entry in Axes order. A line height
// counts toward the text axis.
func (e SizeEntry) AxesUsed() []Axis {
	seen := make(map[Axis]bool, len(Axes))
	for _, p := range e.Properties {
		seen[AxisOf(CanonicalProperty(p.Property))] = true
	}
	if e.LineHeight > 0 {
		seen[AxisText] = true
	}
	used := make([]Axis, 0, len(seen))
	for _, axis := range Axes {
		if seen[axis] {
			used = append(used, axis)
		}
	}
	return used
}

// NewFontSizeEntry builds the common single-property entry.
func NewFontSizeEntry(id int, label string, minPx, maxPx float64) SizeEntry {
	return SizeEntry{
		ID:         id,
		Label:      label,
		Properties: []PropertyValue{{Property: PropertyFontSize, Min: minPx, Max: maxPx}},
	}
}
