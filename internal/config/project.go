package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/contrast"
	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

// ScaleSettings converts the project settings for the calculators.
func (p *Project) ScaleSettings() fluid.ScaleSettings {
	return fluid.ScaleSettings{
		MinAnchor: fluid.ScaleAnchor{Viewport: p.Settings.MinViewport},
		MaxAnchor: fluid.ScaleAnchor{Viewport: p.Settings.MaxViewport},
		Unit:      fluid.Unit(p.Settings.Unit),
	}
}

// Entries returns the explicit sizes in file order followed by the type
// scale steps. Generated entries get ids after the largest explicit id.
func (p *Project) Entries() ([]fluid.SizeEntry, error) {
	entries := make([]fluid.SizeEntry, 0, len(p.Sizes))
	maxID := 0
	for _, size := range p.Sizes {
		entry := fluid.SizeEntry{ID: size.ID, Label: size.Label, LineHeight: size.LineHeight}
		for _, prop := range size.Properties {
			name := prop.Property
			if name == "" {
				name = fluid.PropertyFontSize
			}
			entry.Properties = append(entry.Properties, fluid.PropertyValue{Property: name, Min: prop.Min, Max: prop.Max})
		}
		entries = append(entries, entry)
		if size.ID > maxID {
			maxID = size.ID
		}
	}

	if ts := p.TypeScale; ts != nil {
		generated, err := fluid.BuildTypeScale(fluid.TypeScale{
			BaseMin:     ts.BaseMin,
			BaseMax:     ts.BaseMax,
			RatioMin:    ts.RatioMin,
			RatioMax:    ts.RatioMax,
			Steps:       ts.Steps,
			BaseStep:    ts.BaseStep,
			LabelPrefix: ts.LabelPrefix,
			FirstID:     maxID + 1,
		})
		if err != nil {
			return nil, fmt.Errorf("type scale: %w", err)
		}
		entries = append(entries, generated...)
	}

	return entries, nil
}

// Query converts the pair into a compliance query.
func (c ColorPair) Query() (contrast.ComplianceQuery, error) {
	target := c.Target
	if target == 0 {
		target = DefaultTarget
	}
	q, err := contrast.NewQuery(c.Background, c.Foreground, target)
	if err != nil {
		return contrast.ComplianceQuery{}, fmt.Errorf("color pair %q: %w", c.Name, err)
	}
	return q, nil
}
