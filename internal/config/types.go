package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is a fluidcss project document.
type Project struct {
	Version     string      `yaml:"version" validate:"required,schema_version"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Settings    Settings    `yaml:"settings"`
	Sizes       []Size      `yaml:"sizes,omitempty" validate:"omitempty,dive"`
	TypeScale   *TypeScale  `yaml:"type_scale,omitempty" validate:"omitempty"`
	Colors      []ColorPair `yaml:"colors,omitempty" validate:"omitempty,dive"`
}

// Settings holds the viewport span, unit and default output flavor. Ranges
// follow what the admin UI allows.
type Settings struct {
	Unit        string  `yaml:"unit,omitempty" validate:"omitempty,oneof=px rem"`
	MinViewport float64 `yaml:"min_viewport" validate:"required,min=200,max=5000"`
	MaxViewport float64 `yaml:"max_viewport" validate:"required,min=200,max=5000,gtfield=MinViewport"`
	Variant     string  `yaml:"variant,omitempty"`
}

// Size is one named entry. The min/max shorthand describes a font size.
type Size struct {
	ID         int        `yaml:"id" validate:"required,min=1"`
	Label      string     `yaml:"label" validate:"required,max=64"`
	LineHeight float64    `yaml:"line_height,omitempty" validate:"omitempty,min=0.8,max=3"`
	Properties []Property `yaml:"properties" validate:"required,min=1,dive"`
}

// Property is one scaled CSS property in px.
type Property struct {
	Property string  `yaml:"property,omitempty" validate:"omitempty,css_property"`
	Min      float64 `yaml:"min" validate:"min=0,max=10000"`
	Max      float64 `yaml:"max" validate:"min=0,max=10000"`
}

// UnmarshalYAML accepts either a properties list or min/max shorthand.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	type rawSize struct {
		ID         int        `yaml:"id"`
		Label      string     `yaml:"label"`
		LineHeight float64    `yaml:"line_height"`
		Properties []Property `yaml:"properties"`
		Min        float64    `yaml:"min"`
		Max        float64    `yaml:"max"`
	}

	var raw rawSize
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Label = raw.Label
	s.LineHeight = raw.LineHeight
	s.Properties = append([]Property(nil), raw.Properties...)
	if len(s.Properties) == 0 && (hasYAMLKey(value, "min") || hasYAMLKey(value, "max")) {
		s.Properties = []Property{{Min: raw.Min, Max: raw.Max}}
	}
	return nil
}

// TypeScale generates font-size entries from a modular scale.
type TypeScale struct {
	BaseMin     float64  `yaml:"base_min" validate:"required,gt=0"`
	BaseMax     float64  `yaml:"base_max" validate:"required,gt=0"`
	RatioMin    float64  `yaml:"ratio_min" validate:"required,min=1,max=3"`
	RatioMax    float64  `yaml:"ratio_max" validate:"required,min=1,max=3"`
	Steps       []string `yaml:"steps" validate:"required,min=1,unique,dive,required"`
	BaseStep    string   `yaml:"base_step,omitempty"`
	LabelPrefix string   `yaml:"label_prefix,omitempty"`
}

// ColorPair is a background/foreground combination to audit.
type ColorPair struct {
	Name       string  `yaml:"name" validate:"required"`
	Background string  `yaml:"background" validate:"required,hex_color"`
	Foreground string  `yaml:"foreground" validate:"required,hex_color"`
	Target     float64 `yaml:"target,omitempty" validate:"omitempty,min=1,max=21"`
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if strings.EqualFold(k.Value, key) {
			return true
		}
	}
	return false
}
