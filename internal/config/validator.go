package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/contrast"
	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
	"github.com/alexisbeaulieu97/fluidcss/internal/variant"
	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// DefaultTarget is the contrast target used when a color pair names none.
const DefaultTarget = contrast.RatioAA

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	schemaVersionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	cssPropertyPattern   = regexp.MustCompile(`^[a-z][a-z-]*[a-z]$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return schemaVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_property", func(fl validator.FieldLevel) bool {
			return cssPropertyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			_, err := contrast.NormalizeHex(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

func applyDefaults(p *Project) {
	if p.Settings.Unit == "" {
		p.Settings.Unit = string(fluid.UnitPx)
	}
	if p.Settings.Variant == "" {
		p.Settings.Variant = variant.KeyVariables
	}
	for i := range p.Colors {
		if p.Colors[i].Target == 0 {
			p.Colors[i].Target = DefaultTarget
		}
	}
}

// ValidateProject performs schema and cross-field validation.
func ValidateProject(p *Project) error {
	if p == nil {
		return fcerrors.NewValidationError("project", "project is nil", nil)
	}

	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}

	if _, err := variant.Default().Lookup(p.Settings.Variant); err != nil {
		return fcerrors.NewValidationError("settings.variant", err.Error(), err)
	}

	ids := make(map[int]int, len(p.Sizes))
	labels := make(map[string]int, len(p.Sizes))
	for i, size := range p.Sizes {
		if prev, exists := ids[size.ID]; exists {
			return fcerrors.NewValidationError(fieldForSize(i, "id"), fmt.Sprintf("duplicate id %d (also used by sizes[%d])", size.ID, prev), nil)
		}
		ids[size.ID] = i

		slug := variant.Slug(size.Label)
		if slug == "" {
			return fcerrors.NewValidationError(fieldForSize(i, "label"), fmt.Sprintf("label %q has no usable characters", size.Label), nil)
		}
		if prev, exists := labels[slug]; exists {
			return fcerrors.NewValidationError(fieldForSize(i, "label"), fmt.Sprintf("duplicate label %q (also used by sizes[%d])", size.Label, prev), nil)
		}
		labels[slug] = i

		if err := validateSizeProperties(i, size); err != nil {
			return err
		}
	}

	if ts := p.TypeScale; ts != nil {
		if ts.BaseStep != "" && indexOf(ts.Steps, ts.BaseStep) < 0 {
			return fcerrors.NewValidationError("type_scale.base_step", fmt.Sprintf("base step %q is not one of the steps", ts.BaseStep), nil)
		}
		for _, step := range ts.Steps {
			if _, exists := labels[variant.Slug(ts.LabelPrefix+step)]; exists {
				return fcerrors.NewValidationError("type_scale.steps", fmt.Sprintf("generated label %q collides with a size label", ts.LabelPrefix+step), nil)
			}
		}
	}

	names := make(map[string]bool, len(p.Colors))
	for i, pair := range p.Colors {
		if names[pair.Name] {
			return fcerrors.NewValidationError(fieldForColor(i, "name"), fmt.Sprintf("duplicate color pair %q", pair.Name), nil)
		}
		names[pair.Name] = true
	}

	return nil
}

func validateSizeProperties(index int, size Size) error {
	seen := make(map[string]int, len(size.Properties))
	for j, prop := range size.Properties {
		name := fluid.CanonicalProperty(prop.Property)
		if prev, exists := seen[name]; exists {
			return fcerrors.NewValidationError(fieldForSize(index, fmt.Sprintf("properties[%d].property", j)), fmt.Sprintf("%s is already set by properties[%d]", name, prev), nil)
		}
		seen[name] = j
	}
	if _, exists := seen[fluid.PropertyLineHeight]; exists && size.LineHeight > 0 {
		return fcerrors.NewValidationError(fieldForSize(index, "line_height"), "line-height is also listed as a property", nil)
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
