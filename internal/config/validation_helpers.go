package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// convertValidationError normalizes validator errors into fluidcss validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return fcerrors.NewValidationError(field, msg, err)
	}

	return fcerrors.NewValidationError("project", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the namespace, which the
// validator already reports in yaml tag names.
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldForSize(index int, field string) string {
	return fmt.Sprintf("sizes[%d].%s", index, field)
}

func fieldForColor(index int, field string) string {
	return fmt.Sprintf("colors[%d].%s", index, field)
}
