package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// parseSize reads "16", "16px" or "1.25rem" into canonical px.
func parseSize(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	unit := fluid.UnitPx
	switch {
	case strings.HasSuffix(s, string(fluid.UnitRem)):
		unit = fluid.UnitRem
		s = strings.TrimSuffix(s, string(fluid.UnitRem))
	case strings.HasSuffix(s, string(fluid.UnitPx)):
		s = strings.TrimSuffix(s, string(fluid.UnitPx))
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fcerrors.NewUnitError(raw, "expected a number optionally followed by px or rem")
	}

	if unit == fluid.UnitRem {
		return fluid.RemToPx(value)
	}
	if _, err := fluid.PxToRem(value); err != nil {
		return 0, err
	}
	return value, nil
}

func flagSize(name, raw string) (float64, error) {
	px, err := parseSize(raw)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return px, nil
}
