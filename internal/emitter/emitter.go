package emitter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
	"github.com/alexisbeaulieu97/fluidcss/internal/logger"
	"github.com/alexisbeaulieu97/fluidcss/internal/variant"
	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

const lineHeightPlaces = 3

// Request carries everything one emission needs. Nothing is retained
// between calls.
type Request struct {
	Variant  string
	Settings fluid.ScaleSettings
	Entries  []fluid.SizeEntry
}

// SkippedEntry records an entry that could not be rendered.
type SkippedEntry struct {
	ID    int
	Label string
	Err   error
}

// Output is the emitted text plus per-entry failures.
type Output struct {
	Variant string
	Text    string
	// Rendered counts entries present in Text.
	Rendered int
	Skipped  []SkippedEntry
}

// Emitter renders size entries through a variant registry.
type Emitter struct {
	registry *variant.Registry
	log      *logger.Logger
}

// New creates an Emitter. A nil registry uses the built-in variants; a nil
// logger disables logging.
func New(reg *variant.Registry, log *logger.Logger) *Emitter {
	if reg == nil {
		reg = variant.Default()
	}
	return &Emitter{registry: reg, log: log}
}

// Emit renders req with the built-in variants.
func Emit(req Request) (*Output, error) {
	return New(nil, nil).Emit(req)
}

// Emit renders the entries in list order. Invalid settings or an unknown
// variant fail the call; an entry that cannot be resolved is skipped and
// reported while the rest are rendered.
func (e *Emitter) Emit(req Request) (*Output, error) {
	desc, err := e.registry.Lookup(req.Variant)
	if err != nil {
		return nil, err
	}
	if err := req.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("emit %s: %w", desc.Key, err)
	}

	out := &Output{Variant: desc.Key}
	resolved := make([]variant.Entry, 0, len(req.Entries))
	names := identifierSet{}
	for _, entry := range req.Entries {
		ve, err := resolveEntry(desc, req.Settings, entry)
		if err == nil {
			err = names.claim(ve)
		}
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedEntry{ID: entry.ID, Label: entry.Label, Err: err})
			e.log.WithFields(map[string]any{"variant": desc.Key, "entry_id": entry.ID, "label": entry.Label}).Error(err, "skipping entry")
			continue
		}
		resolved = append(resolved, ve)
	}

	out.Text = render(desc, req.Settings, resolved)
	out.Rendered = len(resolved)

	e.log.WithFields(map[string]any{
		"variant":  desc.Key,
		"rendered": out.Rendered,
		"skipped":  len(out.Skipped),
	}).Debug("emitted sizes")

	return out, nil
}

func resolveEntry(desc variant.Descriptor, settings fluid.ScaleSettings, entry fluid.SizeEntry) (variant.Entry, error) {
	if err := entry.Validate(); err != nil {
		return variant.Entry{}, err
	}
	slug := variant.Slug(entry.Label)
	if slug == "" {
		return variant.Entry{}, fcerrors.NewRangeError("label", fmt.Sprintf("label %q has no usable characters", entry.Label))
	}

	decls := make([]variant.Declaration, 0, len(entry.Properties)+1)
	for _, p := range entry.Properties {
		property := fluid.CanonicalProperty(p.Property)
		value, err := fluid.GenerateClamp(p.Min, p.Max, settings.MinAnchor.Viewport, settings.MaxAnchor.Viewport, settings.Unit)
		if err != nil {
			return variant.Entry{}, fmt.Errorf("%s: %w", property, err)
		}
		decls = append(decls, variant.Declaration{Property: property, Value: value, Axis: fluid.AxisOf(property)})
	}
	if entry.LineHeight > 0 {
		decls = append(decls, variant.Declaration{
			Property: fluid.PropertyLineHeight,
			Value:    decimal.NewFromFloat(entry.LineHeight).Round(lineHeightPlaces).String(),
			Axis:     fluid.AxisText,
		})
	}

	return variant.Entry{ID: entry.ID, Label: entry.Label, Slug: slug, Groups: group(desc, decls)}, nil
}

// identifierSet maps each emitted identifier to the label that claimed it.
type identifierSet map[string]string

// claim registers every identifier of e, or fails without registering any
// when one is already taken by an earlier entry.
func (s identifierSet) claim(e variant.Entry) error {
	ids := e.Identifiers()
	for _, id := range ids {
		if owner, taken := s[id]; taken {
			return fcerrors.NewRangeError("label", fmt.Sprintf("label %q emits %q, already used by %q", e.Label, id, owner))
		}
	}
	for _, id := range ids {
		s[id] = e.Label
	}
	return nil
}

func group(desc variant.Descriptor, decls []variant.Declaration) []variant.Group {
	if !desc.GroupByAxis {
		return []variant.Group{{Declarations: decls}}
	}
	var groups []variant.Group
	for _, axis := range fluid.Axes {
		var members []variant.Declaration
		for _, d := range decls {
			if d.Axis == axis {
				members = append(members, d)
			}
		}
		if len(members) > 0 {
			groups = append(groups, variant.Group{Axis: axis, Declarations: members})
		}
	}
	return groups
}

func render(desc variant.Descriptor, settings fluid.ScaleSettings, entries []variant.Entry) string {
	var b strings.Builder
	b.WriteString(desc.Comment(header(desc, settings)))
	b.WriteString("\n\n")
	b.WriteString(desc.Open)

	for _, section := range desc.Sections {
		var body strings.Builder
		for _, entry := range entries {
			body.WriteString(section.Render(entry))
		}
		if body.Len() == 0 && section.SkipEmpty {
			continue
		}
		b.WriteString(section.Open)
		b.WriteString(body.String())
		b.WriteString(section.Close)
	}

	b.WriteString(desc.Close)
	if len(entries) > 0 && desc.Usage != nil {
		b.WriteString("\n")
		b.WriteString(desc.Comment(desc.Usage(entries[0])))
		b.WriteString("\n")
	}
	return b.String()
}

func header(desc variant.Descriptor, settings fluid.ScaleSettings) string {
	return fmt.Sprintf("%s generated by fluidcss: %spx to %spx viewport, unit %s",
		desc.DisplayName,
		decimal.NewFromFloat(settings.MinAnchor.Viewport).String(),
		decimal.NewFromFloat(settings.MaxAnchor.Viewport).String(),
		settings.Unit,
	)
}
