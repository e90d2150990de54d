package preview

import (
	"math"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

const (
	// StepPx is how far one arrow press moves the simulated viewport.
	StepPx     = 10.0
	fastFactor = 10
)

// Row is one scaled property of one entry.
type Row struct {
	Label    string
	Property string
	Formula  fluid.Formula
	Err      error
}

// Model is the Bubbletea state for the viewport preview.
type Model struct {
	title    string
	settings fluid.ScaleSettings
	rows     []Row

	viewport float64
	lower    float64
	upper    float64

	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// NewModel builds a preview of entries. The viewport starts at the minimum
// anchor and can travel a quarter of the span past either anchor so the
// clamping is visible.
func NewModel(title string, settings fluid.ScaleSettings, entries []fluid.SizeEntry) Model {
	minVp := settings.MinAnchor.Viewport
	maxVp := settings.MaxAnchor.Viewport
	margin := (maxVp - minVp) / 4

	m := Model{
		title:    title,
		settings: settings,
		viewport: minVp,
		lower:    math.Max(1, minVp-margin),
		upper:    maxVp + margin,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}

	for _, entry := range entries {
		for _, p := range entry.Properties {
			property := p.Property
			if property == "" {
				property = fluid.PropertyFontSize
			}
			f, err := fluid.NewFormula(p.Min, p.Max, minVp, maxVp)
			m.rows = append(m.rows, Row{Label: entry.Label, Property: property, Formula: f, Err: err})
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Viewport returns the simulated viewport width in px.
func (m Model) Viewport() float64 {
	return m.viewport
}

// Rows returns the previewed rows in entry order.
func (m Model) Rows() []Row {
	return m.rows
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Progress is the position of the viewport between the two anchors, from 0
// at the minimum to 1 at the maximum. Values outside the span are clamped.
func (m Model) Progress() float64 {
	span := m.settings.MaxAnchor.Viewport - m.settings.MinAnchor.Viewport
	if span <= 0 {
		return 0
	}
	p := (m.viewport - m.settings.MinAnchor.Viewport) / span
	return math.Max(0, math.Min(1, p))
}

func (m *Model) moveTo(vp float64) {
	m.viewport = math.Max(m.lower, math.Min(vp, m.upper))
}
