package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

const barWidth = 40

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := "fluidcss preview"
	if strings.TrimSpace(m.title) != "" {
		title = fmt.Sprintf("fluidcss preview • %s", m.title)
	}
	sections = append(sections, titleStyle.Render(title))

	sections = append(sections, fmt.Sprintf("viewport %s  %s",
		viewportStyle.Render(fmt.Sprintf("%.0fpx", m.viewport)),
		m.bar(),
	))

	if len(m.rows) == 0 {
		sections = append(sections, pinnedStyle.Render("no entries to preview"))
	} else {
		lines := make([]string, 0, len(m.rows))
		for _, row := range m.rows {
			lines = append(lines, m.renderRow(row))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRow(row Row) string {
	prefix := labelStyle.Render(row.Label) + propertyStyle.Render(row.Property)
	if row.Err != nil {
		return prefix + errorStyle.Render(row.Err.Error())
	}

	value := row.Formula.Resolve(m.viewport)
	line := prefix + valueStyle.Render(formatResolved(value, m.settings.Unit))

	lo := math.Min(row.Formula.MinValuePx, row.Formula.MaxValuePx)
	hi := math.Max(row.Formula.MinValuePx, row.Formula.MaxValuePx)
	if value <= lo || value >= hi {
		line += " " + pinnedStyle.Render("(pinned)")
	}
	return line
}

func (m Model) bar() string {
	filled := int(math.Round(m.Progress() * barWidth))
	return barStyle.Render("[" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]")
}

// formatResolved prints a resolved px value with two decimals, adding the
// rem equivalent when the project emits rem.
func formatResolved(px float64, unit fluid.Unit) string {
	if unit == fluid.UnitRem {
		return fmt.Sprintf("%.2fpx (%.4frem)", px, px/fluid.BaseFontSize)
	}
	return fmt.Sprintf("%.2fpx", px)
}
