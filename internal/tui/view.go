package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osa030/playaxis/internal/app/stepunit"
	"github.com/osa030/playaxis/internal/render"
)

const defaultWidth = 60

var (
	glyphs = map[string]string{
		render.ElementPlay:     "▶",
		render.ElementPause:    "⏸",
		render.ElementStop:     "■",
		render.ElementPrevious: "⏮",
		render.ElementNext:     "⏭",
	}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	activeStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("playaxis"))
	b.WriteString("\n\n")
	b.WriteString(m.renderPresets())
	b.WriteString("\n\n")
	b.WriteString(m.renderCaption(width))
	b.WriteString("\n\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m *Model) renderPresets() string {
	parts := make([]string, 0, len(stepunit.Presets))
	for _, p := range stepunit.Presets {
		el := m.scene.Element(p.Element)
		style := lipgloss.NewStyle()
		if el.Opacity < render.Opaque {
			style = style.Faint(true)
		} else {
			style = activeStyle
		}
		parts = append(parts, style.Render(p.Name))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderCaption(width int) string {
	el := m.scene.Element(render.ElementLabel)

	style := lipgloss.NewStyle().Width(width)
	if el.Fill != "" {
		style = style.Foreground(lipgloss.Color(el.Fill))
	}
	if size, err := strconv.Atoi(el.Attrs[render.AttrFontSize]); err == nil && size >= 16 {
		style = style.Bold(true)
	}
	switch el.Attrs[render.AttrTextAnchor] {
	case "middle":
		style = style.Align(lipgloss.Center)
	case "end":
		style = style.Align(lipgloss.Right)
	default:
		style = style.Align(lipgloss.Left)
	}
	return style.Render(el.Text)
}

func (m *Model) renderControls() string {
	parts := make([]string, 0, len(render.Controls))
	for _, id := range render.Controls {
		el := m.scene.Element(id)
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
		if el.Fill != "" {
			style = style.Background(lipgloss.Color(el.Fill))
		}
		if el.Opacity < render.Opaque {
			style = style.Faint(true)
		}
		parts = append(parts, style.Render(glyphs[id]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) status() string {
	s := m.visual.Scheduler()
	status := fmt.Sprintf("%s  %d/%d  step %d",
		s.GetState(), s.GetCursor()+1, s.GetItems().Len(), s.GetStepSize())
	if m.last != nil && m.last.Item != nil {
		status += "  " + m.last.Item.Label
	}
	return status
}

func (m *Model) help() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
