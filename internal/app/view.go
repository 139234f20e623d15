package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/loading"
	"github.com/rileyhilliard/imgdeck/internal/ui"
	"github.com/rileyhilliard/imgdeck/internal/util"
)

const thumbWidth = 16

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.stage.Compose(m.baseView())
}

func (m *Model) baseView() string {
	dark := m.theme.IsDark()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebarView(dark),
		m.galleryView(dark),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(dark),
		body,
		m.footerView(),
	)
}

// region sizes a block to exactly fill r.
func region(r loading.Rect) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(r.Width).MaxWidth(r.Width).
		Height(r.Height).MaxHeight(r.Height)
}

func (m *Model) headerView(dark bool) string {
	r := m.header.Bounds()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.Pick(dark, ui.ColorTitleLight, ui.ColorTitleDark)).
		Render("imgdeck")

	status := fmt.Sprintf("theme %s", m.theme.Current())
	if n := m.overlays.Len(); n > 0 {
		status += fmt.Sprintf(" %s %s", ui.SymbolProgress, util.Count(n, "task", "tasks"))
	}
	status = ui.MutedStyle().Render(status)

	gap := r.Width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + title + strings.Repeat(" ", gap) + status

	return region(r).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ui.Pick(dark, ui.ColorBorderLight, ui.ColorBorderDark)).
		Height(r.Height - 1).MaxHeight(r.Height).
		Render("\n" + line)
}

func (m *Model) sidebarView(dark bool) string {
	r := m.sidebar.Bounds()
	if r.Width == 0 || r.Height == 0 {
		return ""
	}
	heading := lipgloss.NewStyle().Bold(true).Render("Albums")
	lines := []string{heading, ""}
	for _, album := range m.albums {
		lines = append(lines, "  "+album)
	}
	return region(r).
		PaddingLeft(1).
		Background(ui.Pick(dark, ui.ColorSurfaceLight, ui.ColorSurfaceDark)).
		Foreground(ui.Pick(dark, ui.ColorTextLight, ui.ColorTextDark)).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) galleryView(dark bool) string {
	r := m.gallery.Bounds()
	if r.Width == 0 || r.Height == 0 {
		return ""
	}
	cols := (r.Width - 2) / thumbWidth
	if cols < 1 {
		cols = 1
	}
	cell := lipgloss.NewStyle().Width(thumbWidth)

	var rows []string
	for i := 0; i < len(m.images); i += cols {
		end := min(i+cols, len(m.images))
		cells := make([]string, 0, cols)
		for _, name := range m.images[i:end] {
			cells = append(cells, cell.Render(ui.SymbolPending+" "+name))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...), "")
	}
	return region(r).
		Padding(1, 1, 0, 2).
		Foreground(ui.Pick(dark, ui.ColorTextLight, ui.ColorTextDark)).
		Render(strings.Join(rows, "\n"))
}

// footerView stacks the toasts above the key help.
func (m *Model) footerView() string {
	helpView := m.help.View(m.keys)
	if toasts := m.toasts.View(); toasts != "" {
		return toasts + "\n" + helpView
	}
	return helpView
}
