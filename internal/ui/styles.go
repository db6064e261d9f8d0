package ui

import "github.com/charmbracelet/lipgloss"

// TableStyles are the lipgloss styles used to render the comparison table.
type TableStyles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Border  lipgloss.Style
}

// palette maps theme names to lipgloss colors for the table.
var palette = map[string]struct {
	accent, ok, fail, dim lipgloss.TerminalColor
}{
	"dark":  {lipgloss.Color("39"), lipgloss.Color("82"), lipgloss.Color("196"), lipgloss.Color("245")},
	"light": {lipgloss.Color("27"), lipgloss.Color("28"), lipgloss.Color("124"), lipgloss.Color("240")},
}

// CurrentTableStyles returns table styles matching the active theme. With
// NoColorTheme every style renders plain text, padding included.
func CurrentTableStyles() TableStyles {
	base := lipgloss.NewStyle().PaddingRight(2)
	colors, ok := palette[GetCurrentTheme().Name]
	if !ok {
		return TableStyles{
			Header:  base,
			Cell:    base,
			Success: base,
			Failure: base,
			Border:  lipgloss.NewStyle(),
		}
	}
	return TableStyles{
		Header:  base.Bold(true).Foreground(colors.accent),
		Cell:    base,
		Success: base.Foreground(colors.ok),
		Failure: base.Foreground(colors.fail),
		Border:  lipgloss.NewStyle().Foreground(colors.dim),
	}
}
