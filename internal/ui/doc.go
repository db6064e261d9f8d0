// Package ui holds the color themes and table styles shared by the CLI and
// the usage message. Themes are plain ANSI escape codes; the comparison
// table is rendered with lipgloss styles derived from the active theme.
package ui
