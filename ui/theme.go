package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Rosé Pine Moon palette
// https://rosepinetheme.com/palette/
var (
	// Base tones
	ColorBase    = lipgloss.Color("#232136")
	ColorOverlay = lipgloss.Color("#393552")
	ColorMuted   = lipgloss.Color("#6e6a86")
	ColorSubtle  = lipgloss.Color("#908caa")
	ColorText    = lipgloss.Color("#e0def4")

	// Semantic colors
	ColorLove = lipgloss.Color("#eb6f92") // error, danger
	ColorGold = lipgloss.Color("#f6c177") // warning
	ColorFoam = lipgloss.Color("#9ccfd8") // info, success
	ColorIris = lipgloss.Color("#c4a7e7") // highlight, primary

	// Diff-specific (keep readable semantic greens/reds)
	ColorDiffAdd    = lipgloss.Color("#9ccfd8") // foam for additions
	ColorDiffDelete = lipgloss.Color("#eb6f92") // love for deletions
	ColorDiffHunk   = lipgloss.Color("#c4a7e7") // iris for hunk headers
)

// Styles for plain CLI output. lipgloss drops the colors when stdout is not
// a terminal.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorLove).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorFoam).Bold(true)
	HeaderStyle  = lipgloss.NewStyle().Foreground(ColorIris).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	diffAddStyle    = lipgloss.NewStyle().Foreground(ColorDiffAdd)
	diffDeleteStyle = lipgloss.NewStyle().Foreground(ColorDiffDelete)
	diffHunkStyle   = lipgloss.NewStyle().Foreground(ColorDiffHunk).Bold(true)
)

// ThemeRosePine returns a huh theme matching the palette above.
func ThemeRosePine() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorIris)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(ColorIris).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorLove)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorLove)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorIris)
	t.Focused.Option = t.Focused.Option.Foreground(ColorText)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorFoam)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(ColorBase).Background(ColorIris)
	t.Focused.Next = t.Focused.FocusedButton
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(ColorSubtle).Background(ColorOverlay)

	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorFoam)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(ColorMuted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorIris)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(ColorText)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
