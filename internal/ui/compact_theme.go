package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-mp3/internal/model"
)

// CompactTheme is the default theme with tighter padding and state colors
// for the status line
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 230, G: 145, B: 0, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // default 4
	case theme.SizeNameInnerPadding:
		return 6 // default 8
	case theme.SizeNameLineSpacing:
		return 2 // default 4
	case theme.SizeNameText:
		return 13 // default 14
	case theme.SizeNameInputRadius:
		return 3 // default 5
	}

	return theme.DefaultTheme().Size(name)
}

// StatusColorName maps a job state to the color of the status line
func StatusColorName(state model.JobState) fyne.ThemeColorName {
	switch {
	case state == model.JobStateCompleted:
		return theme.ColorNameSuccess
	case state == model.JobStateFailed:
		return theme.ColorNameError
	case state.IsActive():
		return theme.ColorNamePrimary
	default:
		return theme.ColorNameForeground
	}
}
