package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for status output.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "!"
	SymbolBullet  = "•"
)

// Painter renders status text, applying styles only in ModeStyled.
type Painter struct {
	mode Mode
}

// NewPainter returns a Painter for the given mode.
func NewPainter(mode Mode) Painter {
	return Painter{mode: mode}
}

func (p Painter) render(style lipgloss.Style, s string) string {
	if p.mode != ModeStyled {
		return s
	}
	return style.Render(s)
}

func (p Painter) Title(s string) string   { return p.render(TitleStyle, s) }
func (p Painter) Success(s string) string { return p.render(SuccessStyle, SymbolCheck+" "+s) }
func (p Painter) Error(s string) string   { return p.render(ErrorStyle, SymbolCross+" "+s) }
func (p Painter) Warning(s string) string { return p.render(WarningStyle, SymbolWarning+" "+s) }
func (p Painter) Muted(s string) string   { return p.render(MutedStyle, s) }
