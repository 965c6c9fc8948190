package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	NavItem      *lipgloss.Style
	NavActive    *lipgloss.Style
	NavHint      *lipgloss.Style
	MenuItem     *lipgloss.Style
	MenuSelected *lipgloss.Style
	MediaFrame   *lipgloss.Style
	MediaFocused *lipgloss.Style
	MediaLive    *lipgloss.Style
	MediaDormant *lipgloss.Style
	Caption      *lipgloss.Style
	Overlay      *lipgloss.Style
	OverlayTitle *lipgloss.Style
	BackToTop    *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Footer       *lipgloss.Style
	JumpPrompt   *lipgloss.Style
	Cursor       *lipgloss.Style
}

var lightStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
	NavItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
	),
	NavActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
	),
	NavHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	),
	MediaFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	),
	MediaFocused: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("25")).Padding(0, 1),
	),
	MediaLive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	),
	MediaDormant: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
	),
	Caption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("25")).Padding(1, 2),
	),
	OverlayTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
	BackToTop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	JumpPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")),
	),
}

var darkStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	),
	NavItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	NavActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
	),
	NavHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	MediaFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	MediaFocused: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	MediaLive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	MediaDormant: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Caption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("33")).Padding(1, 2),
	),
	OverlayTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	BackToTop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	JumpPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the light style set.
func Default() *Styles {
	return &lightStyles
}

// For returns the style set matching the theme preference.
func For(dark bool) *Styles {
	if dark {
		return &darkStyles
	}
	return &lightStyles
}

// GlamourStyle names the markdown style matching the theme preference.
func GlamourStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
