package truthtable

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorTrue    = lipgloss.Color("#10B981")
	colorFalse   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles decorates a rendered table. Styles must not change the width of
// what they render, otherwise columns lose their alignment.
type Styles struct {
	Header    lipgloss.Style
	Separator lipgloss.Style
	True      lipgloss.Style
	False     lipgloss.Style
}

// DefaultStyles returns the styles used for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Separator: lipgloss.NewStyle().Foreground(colorMuted),
		True:      lipgloss.NewStyle().Bold(true).Foreground(colorTrue),
		False:     lipgloss.NewStyle().Foreground(colorFalse),
	}
}

func styleFunc(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// Render renders the table like String, decorated with s.
func (t *Table) Render(s Styles) string {
	return t.format(painter{
		header:    styleFunc(s.Header),
		separator: styleFunc(s.Separator),
		truthy:    styleFunc(s.True),
		falsy:     styleFunc(s.False),
	})
}
