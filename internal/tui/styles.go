package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/models"
)

// palette is the set of colors a theme assigns.
type palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Surface  lipgloss.Color
	Note     lipgloss.Color
	Reminder lipgloss.Color
	Pending  lipgloss.Color
}

var palettes = map[models.Theme]palette{
	constants.ThemeDarkBlue: {
		Text: "252", Muted: "240", Accent: "39", Border: "25",
		Surface: "236", Note: "45", Reminder: "214", Pending: "205",
	},
	constants.ThemeDarkGreen: {
		Text: "252", Muted: "240", Accent: "42", Border: "28",
		Surface: "235", Note: "120", Reminder: "214", Pending: "205",
	},
	constants.ThemeDarkPurple: {
		Text: "252", Muted: "240", Accent: "141", Border: "55",
		Surface: "236", Note: "183", Reminder: "214", Pending: "205",
	},
	constants.ThemeLight: {
		Text: "235", Muted: "245", Accent: "27", Border: "250",
		Surface: "254", Note: "31", Reminder: "166", Pending: "162",
	},
}

var (
	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Styles are the lipgloss styles for one theme.
type Styles struct {
	ActivePane   lipgloss.Style
	InactivePane lipgloss.Style
	Title        lipgloss.Style
	Header       lipgloss.Style
	Muted        lipgloss.Style
	Clock        lipgloss.Style

	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Pending  lipgloss.Style
	NoteMark lipgloss.Style
	RemMark  lipgloss.Style

	Note        lipgloss.Style
	FocusedNote lipgloss.Style
	Reminder    lipgloss.Style
	Modal       lipgloss.Style
}

// NewStyles builds the styles for theme. Unknown themes use the default.
func NewStyles(theme models.Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[constants.DefaultTheme]
	}

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		ActivePane:   pane.BorderForeground(p.Accent),
		InactivePane: pane.BorderForeground(p.Border),
		Title:        lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Header:       lipgloss.NewStyle().Foreground(p.Text).Bold(true).Padding(0, 1),
		Muted:        lipgloss.NewStyle().Foreground(p.Muted),
		Clock:        lipgloss.NewStyle().Foreground(p.Accent),

		Weekday:  lipgloss.NewStyle().Foreground(p.Muted).Width(4).Align(lipgloss.Center),
		Day:      lipgloss.NewStyle().Foreground(p.Text).Width(4).Align(lipgloss.Center),
		Today:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Width(4).Align(lipgloss.Center),
		Selected: lipgloss.NewStyle().Foreground(p.Surface).Background(p.Accent).Bold(true).Width(4).Align(lipgloss.Center),
		Cursor:   lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface).Underline(true).Width(4).Align(lipgloss.Center),
		Pending:  lipgloss.NewStyle().Foreground(p.Surface).Background(p.Pending).Width(4).Align(lipgloss.Center),
		NoteMark: lipgloss.NewStyle().Foreground(p.Note),
		RemMark:  lipgloss.NewStyle().Foreground(p.Reminder),

		Note:        lipgloss.NewStyle().Foreground(p.Text).PaddingLeft(2),
		FocusedNote: lipgloss.NewStyle().Foreground(p.Accent).Bold(true).PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(p.Accent),
		Reminder:    lipgloss.NewStyle().Foreground(p.Reminder),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 3).
			Width(50).
			Align(lipgloss.Center),
	}
}
