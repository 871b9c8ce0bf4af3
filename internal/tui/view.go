package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daynotes/internal/calendar"
	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/notebook"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.ctrl.View()

	switch m.state {
	case constants.StateConfirmation:
		if m.form != nil {
			return m.place(m.form.View())
		}
	case constants.StateAlert:
		body := lipgloss.JoinVertical(lipgloss.Center,
			m.active.message,
			"",
			m.styles.Muted.Render("press enter to continue"),
		)
		return m.place(m.styles.Modal.Render(body))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane(constants.FocusCalendar, m.viewCalendar(v)),
		m.pane(constants.FocusNotes, m.viewNotes(v)),
	)

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewSidebar(v),
		main,
		m.pane(constants.FocusReminder, m.viewReminders(v)),
		m.viewStatus(v),
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) pane(f constants.Focus, content string) string {
	if m.focus == f {
		return m.styles.ActivePane.Render(content)
	}
	return m.styles.InactivePane.Render(content)
}

func (m Model) viewSidebar(v notebook.ViewState) string {
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render(constants.AppName),
		m.styles.Header.Render(v.SidebarDate),
		m.styles.Clock.Render(v.Clock),
	)
	if v.NightNotice != "" {
		line = lipgloss.JoinVertical(lipgloss.Left, line, warningStyle.Render("Working on "+v.NightNotice))
	}
	return line
}

func (m Model) viewCalendar(v notebook.ViewState) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(v.MonthLabel))
	b.WriteString("\n")

	headers := make([]string, len(calendar.WeekdayHeaders))
	for i, h := range calendar.WeekdayHeaders {
		headers[i] = m.styles.Weekday.Render(h)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for _, week := range v.Weeks {
		cells := make([]string, len(week))
		for i, c := range week {
			cells[i] = m.viewCell(c)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.NoteMark.Render("•") + m.styles.Muted.Render(" notes  "))
	b.WriteString(m.styles.RemMark.Render("*") + m.styles.Muted.Render(" reminders"))
	return b.String()
}

func (m Model) viewCell(c calendar.DayCell) string {
	if c.Blank {
		return m.styles.Day.Render("")
	}

	label := fmt.Sprintf("%d", c.Day)
	switch {
	case c.HasNote && c.HasReminder:
		label += "+"
	case c.HasNote:
		label += "•"
	case c.HasReminder:
		label += "*"
	}

	switch {
	case c.IsPending:
		return m.styles.Pending.Render(label)
	case c.IsSelected:
		return m.styles.Selected.Render(label)
	case c.DateKey == m.dayCursor && m.focus == constants.FocusCalendar:
		return m.styles.Cursor.Render(label)
	case c.IsToday:
		return m.styles.Today.Render(label)
	case c.HasNote:
		return m.styles.Day.Foreground(m.styles.NoteMark.GetForeground()).Render(label)
	case c.HasReminder:
		return m.styles.Day.Foreground(m.styles.RemMark.GetForeground()).Render(label)
	}
	return m.styles.Day.Render(label)
}

func (m Model) viewNotes(v notebook.ViewState) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(v.Header))
	switch v.Mode {
	case notebook.ModeReadOnlyPast:
		b.WriteString(m.styles.Muted.Render("  (read-only)"))
	case notebook.ModeReadOnlyFuture:
		b.WriteString(m.styles.Muted.Render("  (upcoming)"))
	}
	b.WriteString("\n\n")

	if len(v.Notes) == 0 {
		b.WriteString(m.styles.Muted.Render(v.EmptyMessage))
		return b.String()
	}

	for i, n := range v.Notes {
		if m.state == constants.StateEditNote && n.ID == m.editingID {
			b.WriteString(m.editor.View())
			b.WriteString("\n")
			continue
		}
		text := n.Text
		if text == "" {
			text = m.styles.Muted.Render("(empty)")
		}
		if m.focus == constants.FocusNotes && i == m.noteIndex {
			b.WriteString(m.styles.FocusedNote.Render(text))
		} else {
			b.WriteString(m.styles.Note.Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewReminders(v notebook.ViewState) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Reminders"))
	b.WriteString("\n")

	if len(v.Reminders) == 0 {
		b.WriteString(m.styles.Muted.Render("No reminders for this date."))
	}
	for i, r := range v.Reminders {
		prefix := "  "
		if m.focus == constants.FocusReminder && i == m.remIndex {
			prefix = "> "
		}
		b.WriteString(m.styles.Reminder.Render(prefix + "* " + r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.reminderIn.View())
	if v.PendingActive {
		dates := "pick future dates on the calendar"
		if len(v.PendingDates) > 0 {
			dates = strings.Join(v.PendingDates, ", ")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("on: " + dates))
	}
	return b.String()
}

func (m Model) viewStatus(v notebook.ViewState) string {
	var parts []string
	if v.Unsaved {
		parts = append(parts, dangerStyle.Render("Unsaved changes (ctrl+s to retry)"))
	}
	if v.LastErr != nil {
		parts = append(parts, dangerStyle.Render(v.LastErr.Error()))
	}
	parts = append(parts, m.styles.Muted.Render("theme: "+string(v.Theme)))
	return strings.Join(parts, "  ")
}
