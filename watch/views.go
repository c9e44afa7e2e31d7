package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vinayakagude/chimes/engine"
	"github.com/vinayakagude/chimes/internal/models"
)

// Styles holds the lipgloss styles for the watch view.
type Styles struct {
	Base  lipgloss.Style
	Title lipgloss.Style
	Clock lipgloss.Style
	Hint  lipgloss.Style
	Fire  lipgloss.Style
	Err   lipgloss.Style
}

func newStyles(darkTheme bool) Styles {
	hint := lipgloss.Color("240")
	if darkTheme {
		hint = lipgloss.Color("245")
	}

	return Styles{
		Base:  lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Clock: lipgloss.NewStyle().Bold(true),
		Hint:  lipgloss.NewStyle().Foreground(hint),
		Fire:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Err:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (m *Model) clockView() string {
	timeFormat := "03:04:05 PM"
	if m.opts.Display.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	zone, _ := m.now.Zone()

	return m.styles.Clock.Render(
		m.now.Format("Mon, Jan 2")+" — "+m.now.Format(timeFormat),
	) + m.styles.Hint.Render(" "+zone)
}

func (m *Model) windowView(w *models.ChimeWindow) string {
	var next string

	if instant, ok := engine.NextInstant(m.now, w); ok {
		next = "next " + instant.Format("15:04")
	} else {
		next = "done for today"
	}

	if !w.RepeatDaily && w.Fired.EverFired {
		next = "finished"
	}

	return fmt.Sprintf(
		"%s  %s → %s  every %d min  %ds  %s  %s",
		w.Label,
		w.Start,
		w.End,
		w.IntervalMins,
		w.PlaySeconds,
		w.SoundRef,
		m.styles.Hint.Render("("+next+")"),
	)
}

func (m *Model) fireLogView() string {
	if len(m.fireLog) == 0 {
		return ""
	}

	var s strings.Builder

	s.WriteString("\n")

	for _, line := range m.fireLog {
		s.WriteString(
			m.styles.Fire.Render(
				fmt.Sprintf("[%s] %s", line.instant, line.label),
			),
		)
		s.WriteString("\n")
	}

	return s.String()
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render("chimes"))
	s.WriteString("\n\n")
	s.WriteString(m.clockView())
	s.WriteString("\n\n")

	if len(m.windows) == 0 {
		s.WriteString(
			m.styles.Hint.Render("no chime windows — add one with 'chimes add'"),
		)
		s.WriteString("\n")
	}

	for _, w := range m.windows {
		s.WriteString(m.windowView(w))
		s.WriteString("\n")
	}

	s.WriteString(m.fireLogView())

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(m.styles.Err.Render(m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{defaultKeymap.quit}))

	return m.styles.Base.Render(s.String())
}
