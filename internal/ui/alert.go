package ui

import "github.com/charmbracelet/lipgloss"

// alert is a blocking advisory dialog; any confirmation dismisses it.
type alert struct {
	title   string
	message string
}

func (m *Model) alertView() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.alert.title),
		"",
		m.alert.message,
		"",
		m.zones.Mark(zoneAlert, buttonStyle.Render("确定")),
	)
	return overlayBoxStyle.Render(content)
}
