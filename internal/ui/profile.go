package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kamisorara/ImageViewer/internal/auth"
	"github.com/Kamisorara/ImageViewer/internal/log"
	"github.com/Kamisorara/ImageViewer/internal/route"
)

func (m *Model) handleProfileKey(key string) tea.Cmd {
	switch key {
	case "enter", "l":
		if !m.session.Authenticated {
			return m.openLogin()
		}
	case "x":
		if m.session.Authenticated {
			return m.logout()
		}
	}
	return nil
}

func (m *Model) handleProfileMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case !m.session.Authenticated && m.zones.Get(zoneProfileLogin).InBounds(msg):
		return m.openLogin()
	case m.session.Authenticated && m.zones.Get(zoneProfileLogout).InBounds(msg):
		return m.logout()
	}
	return nil
}

func (m *Model) logout() tea.Cmd {
	log.Printf("session: sign out %s", m.session.Username)
	m.router.Navigate(route.Profile, route.Params{})
	return m.locationChanged()
}

func (m *Model) profileView() string {
	cardWidth := clamp(m.width-4, 10, 40)

	var content string
	if m.session.Authenticated {
		content = lipgloss.JoinVertical(lipgloss.Left,
			usernameStyle.Render("☺ "+m.session.Username),
			hintStyle.Render("已登录"),
			"",
			m.zones.Mark(zoneProfileLogout, linkStyle.Render("退出登录")),
		)
	} else {
		button := m.zones.Mark(zoneProfileLogin, buttonStyle.Render("登录"))
		content = lipgloss.JoinVertical(lipgloss.Center,
			hintStyle.Render("尚未登录"),
			"",
			button,
		)
		content = lipgloss.PlaceHorizontal(cardWidth-cardStyle.GetHorizontalFrameSize(), lipgloss.Center, content)
	}

	card := cardStyle.Width(cardWidth).Render(content)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card)
}

// Session returns the sign-in state shown on the profile tab.
func (m *Model) Session() auth.Session { return m.session }
