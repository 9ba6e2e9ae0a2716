package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kamisorara/ImageViewer/internal/auth"
	"github.com/Kamisorara/ImageViewer/internal/log"
	"github.com/Kamisorara/ImageViewer/internal/route"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

// loginForm is the state of the login screen. It lives exactly as long as
// the screen is shown.
type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
	spinner  spinner.Model
	pending  bool
	seq      int
	cancel   context.CancelFunc
}

type loginResultMsg struct {
	seq      int
	username string
	outcome  auth.Outcome
	err      error
}

func newLoginForm() *loginForm {
	username := textinput.New()
	username.Placeholder = "请输入用户名"
	username.CharLimit = 64
	username.Prompt = ""

	password := textinput.New()
	password.Placeholder = "请输入密码"
	password.CharLimit = 64
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	return &loginForm{username: username, password: password, spinner: s}
}

func (f *loginForm) focusField(field int) tea.Cmd {
	f.focus = (field%fieldCount + fieldCount) % fieldCount
	if f.focus == fieldUsername {
		f.password.Blur()
		return f.username.Focus()
	}
	f.username.Blur()
	return f.password.Focus()
}

func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldUsername {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return cmd
}

// submit starts an attempt bound to a context the form owns. It does
// nothing while an attempt is pending.
func (f *loginForm) submit(a *auth.Authenticator) tea.Cmd {
	if f.pending {
		return nil
	}
	f.seq++
	seq := f.seq
	username, password := f.username.Value(), f.password.Value()
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.pending = true

	attempt := func() tea.Msg {
		outcome, err := a.Attempt(ctx, username, password)
		return loginResultMsg{seq: seq, username: username, outcome: outcome, err: err}
	}
	return tea.Batch(attempt, f.spinner.Tick)
}

func (f *loginForm) finish() {
	f.pending = false
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// abandon cancels a pending attempt; its result is dropped when it arrives.
func (f *loginForm) abandon() {
	f.finish()
	f.seq++
}

func (m *Model) openLogin() tea.Cmd {
	m.router.Push(route.Login, nil)
	m.login = newLoginForm()
	m.alert = nil
	return tea.Batch(m.login.focusField(fieldUsername), m.locationChanged())
}

func (m *Model) dismissLogin() tea.Cmd {
	if m.login == nil {
		return nil
	}
	m.login.abandon()
	m.login = nil
	m.router.Back()
	return m.locationChanged()
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	f := m.login
	switch msg.String() {
	case "esc":
		return m.dismissLogin()
	case "tab", "down":
		return f.focusField(f.focus + 1)
	case "shift+tab", "up":
		return f.focusField(f.focus - 1)
	case "enter":
		return f.submit(m.auth)
	}
	return f.update(msg)
}

func (m *Model) handleLoginMouse(msg tea.MouseMsg) tea.Cmd {
	f := m.login
	switch {
	case m.zones.Get(zoneLoginClose).InBounds(msg):
		return m.dismissLogin()
	case m.zones.Get(zoneLoginSubmit).InBounds(msg):
		return f.submit(m.auth)
	case m.zones.Get(zoneLoginUsername).InBounds(msg):
		return f.focusField(fieldUsername)
	case m.zones.Get(zoneLoginPassword).InBounds(msg):
		return f.focusField(fieldPassword)
	}
	return nil
}

func (m *Model) handleLoginResult(msg loginResultMsg) tea.Cmd {
	f := m.login
	if f == nil || msg.seq != f.seq {
		return nil
	}
	f.finish()
	if msg.err != nil {
		log.Printf("login: attempt abandoned: %v", msg.err)
		return nil
	}
	log.Printf("login: %s -> %s", msg.username, msg.outcome)

	if msg.outcome == auth.OutcomeAccepted {
		m.login = nil
		m.router.Navigate(route.Profile, auth.ReturnParams(msg.username))
		return m.locationChanged()
	}
	title, text := msg.outcome.Advisory()
	m.alert = &alert{title: title, message: text}
	return nil
}

func (m *Model) loginView() string {
	f := m.login
	width := clamp(m.width-4, 20, 48)

	closeButton := m.zones.Mark(zoneLoginClose, titleStyle.Render("✕"))
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		closeButton,
		lipgloss.PlaceHorizontal(width-2, lipgloss.Center, titleStyle.Render("登录")),
	)

	field := func(id, label string, input textinput.Model, focused bool) string {
		style := inputStyle
		if focused {
			style = inputFocusStyle
		}
		input.Width = max(width-6, 4)
		box := style.Width(width - 2).Render(input.View())
		return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), m.zones.Mark(id, box))
	}

	submitLabel := "登录"
	if f.pending {
		submitLabel = f.spinner.View() + " 登录中…"
	}
	submit := m.zones.Mark(zoneLoginSubmit,
		buttonStyle.Width(width).Align(lipgloss.Center).Render(submitLabel))

	form := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		titleStyle.Render("欢迎回来"),
		hintStyle.Render("请登录您的账户继续使用"),
		"",
		field(zoneLoginUsername, "用户名", f.username, f.focus == fieldUsername),
		field(zoneLoginPassword, "密码", f.password, f.focus == fieldPassword),
		lipgloss.PlaceHorizontal(width, lipgloss.Right, linkStyle.Render("忘记密码?")),
		"",
		submit,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, hintStyle.Render("没有账户? ")+linkStyle.Render("立即注册")),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, form)
}
