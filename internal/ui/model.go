// Package ui implements the Bubble Tea shell: the tab bar with its
// animated indicator, the file browser, the profile tab and the login form.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Kamisorara/ImageViewer/internal/auth"
	"github.com/Kamisorara/ImageViewer/internal/log"
	"github.com/Kamisorara/ImageViewer/internal/motion"
	"github.com/Kamisorara/ImageViewer/internal/route"
	"github.com/Kamisorara/ImageViewer/internal/tree"
)

const (
	tabBarHeight          = 3
	statusHeight          = 1
	defaultIndicatorWidth = 12
)

// Model implements the Bubble Tea program for the tab shell.
type Model struct {
	router   *route.Router
	tabIndex int
	animator *motion.Animator

	nav           *tree.Navigator
	browser       *tree.Browser
	docVP         viewport.Model
	renderer      *glamour.TermRenderer
	rendererWidth int
	docOpen       bool
	docRaw        string
	docTitle      string

	auth    *auth.Authenticator
	session auth.Session
	login   *loginForm

	alert    *alert
	showHelp bool
	status   string
	err      error
	zones    *zone.Manager
	width    int
	height   int
	quitting bool

	indicatorWidth int

	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	initialWatchPath string
}

type frameMsg time.Time

// NewModel constructs the shell with the provided initial state. Every new
// model starts on the home tab at the tree root, signed out.
func NewModel(state State) *Model {
	authenticator := state.Authenticator
	if authenticator == nil {
		authenticator = auth.New(auth.DefaultCredentials(), auth.DefaultDelay)
	}
	indicatorWidth := state.IndicatorWidth
	if indicatorWidth <= 0 {
		indicatorWidth = defaultIndicatorWidth
	}
	mapping := state.Mapping
	if mapping == nil {
		mapping = tree.Sample()
	}

	docVP := viewport.New(0, 0)
	docVP.Style = lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(ruleColor)

	zones := zone.New()
	zones.SetEnabled(state.Mouse)

	nav := tree.NewNavigator(mapping)
	m := &Model{
		router:           route.NewRouter(route.Home),
		tabIndex:         route.HomeTab,
		animator:         motion.NewAnimator(motion.Layout{IndicatorWidth: indicatorWidth}, state.Spring),
		nav:              nav,
		browser:          tree.NewBrowser(nav),
		docVP:            docVP,
		auth:             authenticator,
		status:           state.Notice,
		zones:            zones,
		indicatorWidth:   indicatorWidth,
		initialWatchPath: state.DatasetPath,
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		return m, m.stepIndicator()
	case loginResultMsg:
		return m, m.handleLoginResult(msg)
	case spinner.TickMsg:
		if m.login == nil || !m.login.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.login.spinner, cmd = m.login.spinner.Update(msg)
		return m, cmd
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.docOpen {
		var cmd tea.Cmd
		m.docVP, cmd = m.docVP.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.alert != nil {
		switch key {
		case "enter", "esc", " ", "q":
			m.alert = nil
		}
		return nil
	}

	if m.showHelp {
		switch key {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return nil
	}

	if m.login != nil {
		return m.handleLoginKey(msg)
	}

	switch key {
	case "q":
		return m.quit()
	case "?":
		m.showHelp = true
		return nil
	case "1":
		return m.switchTab(route.HomeTab)
	case "2":
		return m.switchTab(route.ProfileTab)
	case "tab", "shift+tab":
		return m.switchTab(1 - m.tabIndex)
	}

	switch m.tabIndex {
	case route.ProfileTab:
		return m.handleProfileKey(key)
	default:
		return m.handleBrowserKey(msg)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.scroll(1)
		return nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if m.alert != nil {
		if m.zones.Get(zoneAlert).InBounds(msg) {
			m.alert = nil
		}
		return nil
	}
	if m.showHelp {
		m.showHelp = false
		return nil
	}
	if m.login != nil {
		return m.handleLoginMouse(msg)
	}

	for i, id := range tabZoneIDs {
		if m.zones.Get(id).InBounds(msg) {
			return m.switchTab(i)
		}
	}
	if m.tabIndex == route.ProfileTab {
		return m.handleProfileMouse(msg)
	}
	return m.handleBrowserMouse(msg)
}

func (m *Model) scroll(delta int) {
	if m.login != nil || m.tabIndex != route.HomeTab {
		return
	}
	if m.docOpen {
		if delta < 0 {
			m.docVP.ScrollUp(-delta)
		} else {
			m.docVP.ScrollDown(delta)
		}
		return
	}
	m.browser.Move(delta)
}

// switchTab activates a tab route, dismissing any pushed screen.
func (m *Model) switchTab(index int) tea.Cmd {
	path, ok := route.PathForTab(index)
	if !ok {
		return nil
	}
	if m.login != nil {
		m.login.abandon()
		m.login = nil
	}
	m.router.Navigate(path, nil)
	return m.locationChanged()
}

// locationChanged brings tab state in line with the router after every
// navigation and starts the indicator frame loop when it has to move.
func (m *Model) locationChanged() tea.Cmd {
	loc := m.router.Current()
	m.tabIndex = route.Resolve(loc.Path, m.tabIndex)
	if loc.Path == route.Profile {
		m.session = auth.SessionFromLocation(loc)
	}
	log.Printf("navigate: location=%s tab=%d", loc.Path, m.tabIndex)

	if m.animator.TransitionTo(m.tabIndex) {
		return m.frameCmd()
	}
	return nil
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.animator.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) stepIndicator() tea.Cmd {
	if m.animator.Step() {
		return nil
	}
	return m.frameCmd()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	if m.login != nil {
		m.login.abandon()
	}
	m.closeWatcher()
	return tea.Quit
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	m.animator.Resize(motion.Layout{BarWidth: width, IndicatorWidth: m.indicatorWidth})
	m.layoutDocument()
}

func (m *Model) bodyHeight() int {
	return max(m.height-tabBarHeight-statusHeight, 1)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}

	var screen string
	if m.login != nil {
		screen = m.fill(m.loginView(), m.height-statusHeight)
		screen = lipgloss.JoinVertical(lipgloss.Left, screen, m.statusLine())
	} else {
		body := m.browserView()
		if m.tabIndex == route.ProfileTab {
			body = m.profileView()
		}
		screen = lipgloss.JoinVertical(lipgloss.Left,
			m.fill(body, m.bodyHeight()),
			m.statusLine(),
			m.tabBarView(),
		)
	}

	switch {
	case m.alert != nil:
		screen = m.overlay(m.alertView())
	case m.showHelp:
		screen = m.overlay(helpView())
	}
	return m.zones.Scan(screen)
}

func (m *Model) fill(content string, height int) string {
	height = max(height, 1)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(content)
}

func (m *Model) statusLine() string {
	width := max(m.width-2, 1)
	if m.err != nil {
		return errorStyle.Render(ansi.Truncate(m.err.Error(), width, "…"))
	}
	if m.status != "" {
		return statusStyle.Render(ansi.Truncate(m.status, width, "…"))
	}
	return statusStyle.Render(ansi.Truncate(hintFor(m), width, "…"))
}

func hintFor(m *Model) string {
	switch {
	case m.login != nil:
		return "tab 切换输入框 · enter 登录 · esc 关闭"
	case m.tabIndex == route.ProfileTab:
		return "1/2 切换标签 · enter 登录 · ? 帮助 · q 退出"
	case m.docOpen:
		return "j/k 滚动 · esc 关闭预览 · ? 帮助"
	default:
		return "j/k 选择 · enter 打开 · b 返回上级 · 1/2 切换标签 · ? 帮助"
	}
}

func (m *Model) overlay(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func helpView() string {
	return overlayBoxStyle.Render(strings.Join([]string{
		"帮助 (?:关闭 / Esc)",
		"1 / 2 / Tab      : 切换 预览 与 个人 标签",
		"j / k            : 选择条目 / 滚动预览",
		"Enter / l        : 打开文件夹、文件或图片",
		"b / h / Backspace: 返回上一级目录",
		"Esc              : 关闭预览或登录页",
		"x                : 退出登录 (个人标签)",
		"鼠标点击         : 标签、条目与按钮",
		"q / Ctrl+c       : 退出",
	}, "\n"))
}
