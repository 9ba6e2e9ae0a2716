package ui

import "github.com/charmbracelet/lipgloss"

var (
	tintColor     = lipgloss.Color("#2f95dc")
	accentColor   = lipgloss.Color("#69abf1")
	linkColor     = lipgloss.Color("#007AFF")
	mutedColor    = lipgloss.Color("#888888")
	ruleColor     = lipgloss.Color("#3b4261")
	folderColor   = lipgloss.Color("#FFD700")
	documentColor = lipgloss.Color("#A9A9A9")
	errorColor    = lipgloss.Color("#ff6b6b")

	tabActiveStyle   = lipgloss.NewStyle().Foreground(tintColor).Bold(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8e8e93"))
	tabRuleStyle     = lipgloss.NewStyle().Foreground(ruleColor)
	indicatorStyle   = lipgloss.NewStyle().Foreground(tintColor)

	titleStyle      = lipgloss.NewStyle().Bold(true)
	backButtonStyle = lipgloss.NewStyle().Foreground(linkColor)
	breadcrumbStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	entryStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	entrySelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#7aa2f7")).
				Bold(true)
	emptyStyle = lipgloss.NewStyle().Foreground(mutedColor).Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ruleColor).
			Padding(1, 2).
			MarginTop(1)
	usernameStyle = lipgloss.NewStyle().Bold(true)
	buttonStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accentColor).
			Bold(true).
			Padding(0, 2)
	hintStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	linkStyle  = lipgloss.NewStyle().Foreground(accentColor)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Bold(true)
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ruleColor).
			Padding(0, 1)
	inputFocusStyle = inputStyle.BorderForeground(accentColor)

	statusStyle = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Padding(0, 1)

	overlayBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
)
