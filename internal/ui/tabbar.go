package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type tabItem struct {
	icon  string
	label string
}

var tabItems = [2]tabItem{
	{icon: "⌂", label: "预览"},
	{icon: "☺", label: "个人"},
}

// tabBarView renders the rule, the two tab labels and the indicator row.
// The indicator column comes from the animator's live position, sampled on
// every frame.
func (m *Model) tabBarView() string {
	half := m.width / 2
	widths := [2]int{half, m.width - half}

	cells := make([]string, len(tabItems))
	for i, item := range tabItems {
		style := tabInactiveStyle
		if i == m.tabIndex {
			style = tabActiveStyle
		}
		cell := lipgloss.PlaceHorizontal(widths[i], lipgloss.Center, style.Render(item.icon+" "+item.label))
		cells[i] = m.zones.Mark(tabZoneIDs[i], cell)
	}

	rule := tabRuleStyle.Render(strings.Repeat("─", m.width))
	labels := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	indicator := strings.Repeat(" ", m.animator.Offset()) +
		indicatorStyle.Render(strings.Repeat("━", m.animator.Width()))
	return lipgloss.JoinVertical(lipgloss.Left, rule, labels, indicator)
}
