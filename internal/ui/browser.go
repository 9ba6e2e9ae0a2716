package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Kamisorara/ImageViewer/internal/log"
	"github.com/Kamisorara/ImageViewer/internal/tree"
)

const (
	browserHeaderHeight = 3
	minListWidth        = 24
	minDocumentWidth    = 20
)

func (m *Model) handleBrowserKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if m.docOpen {
		switch key {
		case "esc", "h", "left", "b", "backspace":
			m.closeDocument()
		case "j", "down":
			m.docVP.ScrollDown(1)
		case "k", "up":
			m.docVP.ScrollUp(1)
		case "ctrl+d", "pgdown", " ":
			m.docVP.HalfPageDown()
		case "ctrl+u", "pgup":
			m.docVP.HalfPageUp()
		case "g", "home":
			m.docVP.GotoTop()
		case "G", "end":
			m.docVP.GotoBottom()
		default:
			var cmd tea.Cmd
			m.docVP, cmd = m.docVP.Update(msg)
			return cmd
		}
		return nil
	}

	switch key {
	case "j", "down":
		m.browser.Move(1)
	case "k", "up":
		m.browser.Move(-1)
	case "ctrl+d", "pgdown":
		m.browser.Move(max(1, m.listHeight()/2))
	case "ctrl+u", "pgup":
		m.browser.Move(-max(1, m.listHeight()/2))
	case "g", "home":
		m.browser.Select(0)
	case "G", "end":
		m.browser.Select(len(m.browser.Entries()) - 1)
	case "enter", "l", "right":
		m.enterSelected()
	case "b", "h", "left", "backspace", "esc":
		m.goUp()
	}
	return nil
}

func (m *Model) handleBrowserMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.browser.AtRoot() && m.zones.Get(zoneBack).InBounds(msg) {
		m.goUp()
		return nil
	}
	for i := range m.browser.Entries() {
		if m.zones.Get(entryZoneID(i)).InBounds(msg) {
			m.browser.Select(i)
			m.enterSelected()
			return nil
		}
	}
	return nil
}

func (m *Model) enterSelected() {
	action := m.browser.Enter()
	switch action.Kind {
	case tree.ActionDescend:
		m.status = ""
		m.err = nil
		log.Printf("browse: enter %s", action.Path)
	case tree.ActionShowImage:
		m.status = fmt.Sprintf("查看图片: %s", action.Entry.ImageURI)
		log.Printf("browse: show image %s (%s)", action.Entry.Name, action.Entry.ImageURI)
	case tree.ActionOpenFile:
		m.openDocument(action)
	}
}

func (m *Model) goUp() {
	from := m.browser.Path()
	if m.browser.Up() {
		m.status = ""
		m.err = nil
		log.Printf("browse: up %s -> %s", from, m.browser.Path())
	}
}

func (m *Model) openDocument(action tree.Action) {
	doc, err := tree.ParseDocument(action.Entry.Content)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.docRaw = doc.Markdown(action.Path, action.Entry)
	m.docTitle = action.Entry.Name
	m.docOpen = true
	log.Printf("browse: open %s in %s", action.Entry.Name, action.Path)
	m.layoutDocument()
	m.docVP.GotoTop()
}

func (m *Model) closeDocument() {
	m.docOpen = false
	m.docRaw = ""
	m.docTitle = ""
	m.docVP.SetContent("")
}

func (m *Model) listHeight() int {
	return max(m.bodyHeight()-browserHeaderHeight, 1)
}

func (m *Model) listWidth() int {
	if !m.docOpen {
		return m.width
	}
	width := clamp(m.width/3, minListWidth, max(m.width/2, minListWidth))
	if m.width-width < minDocumentWidth {
		width = max(m.width-minDocumentWidth, 0)
	}
	return width
}

// layoutDocument sizes the preview panel and re-renders it for the new
// wrap width.
func (m *Model) layoutDocument() {
	if !m.docOpen || m.width == 0 {
		return
	}
	m.docVP.Width = max(m.width-m.listWidth(), 1)
	m.docVP.Height = m.listHeight()

	wrapWidth := max(m.docVP.Width-m.docVP.Style.GetHorizontalFrameSize(), 0)
	if m.renderer == nil || wrapWidth != m.rendererWidth {
		renderer, err := newRenderer(wrapWidth)
		if err != nil {
			m.err = err
			return
		}
		m.renderer = renderer
		m.rendererWidth = wrapWidth
	}

	rendered, err := m.renderer.Render(m.docRaw)
	if err != nil {
		m.err = err
		return
	}
	offset := m.docVP.YOffset
	m.docVP.SetContent(rendered)
	m.docVP.SetYOffset(offset)
}

func (m *Model) browserView() string {
	header := m.browserHeader()
	crumb := breadcrumbStyle.Width(m.width).Render(ansi.Truncate(tree.Breadcrumb(m.browser.Path()), max(m.width-2, 1), "…"))
	list := m.entryList(m.listWidth(), m.listHeight())
	if m.docOpen {
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, m.docVP.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, crumb, list)
}

func (m *Model) browserHeader() string {
	title := "File System"
	if m.docOpen && m.docTitle != "" {
		title += " · " + m.docTitle
	}

	back := ""
	if !m.browser.AtRoot() {
		back = m.zones.Mark(zoneBack, backButtonStyle.Render("← Back"))
	}
	titleWidth := max(m.width-lipgloss.Width(back)-2, 1)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Width(titleWidth).PaddingLeft(1).Render(ansi.Truncate(title, max(titleWidth-1, 1), "…")),
		back,
	)
	rule := tabRuleStyle.Render(strings.Repeat("─", m.width))
	return lipgloss.JoinVertical(lipgloss.Left, row, rule)
}

func (m *Model) entryList(width, height int) string {
	entries := m.browser.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().Width(width).Height(height).Render(emptyStyle.Render("No items found"))
	}

	selected := m.browser.Selected()
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := min(start+height, len(entries))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.zones.Mark(entryZoneID(i), entryRow(entries[i], width, i == selected)))
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(rows, "\n"))
}

func entryRow(entry tree.Entry, width int, selected bool) string {
	glyph := entryGlyph(entry)
	name := entry.Name
	if entry.IsFolder() {
		name += "/"
	}
	name = ansi.Truncate(name, max(width-6, 1), "…")
	if selected {
		return entrySelectedStyle.Width(width).Render(fmt.Sprintf(" %s  %s", ansi.Strip(glyph), name))
	}
	return entryStyle.Width(width).Render(fmt.Sprintf(" %s  %s", glyph, name))
}

func entryGlyph(entry tree.Entry) string {
	switch entry.Kind {
	case tree.KindFolder:
		return lipgloss.NewStyle().Foreground(folderColor).Render("▸")
	case tree.KindImage:
		return lipgloss.NewStyle().Foreground(accentColor).Render("◆")
	default:
		return lipgloss.NewStyle().Foreground(documentColor).Render("≡")
	}
}

func newRenderer(width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(styles.TokyoNightStyle)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	return glamour.NewTermRenderer(opts...)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
