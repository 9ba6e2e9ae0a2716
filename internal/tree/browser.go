package tree

// ActionKind describes what Enter did.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionDescend moved the browser into a folder.
	ActionDescend
	// ActionOpenFile asks the caller to show a file entry.
	ActionOpenFile
	// ActionShowImage asks the caller to display an image entry.
	ActionShowImage
)

// Action is the result of Enter.
type Action struct {
	Kind  ActionKind
	Entry Entry
	Path  string
}

// Browser tracks the current path and selection while browsing. It starts
// at Root.
type Browser struct {
	nav      *Navigator
	path     string
	entries  []Entry
	selected int
}

// NewBrowser creates a browser positioned at Root.
func NewBrowser(nav *Navigator) *Browser {
	b := &Browser{nav: nav}
	b.Reset()
	return b
}

// Reset returns to Root with the first entry selected.
func (b *Browser) Reset() {
	b.setPath(Root, 0)
}

// Path returns the current path.
func (b *Browser) Path() string { return b.path }

// AtRoot reports whether the browser is at Root.
func (b *Browser) AtRoot() bool { return b.path == Root }

// Entries returns the listing of the current path.
func (b *Browser) Entries() []Entry { return b.entries }

// Selected returns the selection index; it is 0 for an empty listing.
func (b *Browser) Selected() int { return b.selected }

// Current returns the selected entry.
func (b *Browser) Current() (Entry, bool) {
	if b.selected < 0 || b.selected >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[b.selected], true
}

// Move shifts the selection by delta, clamped to the listing.
func (b *Browser) Move(delta int) {
	if len(b.entries) == 0 {
		return
	}
	b.selected = clamp(b.selected+delta, 0, len(b.entries)-1)
}

// Select moves the selection to index i.
func (b *Browser) Select(i int) bool {
	if i < 0 || i >= len(b.entries) {
		return false
	}
	b.selected = i
	return true
}

// Enter acts on the selected entry.
func (b *Browser) Enter() Action {
	entry, ok := b.Current()
	if !ok {
		return Action{Kind: ActionNone}
	}
	switch entry.Kind {
	case KindFolder:
		child, _ := b.nav.ChildPathOf(b.path, entry)
		b.setPath(child, 0)
		return Action{Kind: ActionDescend, Entry: entry, Path: child}
	case KindImage:
		return Action{Kind: ActionShowImage, Entry: entry, Path: b.path}
	default:
		return Action{Kind: ActionOpenFile, Entry: entry, Path: b.path}
	}
}

// Up moves to the parent path and selects the folder just left. It is a
// no-op at Root.
func (b *Browser) Up() bool {
	if b.AtRoot() {
		return false
	}
	left := b.path
	parent := ParentPathOf(left)
	b.setPath(parent, max(b.nav.IndexOfChild(parent, left), 0))
	return true
}

func (b *Browser) setPath(path string, selected int) {
	b.path = path
	b.entries = b.nav.ListChildren(path)
	b.selected = 0
	b.Select(selected)
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
