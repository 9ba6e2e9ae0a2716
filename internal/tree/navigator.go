package tree

import (
	"slices"
	"strings"
)

// Navigator answers listing and path questions over a fixed mapping.
type Navigator struct {
	mapping Mapping
}

// NewNavigator copies mapping so later changes by the caller are not seen.
func NewNavigator(mapping Mapping) *Navigator {
	return &Navigator{mapping: mapping.Clone()}
}

// ListChildren returns the entries of path. An absent path has no contents.
func (n *Navigator) ListChildren(path string) []Entry {
	entries, ok := n.mapping[path]
	if !ok {
		return []Entry{}
	}
	return slices.Clone(entries)
}

// Mapping returns a copy of the underlying mapping.
func (n *Navigator) Mapping() Mapping {
	return n.mapping.Clone()
}

// ChildPathOf returns the path a folder entry listed under parent leads
// to. The second result is false for files and images.
func (n *Navigator) ChildPathOf(parent string, entry Entry) (string, bool) {
	return childPath(parent, entry)
}

// IndexOfChild reports the position of the folder under parent leading to
// child, or -1.
func (n *Navigator) IndexOfChild(parent, child string) int {
	return n.mapping.IndexOfChild(parent, child)
}

func childPath(parent string, entry Entry) (string, bool) {
	if !entry.IsFolder() {
		return "", false
	}
	if entry.ChildPath != "" {
		return entry.ChildPath, true
	}
	return joinPath(parent, entry.ID), true
}

// ParentPathOf drops the last segment of path. What remains of an empty
// or single-segment path is Root, so ParentPathOf(Root) is Root. A
// trailing separator counts as an empty last segment.
func ParentPathOf(path string) string {
	segments := strings.Split(path, Separator)
	if len(segments) <= 1 {
		return Root
	}
	parent := strings.Join(segments[:len(segments)-1], Separator)
	if parent == "" {
		return Root
	}
	return parent
}

// Breadcrumb renders path for display, e.g. "root > 1 > 4".
func Breadcrumb(path string) string {
	return strings.ReplaceAll(path, Separator, " > ")
}

func joinPath(base, part string) string {
	if base == "" {
		return part
	}
	return base + Separator + part
}
