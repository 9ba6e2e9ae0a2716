// Package tree holds the mock file hierarchy browsed from the home tab.
package tree

import (
	"slices"
	"sort"
	"strings"
)

const (
	// Root is the path of the top-level listing.
	Root = "root"
	// Separator joins the segments of a path.
	Separator = "/"
)

// Kind classifies an entry.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindFile, KindImage:
		return true
	default:
		return false
	}
}

// Entry is one listed item of a path.
type Entry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Kind      Kind   `yaml:"type"`
	ChildPath string `yaml:"path,omitempty"`
	ImageURI  string `yaml:"uri,omitempty"`
	Content   string `yaml:"content,omitempty"`
}

// IsFolder reports whether the entry can be descended into.
func (e Entry) IsFolder() bool {
	return e.Kind == KindFolder
}

// Mapping associates a path with its ordered entries.
type Mapping map[string][]Entry

// Clone returns a deep copy of the mapping.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for path, entries := range m {
		out[path] = slices.Clone(entries)
	}
	return out
}

// Paths returns the keys of the mapping in lexical order.
func (m Mapping) Paths() []string {
	paths := make([]string, 0, len(m))
	for path := range m {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// IndexOfChild returns the index of the folder entry under parent whose
// child path is child, or -1.
func (m Mapping) IndexOfChild(parent, child string) int {
	for i, entry := range m[parent] {
		if p, ok := childPath(parent, entry); ok && p == child {
			return i
		}
	}
	return -1
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ci, cj := entries[i], entries[j]
		switch {
		case ci.IsFolder() == cj.IsFolder():
			return strings.ToLower(ci.Name) < strings.ToLower(cj.Name)
		case ci.IsFolder():
			return true
		default:
			return false
		}
	})
}
