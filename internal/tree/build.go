package tree

import (
	"path"
	"strings"
)

// Build constructs a mapping that mirrors the provided relative file
// paths. Intermediate directories become folders keyed under Root, and
// entries are identified by their segment name. Images point at their
// relative path.
func Build(files []string) Mapping {
	mapping := Mapping{Root: {}}

	for _, rel := range files {
		rel = strings.Trim(rel, Separator)
		if rel == "" {
			continue
		}
		parts := strings.Split(rel, Separator)
		current := Root

		for i, part := range parts {
			if part == "" {
				continue
			}
			isDir := i < len(parts)-1
			if isDir {
				childPath := joinPath(current, part)
				if !hasEntry(mapping[current], part) {
					mapping[current] = append(mapping[current], Entry{
						ID:        part,
						Name:      part,
						Kind:      KindFolder,
						ChildPath: childPath,
					})
				}
				if _, ok := mapping[childPath]; !ok {
					mapping[childPath] = []Entry{}
				}
				current = childPath
				continue
			}

			if hasEntry(mapping[current], part) {
				continue
			}
			entry := Entry{ID: part, Name: part, Kind: kindForName(part)}
			if entry.Kind == KindImage {
				entry.ImageURI = rel
			}
			mapping[current] = append(mapping[current], entry)
		}
	}

	for key := range mapping {
		sortEntries(mapping[key])
	}
	return mapping
}

func hasEntry(entries []Entry, id string) bool {
	for _, entry := range entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

func kindForName(name string) Kind {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return KindImage
	default:
		return KindFile
	}
}
