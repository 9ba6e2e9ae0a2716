package tree

import "fmt"

// Problem describes a dataset inconsistency found by Validate.
type Problem struct {
	Path   string
	Entry  Entry
	Reason string
}

func (p Problem) String() string {
	if p.Entry.ID == "" {
		return fmt.Sprintf("%s: %s", p.Path, p.Reason)
	}
	return fmt.Sprintf("%s: entry %q (%s): %s", p.Path, p.Entry.ID, p.Entry.Name, p.Reason)
}

// Validate reports folders that lead to unlisted paths, images without a
// URI, duplicate identifiers within a listing and a missing Root. Browsing
// tolerates all of these; an unlisted path simply has no contents.
func Validate(mapping Mapping) []Problem {
	var problems []Problem
	if _, ok := mapping[Root]; !ok {
		problems = append(problems, Problem{Path: Root, Reason: "root path is not listed"})
	}

	for _, path := range mapping.Paths() {
		seen := make(map[string]bool)
		for _, entry := range mapping[path] {
			if seen[entry.ID] {
				problems = append(problems, Problem{Path: path, Entry: entry, Reason: "duplicate id"})
			}
			seen[entry.ID] = true

			switch entry.Kind {
			case KindFolder:
				child, _ := childPath(path, entry)
				if _, ok := mapping[child]; !ok {
					problems = append(problems, Problem{
						Path:   path,
						Entry:  entry,
						Reason: fmt.Sprintf("folder leads to unlisted path %q", child),
					})
				}
			case KindImage:
				if entry.ImageURI == "" {
					problems = append(problems, Problem{Path: path, Entry: entry, Reason: "image has no uri"})
				}
			}
		}
	}
	return problems
}
