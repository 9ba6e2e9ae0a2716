package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Kamisorara/ImageViewer/internal/tree"
)

// ErrInvalidDataset is returned by PrintTree in strict mode when the
// dataset has problems.
var ErrInvalidDataset = errors.New("dataset has problems")

// PrintTree writes the mapping as an indented tree starting at the root,
// followed by any validation problems. Folders already shown on the
// current branch are not expanded again.
func PrintTree(w io.Writer, mapping tree.Mapping, strict bool) error {
	nav := tree.NewNavigator(mapping)
	if _, err := fmt.Fprintln(w, tree.Root+"/"); err != nil {
		return err
	}

	onBranch := map[string]bool{tree.Root: true}
	var walk func(path string, depth int) error
	walk = func(path string, depth int) error {
		for _, entry := range nav.ListChildren(path) {
			if _, err := fmt.Fprintln(w, formatEntryLabel(entry, depth)); err != nil {
				return err
			}
			child, ok := nav.ChildPathOf(path, entry)
			if !ok || onBranch[child] {
				continue
			}
			onBranch[child] = true
			if err := walk(child, depth+1); err != nil {
				return err
			}
			delete(onBranch, child)
		}
		return nil
	}
	if err := walk(tree.Root, 1); err != nil {
		return err
	}

	problems := tree.Validate(nav.Mapping())
	if len(problems) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\n%d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(w, "  %s\n", p)
	}
	if strict {
		return fmt.Errorf("%w: %d problem(s)", ErrInvalidDataset, len(problems))
	}
	return nil
}

func formatEntryLabel(entry tree.Entry, depth int) string {
	indent := strings.Repeat("  ", depth-1)
	switch entry.Kind {
	case tree.KindFolder:
		return indent + "+ " + entry.Name + "/"
	case tree.KindImage:
		return indent + "  " + entry.Name + " <" + entry.ImageURI + ">"
	default:
		return indent + "  " + entry.Name
	}
}
