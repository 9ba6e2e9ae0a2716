package tree

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta is the optional front matter of a file entry's content.
type Meta struct {
	Title  string   `yaml:"title" toml:"title"`
	Author string   `yaml:"author" toml:"author"`
	Tags   []string `yaml:"tags" toml:"tags"`
}

// Document is a file entry's content split into metadata and body.
type Document struct {
	Meta Meta
	Body string
}

// ParseDocument separates YAML or TOML front matter from the Markdown body.
// Content without front matter is returned as the body unchanged.
func ParseDocument(content string) (Document, error) {
	var meta Meta
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return Document{}, fmt.Errorf("parse front matter: %w", err)
	}
	return Document{Meta: meta, Body: string(rest)}, nil
}

// Markdown renders the document of entry, listed under path, as Markdown.
// Entries without content get a short summary card.
func (d Document) Markdown(path string, entry Entry) string {
	title := d.Meta.Title
	if title == "" {
		title = entry.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if d.Meta.Author != "" {
		fmt.Fprintf(&b, "*%s*\n\n", d.Meta.Author)
	}
	if len(d.Meta.Tags) > 0 {
		fmt.Fprintf(&b, "`%s`\n\n", strings.Join(d.Meta.Tags, "` `"))
	}

	body := strings.TrimSpace(d.Body)
	if body == "" {
		fmt.Fprintf(&b, "- 类型: %s\n- 位置: %s\n- 编号: %s\n\n", entry.Kind, Breadcrumb(path), entry.ID)
		b.WriteString("_没有可预览的内容_\n")
		return b.String()
	}
	b.WriteString(body)
	b.WriteByte('\n')
	return b.String()
}
