package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChildren(t *testing.T) {
	nav := NewNavigator(Sample())

	root := nav.ListChildren(Root)
	require.Len(t, root, 3)
	assert.Equal(t, "文档", root[0].Name)
	assert.Equal(t, KindImage, root[2].Kind)

	assert.Empty(t, nav.ListChildren("root/9"))
	assert.NotNil(t, nav.ListChildren("root/9"))
	assert.Empty(t, nav.ListChildren(""))
}

func TestListChildrenReturnsCopy(t *testing.T) {
	mapping := Sample()
	nav := NewNavigator(mapping)

	mapping[Root][0].Name = "changed"
	assert.Equal(t, "文档", nav.ListChildren(Root)[0].Name)

	listed := nav.ListChildren(Root)
	listed[0].Name = "changed"
	assert.Equal(t, "文档", nav.ListChildren(Root)[0].Name)
}

func TestMappingReturnsCopy(t *testing.T) {
	nav := NewNavigator(Sample())

	copied := nav.Mapping()
	assert.Equal(t, Sample(), copied)

	copied[Root][0].Name = "changed"
	delete(copied, "root/1")
	assert.Equal(t, "文档", nav.ListChildren(Root)[0].Name)
	assert.NotEmpty(t, nav.ListChildren("root/1"))
}

func TestChildPathOf(t *testing.T) {
	nav := NewNavigator(Sample())
	entries := nav.ListChildren(Root)

	path, ok := nav.ChildPathOf(Root, entries[0])
	require.True(t, ok)
	assert.Equal(t, "root/1", path)

	_, ok = nav.ChildPathOf(Root, entries[2])
	assert.False(t, ok, "images have no child path")

	path, ok = nav.ChildPathOf("root/1", Entry{ID: "7", Kind: KindFolder})
	require.True(t, ok)
	assert.Equal(t, "root/1/7", path, "missing child path falls back to concatenation")
}

func TestParentPathOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"root/1/4", "root/1"},
		{"root/1", "root"},
		{"root", "root"},
		{"", "root"},
		{"other", "root"},
		{"root/2/", "root/2"},
		{"/", "root"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParentPathOf(tt.path), "ParentPathOf(%q)", tt.path)
	}
}

func TestParentOfChildRoundTrip(t *testing.T) {
	mapping := Sample()
	nav := NewNavigator(mapping)

	for _, path := range mapping.Paths() {
		for _, entry := range nav.ListChildren(path) {
			child, ok := nav.ChildPathOf(path, entry)
			if !ok {
				continue
			}
			assert.Equal(t, path, ParentPathOf(child), "entry %s under %s", entry.ID, path)
		}
	}
}

func TestBreadcrumb(t *testing.T) {
	assert.Equal(t, "root", Breadcrumb(Root))
	assert.Equal(t, "root > 1 > 4", Breadcrumb("root/1/4"))
}
