package menu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMenu = `
containers:
  main:
    - url: home
      title: Home
      list_attributes:
        class: nav
      children:
        - url: home/sub
          title: Sub
          link_attributes:
            rel: nofollow
    - html: <hr>
      list_element: div
  footer:
    - url: contact
      title: Contact
`

func TestLoadYAML(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, LoadYAML(strings.NewReader(testMenu), reg))
	assert.Equal(t, []string{"main", "footer"}, reg.Names())

	want := NewRegistry()
	want.Handler("main").
		Add("home", "Home",
			WithListAttributes(Attributes{"class": "nav"}),
			WithChildren(NewItems().Add("home/sub", "Sub", WithLinkAttributes(Attributes{"rel": "nofollow"})))).
		Raw("<hr>", WithListElement("div"))
	want.Handler("footer").Add("contact", "Contact")

	for _, current := range []string{"home", "home/sub", "contact"} {
		got, err := reg.Handler("main", "footer").SetCurrentPath(currentPath(current)).Render(nil, "")
		require.NoError(t, err)
		exp, err := want.Handler("main", "footer").SetCurrentPath(currentPath(current)).Render(nil, "")
		require.NoError(t, err)
		assert.Equal(t, exp, got, current)
	}
}

func TestLoadYAMLAppendsToExistingContainer(t *testing.T) {
	reg := NewRegistry()
	reg.Handler("main").Add("first", "First")

	require.NoError(t, LoadYAML(strings.NewReader(testMenu), reg))

	all := reg.Get("main").All()
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].(*Link).URL)
	assert.Equal(t, "home", all[1].(*Link).URL)
}

func TestLoadYAMLEmpty(t *testing.T) {
	for _, doc := range []string{"", "containers:\n", "containers: {}\n"} {
		reg := NewRegistry()
		require.NoError(t, LoadYAML(strings.NewReader(doc), reg), doc)
		assert.Empty(t, reg.Names())
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		target error
	}{
		{
			name:   "html_with_url",
			doc:    "containers:\n  main:\n    - html: <hr>\n      url: home\n",
			target: ErrInvalidItem,
		},
		{
			name:   "nested_html_with_children",
			doc:    "containers:\n  main:\n    - url: a\n      children:\n        - html: x\n          children:\n            - url: b\n",
			target: ErrInvalidItem,
		},
		{
			name: "unknown_item_field",
			doc:  "containers:\n  main:\n    - url: home\n      titel: Home\n",
		},
		{
			name: "unknown_nested_item_field",
			doc:  "containers:\n  main:\n    - url: a\n      children:\n        - url: b\n          link_attrs: {}\n",
		},
		{
			name: "duplicate_container",
			doc:  "containers:\n  main:\n    - url: a\n  main:\n    - url: b\n",
		},
		{name: "item_not_mapping", doc: "containers:\n  main:\n    - home\n"},
		{name: "containers_not_mapping", doc: "containers:\n  - main\n"},
		{name: "unknown_top_level_field", doc: "menus: {}\n"},
		{name: "items_not_list", doc: "containers:\n  main: home\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadYAML(strings.NewReader(tt.doc), NewRegistry())
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoadYAMLEmptyHTMLIsRaw(t *testing.T) {
	for _, doc := range []string{
		"containers:\n  main:\n    - html:\n",
		"containers:\n  main:\n    - html: \"\"\n",
	} {
		reg := NewRegistry()
		require.NoError(t, LoadYAML(strings.NewReader(doc), reg), doc)

		all := reg.Get("main").All()
		require.Len(t, all, 1)
		raw, ok := all[0].(*Raw)
		require.True(t, ok, "expected a raw item, got %T", all[0])
		assert.Empty(t, raw.HTML)

		out, err := reg.Handler("main").Render(nil, "")
		require.NoError(t, err)
		assert.Equal(t, `<ul><li></li></ul>`, out)
	}
}

func TestLoadYAMLUnknownItemFieldNamed(t *testing.T) {
	err := LoadYAML(strings.NewReader("containers:\n  main:\n    - url: home\n      titel: Home\n"), NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"titel"`)
	assert.Contains(t, err.Error(), `container "main"`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testMenu), 0o600))

	reg := NewRegistry()
	require.NoError(t, LoadFile(path, reg))
	assert.Equal(t, 2, reg.Get("main").Len())

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
