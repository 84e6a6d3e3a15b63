package menu

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Items is an ordered, append-only tree of menu entries.
// Insertion order is rendering order. The zero value is an empty menu.
type Items struct {
	mu    sync.RWMutex
	items []Item
	err   error
}

// NewItems returns a new empty menu.
func NewItems() *Items {
	return &Items{}
}

// Add appends a link entry and returns the menu so calls can be chained.
// If the children passed with WithChildren already contain this menu the
// entry is dropped and the failure is reported by Err.
func (t *Items) Add(url, title string, opts ...ItemOption) *Items {
	if err := t.add(url, title, opts); err != nil {
		t.fail(err)
	}
	return t
}

func (t *Items) add(url, title string, opts []ItemOption) error {
	c := newItemConfig(opts)
	if c.children != nil && reaches(c.children, t, map[*Items]bool{}) {
		return fmt.Errorf("adding %q below itself: %w", url, ErrCycle)
	}

	t.push(&Link{
		URL:            url,
		Title:          title,
		Children:       c.children,
		LinkAttributes: c.linkAttributes,
		ListAttributes: c.listAttributes,
		ListElement:    c.listElement,
	})
	return nil
}

// Raw appends an entry whose html is emitted verbatim and returns the menu.
func (t *Items) Raw(html string, opts ...ItemOption) *Items {
	c := newItemConfig(opts)
	t.push(&Raw{
		HTML:           html,
		ListAttributes: c.listAttributes,
		ListElement:    c.listElement,
	})
	return t
}

// Attach appends a copy of the top-level entries of other, keeping their order.
// other itself is left untouched; nested menus are shared with it.
func (t *Items) Attach(other *Items) error {
	if other == nil {
		return nil
	}
	if reaches(other, t, map[*Items]bool{}) {
		return fmt.Errorf("attaching menu to itself: %w", ErrCycle)
	}

	src := other.snapshot()
	copies := make([]Item, 0, len(src))
	for _, item := range src {
		copies = append(copies, copyItem(item))
	}

	t.mu.Lock()
	t.items = append(t.items, copies...)
	t.mu.Unlock()
	return nil
}

// Len returns the number of top-level entries.
func (t *Items) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// All returns copies of the top-level entries in order.
func (t *Items) All() []Item {
	src := t.snapshot()
	out := make([]Item, 0, len(src))
	for _, item := range src {
		out = append(out, copyItem(item))
	}
	return out
}

// Err returns the first error recorded by a chained Add call.
func (t *Items) Err() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}

// MarshalJSON encodes the entries as a JSON array.
func (t *Items) MarshalJSON() ([]byte, error) {
	items := t.snapshot()
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}

func (t *Items) push(item Item) {
	t.mu.Lock()
	t.items = append(t.items, item)
	t.mu.Unlock()
}

func (t *Items) fail(err error) {
	t.mu.Lock()
	if t.err == nil {
		t.err = err
	}
	t.mu.Unlock()
}

// snapshot returns the current entry slice. Entries are shared and must be
// treated as read-only.
func (t *Items) snapshot() []Item {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.items) == 0 {
		return nil
	}
	out := make([]Item, len(t.items))
	copy(out, t.items)
	return out
}

// reaches reports whether target is from itself or nested anywhere below it.
func reaches(from, target *Items, seen map[*Items]bool) bool {
	if from == nil {
		return false
	}
	if from == target {
		return true
	}
	if seen[from] {
		return false
	}
	seen[from] = true

	for _, item := range from.snapshot() {
		if link, ok := item.(*Link); ok && reaches(link.Children, target, seen) {
			return true
		}
	}
	return false
}
