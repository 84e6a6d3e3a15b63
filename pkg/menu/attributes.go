package menu

import (
	"maps"
	"slices"
	"strings"
)

const classKey = "class"

// Attributes are the HTML attributes applied to a rendered element.
type Attributes map[string]string

// Clone returns a copy of the attributes. A nil receiver yields an empty map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// Merge returns a new attribute set with extra applied on top of a.
// The class attribute is additive: an existing class value is kept and the
// new one is appended after a single space. Any other key is overwritten.
func (a Attributes) Merge(extra Attributes) Attributes {
	out := a.Clone()
	for k, v := range extra {
		if k == classKey {
			out[k] = joinClass(out[k], v)
			continue
		}
		out[k] = v
	}
	return out
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

func joinClass(existing, add string) string {
	existing = strings.TrimSpace(existing)
	add = strings.TrimSpace(add)
	switch {
	case existing == "":
		return add
	case add == "":
		return existing
	default:
		return existing + " " + add
	}
}
