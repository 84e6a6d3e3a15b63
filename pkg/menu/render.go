package menu

import (
	"fmt"
	"strings"

	"github.com/mchmarny/navmenu/pkg/metric"
)

// renderer walks one container. It is created per render call and never
// modifies the entries it visits.
type renderer struct {
	builder  Builder
	prefix   string
	current  string
	maxDepth int
	matches  metric.IncrementalCounter
}

// level renders a list of entries wrapped in element. Empty lists render as "".
func (r *renderer) level(items []Item, attrs Attributes, element string, depth int) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	if depth >= r.maxDepth {
		return "", fmt.Errorf("depth %d: %w", depth, ErrMaxDepth)
	}

	var sb strings.Builder
	for _, item := range items {
		out, err := r.item(item, attrs, element, depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}

	return r.builder.Element(element, sb.String(), attrs.Clone()), nil
}

func (r *renderer) item(item Item, attrs Attributes, element string, depth int) (string, error) {
	tag, listAttrs := item.listElement()

	switch v := item.(type) {
	case *Raw:
		return r.builder.Element(tag, v.HTML, listAttrs.Clone()), nil

	case *Link:
		url := r.prefix + v.URL
		listAttrs = listAttrs.Clone()

		if r.isActive(url) {
			listAttrs = listAttrs.Merge(Attributes{classKey: ClassActive})
			r.matches.Increment(ClassActive)
		}

		if r.hasActiveChildren(v, depth+1) {
			listAttrs = listAttrs.Merge(Attributes{classKey: ClassActiveChildren})
			r.matches.Increment(ClassActiveChildren)
		}

		children, err := r.level(v.Children.snapshot(), attrs, element, depth+1)
		if err != nil {
			return "", fmt.Errorf("below %q: %w", url, err)
		}

		inner := r.builder.Link(url, v.Title, v.LinkAttributes.Clone()) + children
		return r.builder.Element(tag, inner, listAttrs), nil

	default:
		return "", fmt.Errorf("unsupported menu item %T: %w", item, ErrInvalidItem)
	}
}

func (r *renderer) isActive(url string) bool {
	return url == r.current
}

// hasActiveChildren reports whether any link nested below link, at any depth,
// is active. Descent stops at the depth limit; level reports that case.
func (r *renderer) hasActiveChildren(link *Link, depth int) bool {
	if depth >= r.maxDepth {
		return false
	}

	for _, child := range link.Children.snapshot() {
		c, ok := child.(*Link)
		if !ok {
			continue
		}
		if r.isActive(r.prefix+c.URL) || r.hasActiveChildren(c, depth+1) {
			return true
		}
	}

	return false
}
