package menu

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// DefaultElement wraps each rendered level of a menu.
	DefaultElement = "ul"

	// DefaultMaxDepth is the deepest nesting level Render will descend into.
	DefaultMaxDepth = 64

	// ClassActive marks the entry whose URL matches the current path.
	ClassActive = "active"

	// ClassActiveChildren marks entries with an active entry below them.
	ClassActiveChildren = "active-children"
)

// PathFunc returns the path of the current request.
type PathFunc func() string

type prefixMode int

const (
	prefixNone prefixMode = iota
	prefixLiteral
	prefixContainer
)

// Handler is a view over one or more containers of a Registry. Mutations are
// applied to every bound container and Render outputs them one after another.
type Handler struct {
	registry *Registry
	names    []string

	mode    prefixMode
	literal string

	builder  Builder
	current  PathFunc
	maxDepth int

	err error
}

// Containers returns the bound container names in binding order.
func (h *Handler) Containers() []string {
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// Add appends a link entry to every bound container.
func (h *Handler) Add(url, title string, opts ...ItemOption) *Handler {
	for _, name := range h.names {
		if err := h.registry.Get(name).add(url, title, opts); err != nil {
			h.fail(fmt.Errorf("container %q: %w", name, err))
		}
	}
	return h
}

// Raw appends a raw entry to every bound container.
func (h *Handler) Raw(html string, opts ...ItemOption) *Handler {
	for _, name := range h.names {
		h.registry.Get(name).Raw(html, opts...)
	}
	return h
}

// Attach appends the top-level entries of other to every bound container.
func (h *Handler) Attach(other *Items) *Handler {
	for _, name := range h.names {
		if err := h.registry.Get(name).Attach(other); err != nil {
			h.fail(fmt.Errorf("container %q: %w", name, err))
		}
	}
	return h
}

// Err returns the errors recorded by mutations, joined.
func (h *Handler) Err() error {
	return h.err
}

// Prefix prepends text and a slash to every rendered URL.
func (h *Handler) Prefix(text string) *Handler {
	h.mode = prefixLiteral
	h.literal = text + "/"
	return h
}

// PrefixContainer prepends the name of the container being rendered and a
// slash to every rendered URL. The default container gets no prefix.
func (h *Handler) PrefixContainer() *Handler {
	h.mode = prefixContainer
	h.literal = ""
	return h
}

// NoPrefix renders URLs as they were added.
func (h *Handler) NoPrefix() *Handler {
	h.mode = prefixNone
	h.literal = ""
	return h
}

// SetBuilder replaces the markup builder.
func (h *Handler) SetBuilder(b Builder) *Handler {
	if b != nil {
		h.builder = b
	}
	return h
}

// SetCurrentPath sets the source of the path entries are compared against.
func (h *Handler) SetCurrentPath(fn PathFunc) *Handler {
	if fn != nil {
		h.current = fn
	}
	return h
}

// SetMaxDepth limits how deep Render descends into nested menus.
func (h *Handler) SetMaxDepth(n int) *Handler {
	if n > 0 {
		h.maxDepth = n
	}
	return h
}

// Render renders every bound container, in binding order, each wrapped in
// element with the given attributes. An empty element renders as "ul".
func (h *Handler) Render(attrs Attributes, element string) (string, error) {
	return h.render(attrs, element, h.current())
}

// String renders with default arguments. Render errors produce an empty string.
func (h *Handler) String() string {
	out, err := h.Render(nil, DefaultElement)
	if err != nil {
		slog.Error("failed to render menu", "containers", h.names, "error", err)
		return ""
	}
	return out
}

func (h *Handler) render(attrs Attributes, element, current string) (string, error) {
	if element == "" {
		element = DefaultElement
	}

	renders, matches := h.registry.counters()

	var sb strings.Builder
	for _, name := range h.names {
		r := &renderer{
			builder:  h.builder,
			prefix:   h.prefixFor(name),
			current:  current,
			maxDepth: h.maxDepth,
			matches:  matches,
		}

		out, err := r.level(h.registry.Get(name).snapshot(), attrs, element, 0)
		if err != nil {
			return "", fmt.Errorf("rendering container %q: %w", name, err)
		}

		sb.WriteString(out)
		renders.Increment(name)
	}

	return sb.String(), nil
}

func (h *Handler) prefixFor(container string) string {
	switch h.mode {
	case prefixLiteral:
		return h.literal
	case prefixContainer:
		if container == DefaultContainer {
			return ""
		}
		return container + "/"
	default:
		return ""
	}
}

func (h *Handler) fail(err error) {
	if h.err == nil {
		h.err = err
		return
	}
	h.err = errors.Join(h.err, err)
}
