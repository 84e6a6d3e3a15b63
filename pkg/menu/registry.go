package menu

import (
	"log/slog"
	"sync"

	"github.com/mchmarny/navmenu/pkg/metric"
)

// DefaultContainer is the name of the unnamed container.
const DefaultContainer = ""

// Registry holds named menu containers. Containers are created on first
// reference and live as long as the registry.
type Registry struct {
	mu         sync.Mutex
	containers map[string]*Items
	order      []string

	renders metric.IncrementalCounter // labels: container
	matches metric.IncrementalCounter // labels: state
}

func (r *Registry) counters() (renders, matches metric.IncrementalCounter) {
	renders, matches = r.renders, r.matches
	if renders == nil {
		renders = metric.Discard
	}
	if matches == nil {
		matches = metric.Discard
	}
	return renders, matches
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRenderCounter counts rendered containers, labeled by container name.
func WithRenderCounter(c metric.IncrementalCounter) RegistryOption {
	return func(r *Registry) { r.renders = c }
}

// WithActiveCounter counts entries rendered as active or active-children,
// labeled by state.
func WithActiveCounter(c metric.IncrementalCounter) RegistryOption {
	return func(r *Registry) { r.matches = c }
}

// NewRegistry creates an empty registry. The zero value is also usable and
// records no metrics.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		containers: make(map[string]*Items),
		renders:    metric.Discard,
		matches:    metric.Discard,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Get returns the container registered under name, creating an empty one
// the first time the name is seen.
func (r *Registry) Get(name string) *Items {
	r.mu.Lock()
	defer r.mu.Unlock()

	if items, ok := r.containers[name]; ok {
		return items
	}

	if r.containers == nil {
		r.containers = make(map[string]*Items)
	}

	items := NewItems()
	r.containers[name] = items
	r.order = append(r.order, name)

	slog.Debug("menu container created", "container", name)

	return items
}

// Has reports whether a container with the given name exists.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.containers[name]
	return ok
}

// Names returns the container names in creation order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Handler returns a handler bound to the named containers, creating any that
// do not exist yet. Without names it is bound to the default container.
func (r *Registry) Handler(names ...string) *Handler {
	if len(names) == 0 {
		names = []string{DefaultContainer}
	}

	h := &Handler{
		registry: r,
		builder:  HTMLBuilder{},
		current:  func() string { return "" },
		maxDepth: DefaultMaxDepth,
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		r.Get(name)
		h.names = append(h.names, name)
	}

	return h
}
