package metric

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter counts events, partitioned by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Discard is a counter that drops every increment.
var Discard IncrementalCounter = discard{}

type discard struct{}

func (discard) Increment(...string) {}

// Counter is an IncrementalCounter backed by a prometheus CounterVec.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series identified by the label values.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry registers a counter vector on reg. Registering the
// same counter twice returns the one registered first.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) (*Counter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("failed to register counter %s: %w", name, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("collector %s is not a counter: %w", name, err)
		}
		vec = existing
	}

	return &Counter{
		Name: name,
		Help: help,
		vec:  vec,
	}, nil
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
