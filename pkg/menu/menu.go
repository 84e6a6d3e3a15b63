package menu

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// PathFromRequest returns the request path in the form menu URLs are stored:
// without the leading slash, and "/" for the site root.
func PathFromRequest(r *http.Request) string {
	p := strings.TrimPrefix(r.URL.Path, "/")
	if p == "" {
		return "/"
	}
	return p
}

// ServeHTTP responds with the rendered bound containers, marking the entries
// that match the request path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling menu request",
		"method", r.Method,
		"url", r.URL.Path,
	)

	out, err := h.render(nil, DefaultElement, PathFromRequest(r))
	if err != nil {
		slog.Error("failed to render menu", "containers", h.names, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, out); err != nil {
		slog.Error("failed to write menu", "error", err)
	}
}

// container is the JSON form of one registry entry.
type container struct {
	Name  string `json:"name"`
	Items *Items `json:"items"`
}

// JSONHandler returns an HTTP handler that responds with every container and
// its entries as JSON, in creation order.
func (r *Registry) JSONHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		slog.Debug("handling menu listing request",
			"method", req.Method,
			"url", req.URL.Path,
		)

		names := r.Names()
		list := make([]container, 0, len(names))
		for _, name := range names {
			list = append(list, container{Name: name, Items: r.Get(name)})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(list); err != nil {
			slog.Error("failed to encode menu containers", "error", err)
		}
	})
}
