package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/mchmarny/navmenu/pkg/server"
)

var (
	port       = flag.Int("port", server.DefaultPort, "Port to run the server on")
	menuFile   = flag.String("menu", "", "Path to a YAML menu definition (built-in demo menu when empty)")
	containers = flag.String("containers", "", "Comma separated containers to render (all when empty)")
	prefix     = flag.String("prefix", "", "Literal prefix for rendered URLs")
	byName     = flag.Bool("prefix-container", false, "Prefix rendered URLs with the container name")
)

func main() {
	// Parse command-line flags
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	promReg := prometheus.NewRegistry()

	renders, err := metric.NewCounterWithRegistry(promReg,
		"navmenu_render_total", "Number of rendered menu containers.", "container")
	if err != nil {
		return err
	}

	matches, err := metric.NewCounterWithRegistry(promReg,
		"navmenu_active_total", "Number of entries rendered as active or active-children.", "state")
	if err != nil {
		return err
	}

	reg := menu.NewRegistry(
		menu.WithRenderCounter(renders),
		menu.WithActiveCounter(matches),
	)

	if *menuFile != "" {
		if err := menu.LoadFile(*menuFile, reg); err != nil {
			return err
		}
	} else if err := makeMenu(reg); err != nil {
		return err
	}

	names := reg.Names()
	if list := parseContainers(*containers); len(list) > 0 {
		names = list
	}

	h := reg.Handler(names...).SetBuilder(menu.HTMLBuilder{Base: "/"})
	switch {
	case *byName:
		h.PrefixContainer()
	case *prefix != "":
		h.Prefix(*prefix)
	}

	return reg.Run(ctx, h,
		server.WithPort(*port),
		server.WithMetrics(promReg),
		server.WithSimpleHealth(),
	)
}

// parseContainers splits a comma separated list of container names, trimming
// spaces and skipping empty names.
func parseContainers(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// makeMenu populates a demo "main" and "footer" menu.
func makeMenu(reg *menu.Registry) error {
	both := reg.Handler("main", "footer").
		Add("/", "Home")

	primary := reg.Handler("main").
		Add("docs", "Docs", menu.WithChildren(menu.NewItems().
			Add("docs/install", "Install").
			Add("docs/usage", "Usage", menu.WithChildren(menu.NewItems().
				Add("docs/usage/render", "Rendering"))))).
		Raw(`<hr>`, menu.WithListAttributes(menu.Attributes{"class": "divider"})).
		Add("about", "About")

	footer := reg.Handler("footer").
		Add("contact", "Contact")

	return errors.Join(both.Err(), primary.Err(), footer.Err())
}
