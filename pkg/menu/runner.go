package menu

import (
	"context"
	"log/slog"

	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/server"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/menu.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/menu.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/menu.date=date"
)

// Run serves the handler's containers and a JSON listing of the registry, and
// blocks until the context is canceled or the server fails.
// The rendered menu is served at "/", the listing at "/menus.json".
func (r *Registry) Run(ctx context.Context, h *Handler, opt ...server.Option) error {
	logger.SetDefaultLogger("navmenu", version)
	slog.Info("starting navmenu",
		"commit", commit,
		"date", date,
		"containers", r.Names(),
	)

	opts := make([]server.Option, 0, len(opt)+2)
	opts = append(opts, opt...)
	opts = append(opts,
		server.WithHandler("/", h),
		server.WithHandler("/menus.json", r.JSONHandler()),
	)

	return server.New(opts...).Serve(ctx)
}
