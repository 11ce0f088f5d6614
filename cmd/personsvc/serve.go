package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/personsvc"
	"github.com/dmitrymomot/personsvc/internal/config"
	"github.com/dmitrymomot/personsvc/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  "Ensure the persons schema after binding the port, then serve until SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, runOpts ...personsvc.RunOption) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(cfg)

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open store", slog.String("driver", cfg.Database.Driver), slog.Any("error", err))
		return err
	}

	renderer := newRenderer(cfg.Templates)

	app := personsvc.New(personsvc.Deps{
		Store:       st,
		Renderer:    renderer,
		Logger:      log.With(slog.String("component", "http")),
		TemplateExt: cfg.Templates.Ext,
	})

	opts := []personsvc.RunOption{
		personsvc.Logger(log),
		personsvc.WithContext(ctx),
		personsvc.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		personsvc.StartupHook(st.EnsureSchema),
		personsvc.StartupHook(func(ctx context.Context) error {
			// A broken template directory only fails the greeting route.
			if err := renderer.Warm(ctx); err != nil {
				log.Warn("template preload failed", slog.String("dir", cfg.Templates.Dir), slog.Any("error", err))
			}
			return nil
		}),
		personsvc.ShutdownHook(func(context.Context) error { return st.Close() }),
		personsvc.ShutdownHook(logger.SentryFlush()),
	}

	return app.Run(cfg.HTTP.Addr, append(opts, runOpts...)...)
}
