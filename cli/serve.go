package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"menu-explainer/bot"
	"menu-explainer/config"
	"menu-explainer/importer"
	"menu-explainer/server"
	"menu-explainer/services"
	"menu-explainer/store"
	"menu-explainer/store/memory"
	"menu-explainer/store/sqlstore"
)

func newServeCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (and the Telegram bot when TOKEN is set)",
		Long: "Serve the menu database over HTTP. With --data the document is loaded into memory " +
			"and no database is opened.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, dataFile)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "Serve this JSON or YAML document from memory instead of the database")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, dataFile string) error {
	st, ready, err := openStore(ctx, cfg, dataFile)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := services.New(st, services.WithLimits(cfg.Query.DefaultPageSize, cfg.Query.MaxPageSize))
	srv := server.New(svc,
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(cfg.Server),
		server.WithReadinessCheck(ready),
	)

	var b *bot.Bot
	if cfg.Telegram.Token != "" {
		b, err = bot.New(cfg.Telegram, svc)
		if err != nil {
			return fmt.Errorf("bot: %w", err)
		}
	} else {
		slog.Info("TOKEN not set, telegram bot disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	if b != nil {
		g.Go(func() error {
			return b.Start(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// openStore returns the store to serve from and its readiness probe.
func openStore(ctx context.Context, cfg *config.Config, dataFile string) (store.Store, func(context.Context) error, error) {
	if dataFile != "" {
		rs, err := importer.ParseFile(dataFile)
		if err != nil {
			return nil, nil, err
		}
		st := memory.New()
		if _, err := importer.Import(ctx, st, rs, importer.Options{}); err != nil {
			return nil, nil, err
		}
		slog.Info("serving menu document from memory", "file", dataFile, "restaurants", len(rs))
		return st, nil, nil
	}

	st, err := sqlstore.Open(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("db: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return st, st.Ping, nil
}
