package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kraitsura/storefront/pkg/loader"
	"github.com/kraitsura/storefront/pkg/logging"
	"github.com/kraitsura/storefront/pkg/server"
	"github.com/kraitsura/storefront/pkg/watcher"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and chat relay over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}
			logger, err := logging.New(cfg.LogFile, opts.debug)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			products, err := loader.LoadProductsFromFile(cfg.Catalog)
			if err != nil {
				return err
			}
			catalog := server.NewCatalog(products)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srvOpts := []server.Option{server.WithLogger(logger)}
			if gen, err := server.NewGenAIGenerator(ctx, cfg.GeminiKey, cfg.ChatModel); err != nil {
				logger.Warn("chat relay disabled", zap.Error(err))
			} else {
				srvOpts = append(srvOpts, server.WithGenerator(gen))
			}
			srv := server.New(catalog, srvOpts...)

			w, err := watcher.New(cfg.Catalog, func() {
				products, err := loader.LoadProductsFromFile(cfg.Catalog)
				if err != nil {
					logger.Warn("catalog reload failed", zap.Error(err))
					return
				}
				catalog.Set(products)
				logger.Info("catalog reloaded", zap.Int("products", len(products)))
			}, watcher.WithLogger(logger))
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.ListenAndServe(gctx, cfg.ListenAddr)
			})
			g.Go(func() error {
				if err := w.Start(gctx); err != nil {
					return err
				}
				<-gctx.Done()
				return w.Close()
			})
			cmd.Printf("Serving %d products on %s\n", catalog.Len(), cfg.ListenAddr)
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides listen_addr)")
	return cmd
}

