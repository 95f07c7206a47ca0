package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kraitsura/storefront/pkg/api"
	"github.com/kraitsura/storefront/pkg/cart"
	"github.com/kraitsura/storefront/pkg/config"
	"github.com/kraitsura/storefront/pkg/loader"
	"github.com/kraitsura/storefront/pkg/logging"
	"github.com/kraitsura/storefront/pkg/model"
	"github.com/kraitsura/storefront/pkg/session"
	"github.com/kraitsura/storefront/pkg/ui"
	"github.com/kraitsura/storefront/pkg/watcher"
)

type rootOptions struct {
	configPath string
	debug      bool
	remote     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the product catalog in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate("storefront version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to the YAML config file (default ~/.storefront/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.remote, "remote", false, "load the catalog from the backend instead of the local file")

	cmd.AddCommand(newCartCmd(opts), newServeCmd(opts), newChatCmd(opts))
	return cmd
}

func (o *rootOptions) load() (config.Config, error) {
	path := o.configPath
	if path == "" {
		p, err := config.ExpandHome("~/" + config.DefaultDir + "/config.yaml")
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(path)
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, opts.debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	products, err := loadCatalog(ctx, cfg, opts.remote)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("catalog %s has no products", cfg.Catalog)
	}

	uiOpts := []ui.StorefrontOption{
		ui.WithLogger(logger),
		ui.WithSession(session.TokenFile{Path: cfg.SessionFile}),
	}
	store, err := cart.Open(cfg.CartDB)
	if err != nil {
		logger.Warn("cart disabled", zap.Error(err))
	} else {
		defer store.Close()
		uiOpts = append(uiOpts, ui.WithCart(store))
	}

	m, err := ui.NewStorefrontModel(products, cfg.Carousel, uiOpts...)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if !opts.remote {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		w, err := watcher.New(cfg.Catalog, func() {
			products, err := loader.LoadProductsFromFile(cfg.Catalog)
			p.Send(ui.CatalogReloadedMsg{Products: products, Err: err})
		}, watcher.WithLogger(logger))
		if err == nil {
			err = w.Start(ctx)
		}
		if err != nil {
			logger.Warn("catalog hot reload disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running storefront: %w", err)
	}
	return nil
}

func loadCatalog(ctx context.Context, cfg config.Config, remote bool) ([]model.Product, error) {
	if !remote {
		return loader.LoadProductsFromFile(cfg.Catalog)
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.APITimeout+time.Second)
	defer cancel()
	client := newAPIClient(cfg)
	products, err := client.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return products, nil
}

func newAPIClient(cfg config.Config) *api.Client {
	c := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	if tok := (session.TokenFile{Path: cfg.SessionFile}).Token(); tok != "" {
		c = c.WithToken(tok)
	}
	return c
}
