package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-notegen/internal/logging"
	"github.com/goliatone/go-notegen/internal/server"
	"github.com/goliatone/go-notegen/pkg/form"
	"github.com/goliatone/go-notegen/pkg/renderers/vanilla"
	theme "github.com/goliatone/go-theme"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var (
		port         string
		themeFile    string
		themeVariant string
		stripMarkup  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP form and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if port != "" {
				cfg.Port = port
			}
			if themeFile == "" {
				themeFile = cfg.ThemeFile
			}
			if themeVariant == "" {
				themeVariant = cfg.ThemeVariant
			}
			if !cmd.Flags().Changed("strip-markup") {
				stripMarkup = cfg.StripMarkup
			}
			logger := logging.New(cfg.Env, cfg.LogLevel)

			gen, err := opts.generator()
			if err != nil {
				logger.Error().Err(err).Msg("failed to build generator")
				return err
			}
			logger.Info().
				Int("fields", len(gen.Fields())).
				Str("catalog", opts.catalogFile).
				Str("template", opts.templateFile).
				Msg("generator ready")

			themeCfg, err := loadTheme(themeFile, themeVariant)
			if err != nil {
				logger.Error().Err(err).Msg("failed to load theme")
				return err
			}
			if themeCfg != nil {
				logger.Info().Str("theme", themeCfg.Theme).Str("variant", themeCfg.Variant).Msg("theme applied")
			}

			serverOpts := []server.Option{server.WithLogger(logger), server.WithTheme(themeCfg)}
			if stripMarkup {
				serverOpts = append(serverOpts, server.WithSanitizer(form.StripMarkup))
			}

			srv, err := server.New(gen, serverOpts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, cfg.Addr(), cfg.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&themeFile, "theme", "", "go-theme manifest (YAML or JSON) styling the HTML form (overrides THEME_FILE)")
	cmd.Flags().BoolVar(&stripMarkup, "strip-markup", false, "strip HTML tags from submitted values; drops text after a bare '<' (overrides STRIP_MARKUP)")
	cmd.Flags().StringVar(&themeVariant, "theme-variant", "", "theme variant to apply (overrides THEME_VARIANT)")
	return cmd
}

// loadTheme resolves the optional theme manifest. No file means no theme.
func loadTheme(file, variant string) (*theme.RendererConfig, error) {
	if file == "" {
		return nil, nil
	}
	manifest, err := vanilla.LoadThemeManifest(file)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg, err := vanilla.ThemeFromManifest(manifest, variant)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
