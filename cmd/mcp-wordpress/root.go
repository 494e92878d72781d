// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/crunchtools/mcp-wordpress/internal/adapter"
	"github.com/crunchtools/mcp-wordpress/internal/config"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/internal/server"
	"github.com/crunchtools/mcp-wordpress/internal/service"
	"github.com/crunchtools/mcp-wordpress/internal/validators"
)

func newRootCommand() *cobra.Command {
	var (
		siteURL   string
		username  string
		timeout   time.Duration
		uploadDir string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "mcp-wordpress",
		Short: "MCP server for managing WordPress content",
		Long: `Start the WordPress MCP (Model Context Protocol) server.

The server exposes WordPress content management (posts, pages, media,
comments) as MCP tools over stdio, suitable for AI assistant integration:

  {
    "mcpServers": {
      "wordpress": {
        "command": "mcp-wordpress",
        "env": {
          "WORDPRESS_URL": "https://example.com",
          "WORDPRESS_USERNAME": "admin",
          "WORDPRESS_APP_PASSWORD": "xxxx xxxx xxxx xxxx"
        }
      }
    }
  }

The application password is read from WORDPRESS_APP_PASSWORD only; there is
no flag for it, so it cannot land in shell history or process listings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay := &config.Config{
				WordPress: config.WordPress{URL: siteURL, Username: username},
				Gateway:   config.Gateway{RequestTimeout: timeout},
				Media:     config.Media{UploadDir: uploadDir},
				Log:       config.Log{Level: logLevel},
			}
			return run(overlay)
		},
	}

	cmd.Flags().StringVar(&siteURL, "url", "", "WordPress site address (env: WORDPRESS_URL)")
	cmd.Flags().StringVar(&username, "username", "", "WordPress account name (env: WORDPRESS_USERNAME)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request timeout (env: GATEWAY_REQUEST_TIMEOUT)")
	cmd.Flags().StringVar(&uploadDir, "upload-dir", "", "directory media uploads may be read from (env: MEDIA_UPLOAD_DIR)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "logging verbosity: debug, info, warn, error (env: LOG_LEVEL)")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			printBuildInfo(cmd)
		},
	}
}

func printBuildInfo(cmd *cobra.Command) {
	date, commit := buildDate, buildCommit
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	cmd.Printf("Build version: %s\n", version())
	cmd.Printf("Build date: %s\n", date)
	cmd.Printf("Build commit: %s\n", commit)
}

func run(overlay *config.Config) error {
	cfg, err := config.Load(overlay)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.NewLogger("mcp-wordpress", cfg.Log.Level)
	log.Debug().Any("config", cfg.WordPress).Msg("configuration loaded")

	creds, err := config.NewCredentials(cfg.WordPress)
	if err != nil {
		return err
	}

	gateway := adapter.NewWordPressGateway(cfg.Gateway, creds, log)
	validator := validators.NewContentValidator()
	services := service.NewServices(gateway, validator, cfg, creds, log)

	srv := server.NewServer(services, adapter.NewSanitizer(creds), version(), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
