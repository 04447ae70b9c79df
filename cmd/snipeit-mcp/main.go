package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/snipeops/snipeit-mcp/internal/config"
	"github.com/snipeops/snipeit-mcp/internal/inventory"
	invmcp "github.com/snipeops/snipeit-mcp/internal/mcp"
	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// Set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func buildVersion() string {
	if commit == "none" {
		return version
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func main() {
	// stdout belongs to the MCP transport; all diagnostics go to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	rootCmd := &cobra.Command{
		Use:   "snipeit-mcp",
		Short: "MCP server for Snipe-IT inventory management",
		Long: "An MCP (Model Context Protocol) server exposing Snipe-IT assets, consumables, " +
			"and their lifecycle operations as tools for MCP-compatible agents.",
	}
	rootCmd.Version = buildVersion()

	rootCmd.AddCommand(serveCmd(logger))
	rootCmd.AddCommand(doctorCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// liveClient adapts *snipeit.Client to the inventory.Client surface.
type liveClient struct {
	c *snipeit.Client
}

func (l liveClient) Assets() inventory.AssetsAPI           { return l.c.Assets() }
func (l liveClient) Consumables() inventory.ConsumablesAPI { return l.c.Consumables() }
func (l liveClient) Close() error                          { return l.c.Close() }

// clientFactory builds the per-call collaborator connection. An unconfigured
// process yields a service-level fault on every call while the server itself
// keeps running.
func clientFactory(cfg config.Config) inventory.ClientFactory {
	return func() (inventory.Client, error) {
		if !cfg.Configured() {
			return nil, &snipeit.Error{
				Message: "Snipe-IT credentials not configured. Please set SNIPEIT_URL and SNIPEIT_TOKEN environment variables.",
			}
		}
		return liveClient{c: snipeit.New(cfg.URL, cfg.Token)}, nil
	}
}

func serveCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long:  "Start the Snipe-IT MCP server over stdio so MCP-compatible agents can manage inventory directly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Configured() {
				logger.Warn("SNIPEIT_URL and SNIPEIT_TOKEN must be set. " +
					"Server will start but tools will fail until these are configured.")
			}

			svc := inventory.NewService(clientFactory(cfg), logger)
			server := invmcp.NewServer(svc, buildVersion())
			return server.Run(cmd.Context())
		},
	}
}

func doctorCmd(logger *log.Logger) *cobra.Command {
	var probe bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check Snipe-IT connection configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cfg.URL == "" {
				logger.Error("SNIPEIT_URL is not set (env or " + config.Path() + ")")
			} else {
				logger.Info("base URL configured", "url", cfg.URL)
			}
			if cfg.Token == "" {
				logger.Error("SNIPEIT_TOKEN is not set (env or " + config.Path() + ")")
			} else {
				logger.Info("API token configured")
			}
			if !cfg.Configured() {
				return fmt.Errorf("incomplete configuration")
			}

			if probe {
				client := snipeit.New(cfg.URL, cfg.Token)
				defer client.Close()
				rows, err := client.Assets().List(context.Background(), snipeit.ListOptions{Limit: 1})
				if err != nil {
					return fmt.Errorf("API probe failed: %w", err)
				}
				logger.Info("API reachable", "sample_assets", len(rows))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&probe, "probe", false, "Make a test API call to verify connectivity")
	return cmd
}
