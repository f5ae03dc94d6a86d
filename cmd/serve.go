package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reloop/gql"
	"github.com/s0up4200/reloop/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL API server",
	Long: `Starts the GraphQL API. Queries are served on POST /api/graphql; opening the
same route in a browser shows the GraphQL playground.

Health and Prometheus metrics are served on /healthcheck and /metrics.`,
	Example: `  # Listen on the configured address (127.0.0.1:3000 by default)
  reloop serve

  # Listen on all interfaces
  reloop serve --addr 0.0.0.0:8080`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	schema, err := gql.NewSchema(service, logger)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:            addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, gql.NewHandler(schema, cfg.Server.Playground), logger)

	logger.Info().
		Str("version", version).
		Str("upstream", tmdbClient.BaseURL()).
		Bool("playground", cfg.Server.Playground).
		Msg("Starting reloop")

	if err := srv.Run(cmd.Context()); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
