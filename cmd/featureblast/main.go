package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/config"
	"github.com/featureblastlabs/featureblast/internal/migration"
	"github.com/featureblastlabs/featureblast/internal/observability"
	"github.com/featureblastlabs/featureblast/internal/server"
	"github.com/featureblastlabs/featureblast/pkg/db"
)

func main() {
	root := &cobra.Command{
		Use:          "featureblast",
		Short:        "Feature announcement and engagement tracking service",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []fx.Option{
				observability.Module,
				fx.Provide(RegisterSnowflake),
				db.Module,
				server.Module,
			}
			if !skipMigrations {
				opts = append(opts, migration.Module)
			}

			app := fx.New(opts...)
			app.Run()
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply schema migrations on startup")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				config.Module,
				observability.Module,
				db.Module,
				migration.Module,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), fx.DefaultTimeout)
			defer cancel()

			if err := app.Start(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			return app.Stop(ctx)
		},
	}
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
