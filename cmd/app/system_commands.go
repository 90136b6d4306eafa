package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/leaflogic/securecore/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "serve-metrics",
			Usage: "Start the Prometheus metrics HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServeMetrics(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations for SQL-backed store drivers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunMigrations()
			},
		},
	}
}
