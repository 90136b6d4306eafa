package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/leaflogic/securecore/cmd/app/commands"
	"github.com/leaflogic/securecore/internal/app"
	"github.com/leaflogic/securecore/internal/config"
)

func getDataCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "store",
			Usage: "Store one secure record for a user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User identifier",
				},
				&cli.StringFlag{
					Name:     "type",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Data type: health-metrics, food-entries, user-profile, chat-messages or goals-and-preferences",
				},
				&cli.StringFlag{
					Name:     "data",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Record payload",
				},
				&cli.Int64Flag{
					Name:    "timestamp",
					Aliases: []string{"ts"},
					Value:   0,
					Usage:   "Record timestamp in unix milliseconds (0 uses the current time)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				coordinator, err := container.SecurityCoordinator(ctx)
				if err != nil {
					return err
				}

				return commands.RunStoreData(
					ctx,
					coordinator,
					commands.DefaultIO().Writer,
					cmd.String("user"),
					cmd.String("type"),
					cmd.String("data"),
					cmd.Int64("timestamp"),
				)
			},
		},
		{
			Name:  "get",
			Usage: "Retrieve all secure records of one data type for a user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User identifier",
				},
				&cli.StringFlag{
					Name:     "type",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Data type: health-metrics, food-entries, user-profile, chat-messages or goals-and-preferences",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				coordinator, err := container.SecurityCoordinator(ctx)
				if err != nil {
					return err
				}

				return commands.RunGetData(
					ctx,
					coordinator,
					commands.DefaultIO().Writer,
					cmd.String("user"),
					cmd.String("type"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "clear",
			Usage: "Wipe a user's secure records and reset security settings",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User identifier",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				coordinator, err := container.SecurityCoordinator(ctx)
				if err != nil {
					return err
				}

				return commands.RunClear(
					ctx,
					coordinator,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("user"),
				)
			},
		},
	}
}
