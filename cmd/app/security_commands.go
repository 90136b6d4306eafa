package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/leaflogic/securecore/cmd/app/commands"
	"github.com/leaflogic/securecore/internal/app"
	"github.com/leaflogic/securecore/internal/config"
)

func getSecurityCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "init",
			Usage: "Derive and install the enhanced encryption key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "photo",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "Path to a photo whose metadata strengthens the key",
				},
				&cli.StringFlag{
					Name:    "salt",
					Aliases: []string{"s"},
					Value:   "",
					Usage:   "User-specific salt folded into key derivation",
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

				return commands.RunInitialize(
					ctx,
					coordinator,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("photo"),
					cmd.String("salt"),
				)
			},
		},
		{
			Name:  "authenticate",
			Usage: "Authenticate the session via biometrics or key presence",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "biometric",
					Aliases: []string{"b"},
					Value:   false,
					Usage:   "Require a biometric prompt instead of the key-presence fallback",
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

				return commands.RunAuthenticate(
					ctx,
					coordinator,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Bool("biometric"),
				)
			},
		},
		{
			Name:  "rekey",
			Usage: "Re-derive the session encryption key from fresh inputs",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "photo",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "Path to a photo whose metadata strengthens the key",
				},
				&cli.StringFlag{
					Name:    "salt",
					Aliases: []string{"s"},
					Value:   "",
					Usage:   "User-specific salt folded into key derivation",
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

				return commands.RunRekey(
					ctx,
					coordinator,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("photo"),
					cmd.String("salt"),
				)
			},
		},
		{
			Name:  "status",
			Usage: "Print a snapshot of the security subsystem",
			Flags: []cli.Flag{
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

				return commands.RunStatus(
					ctx,
					coordinator,
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "fingerprint",
			Usage: "Print the stable device fingerprint",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				coordinator, err := container.SecurityCoordinator(ctx)
				if err != nil {
					return err
				}

				return commands.RunFingerprint(
					ctx,
					coordinator,
					commands.DefaultIO().Writer,
				)
			},
		},
	}
}
