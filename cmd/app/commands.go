package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/epicevents/crm/cmd/app/commands"
	"github.com/epicevents/crm/internal/app"
	"github.com/epicevents/crm/internal/config"
)

func getCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "run",
			Usage: "Start the interactive terminal application",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunApp(ctx, container, commands.DefaultIO(), version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "create-admin",
			Usage: "Create a management user without a session (bootstrap)",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "employee-number",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Employee number of the new user",
				},
				&cli.StringFlag{
					Name:     "first-name",
					Required: true,
					Usage:    "First name of the new user",
				},
				&cli.StringFlag{
					Name:     "last-name",
					Required: true,
					Usage:    "Last name of the new user",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email of the new user",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateAdmin(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO(),
					int(cmd.Int("employee-number")),
					cmd.String("first-name"),
					cmd.String("last-name"),
					cmd.String("email"),
				)
			},
		},
	}
}
