package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pubgo/argot"
)

func main() {
	app := &argot.App{
		Name:    "myapp",
		Version: "0.1.0",
		Short:   "A sample application demonstrating all the implemented features.",
		Commands: argot.CommandsSchema{
			"server": {
				Short: "Server management commands.",
				Long:  "Commands for managing the server.",
				Flags: map[string]argot.FlagDecl{
					"list": argot.FlagDefinition{
						Type:        argot.String,
						Description: "List all servers.",
					},
					"port": argot.FlagDefinition{
						Type:        argot.Number,
						Alias:       "p",
						Description: "Port to listen on.",
						Required:    true,
						Default:     8080,
						Env:         []string{"MYAPP_SERVER_PORT"},
						Deprecated:  "This flag is deprecated. Please use the new configuration method.",
					},
				},
				Handler: func(ctx context.Context, inv *argot.Invocation) error {
					fmt.Fprintln(inv.Stdout, "Server command executed")
					fmt.Fprintf(inv.Stdout, "Port: %d\n", inv.Flags.Int("port"))
					return nil
				},
				Commands: argot.CommandsSchema{
					"start": {
						Short:   "Start the server.",
						Long:    "Start the server with specified options.",
						Aliases: []string{"run"},
						Args: []argot.Arg{
							{Name: "mode", Decl: argot.ArgDefinition{
								Type:        argot.EnumType,
								Values:      []string{"foreground", "background"},
								Optional:    true,
								Description: "How to run the server.",
							}},
						},
						Flags: map[string]argot.FlagDecl{
							"daemon": argot.FlagDefinition{Type: argot.Boolean, Alias: "d", Description: "Run server in daemon mode."},
						},
						Handler: func(ctx context.Context, inv *argot.Invocation) error {
							return inv.Task(ctx, "Starting server", func(context.Context) error {
								for name, value := range inv.Values {
									fmt.Fprintf(inv.Stdout, "%s = %v\n", name, value)
								}
								return nil
							})
						},
					},
				},
			},
			"config": {
				Short: "Configuration commands.",
				Long:  "Commands for managing configuration.",
				Commands: argot.CommandsSchema{
					"show": {
						Short: "Show configuration.",
						Long:  "Display current configuration.",
						Args:  []argot.Arg{{Name: "key", Decl: argot.ArgDefinition{Type: argot.String, Optional: true}}},
						Handler: func(ctx context.Context, inv *argot.Invocation) error {
							key := inv.Values.String("key")
							if key == "" {
								fmt.Fprintln(inv.Stdout, "Showing configuration...")
								return nil
							}
							fmt.Fprintf(inv.Stdout, "%s: %s\n", key, inv.Config().String(key))
							return nil
						},
					},
				},
			},
		},
		Hooks: (&argot.Hooks{}).
			BeforeCommand(func(ctx context.Context, ev *argot.HookEvent) error {
				ev.Invocation.Logger.Debug("starting", "command", ev.Path)
				return nil
			}),
		Argv0: os.Args[0],
	}

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
