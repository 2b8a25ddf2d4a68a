package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pubgo/argot"
)

func main() {
	flags := map[string]argot.FlagDecl{
		"port": argot.FlagDefinition{
			Type:        argot.Number,
			Alias:       "p",
			Description: "Port to listen on.",
			Env:         []string{"PORT", "SERVER_PORT", "APP_PORT"},
			Default:     8080,
		},
		"host": argot.FlagDefinition{
			Type:        argot.String,
			Description: "Host to bind to.",
			Env:         []string{"HOST", "SERVER_HOST"},
			Default:     "localhost",
		},
	}

	app := &argot.App{
		Name:  "app",
		Short: "Environment variable test application.",
		Commands: argot.CommandsSchema{
			"test": {
				Short: "Test command with multiple env vars.",
				Flags: flags,
				Handler: func(ctx context.Context, inv *argot.Invocation) error {
					fmt.Fprintln(inv.Stdout, "=== Environment Variable Test ===")
					fmt.Fprintf(inv.Stdout, "Port: %d\n", inv.Flags.Int("port"))
					fmt.Fprintf(inv.Stdout, "Host: %s\n", inv.Flags.String("host"))

					fmt.Fprintln(inv.Stdout, "\nEnvironment variables:")
					for _, name := range []string{"port", "host"} {
						def := argot.NormalizeFlag(flags[name])
						fmt.Fprintf(inv.Stdout, "  %s:\n", name)
						for _, env := range def.Env {
							if v := os.Getenv(env); v != "" {
								fmt.Fprintf(inv.Stdout, "    $%s = %s\n", env, v)
							} else {
								fmt.Fprintf(inv.Stdout, "    $%s = (not set)\n", env)
							}
						}
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
