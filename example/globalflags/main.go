package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pubgo/argot"
)

func main() {
	app := &argot.App{
		Name:  "app",
		Short: "A test application to demonstrate global flags.",
		Commands: argot.CommandsSchema{
			"test": {
				Short: "Test command.",
				Long:  "A test command with custom flags.",
				Flags: map[string]argot.FlagDecl{
					"name": argot.FlagDefinition{Type: argot.String, Description: "Name parameter."},
				},
				Handler: func(ctx context.Context, inv *argot.Invocation) error {
					fmt.Fprintln(inv.Stdout, "Test command executed")
					fmt.Fprintf(inv.Stdout, "Name: %s\n", inv.Flags.String("name"))
					inv.Logger.Debug("flags", "values", inv.Flags)
					return nil
				},
				Commands: argot.CommandsSchema{
					"sub": {
						Short: "Sub command.",
						Long:  "A sub command.",
						Handler: func(ctx context.Context, inv *argot.Invocation) error {
							fmt.Fprintln(inv.Stdout, "Sub command executed")
							return nil
						},
						Commands: argot.CommandsSchema{
							"nested": {
								Short: "Nested command.",
								Long:  "A nested command.",
								Handler: func(ctx context.Context, inv *argot.Invocation) error {
									fmt.Fprintln(inv.Stdout, "Nested command executed")
									fmt.Fprintf(inv.Stdout, "Config: %s\n", inv.Config().String("nested.greeting"))
									return nil
								},
							},
						},
					},
				},
			},
		},
	}

	// Try: app test sub nested --debug -c config.yaml, or app --list-flags.
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
