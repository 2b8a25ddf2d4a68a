package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pubgo/argot"
)

func main() {
	app := &argot.App{
		Name:  "echo",
		Short: "Prints the given text to the console.",
		Root: &argot.CommandDefinition{
			Args: []argot.Arg{{Name: "text", Decl: argot.String}},
			Flags: map[string]argot.FlagDecl{
				"upper": argot.FlagDefinition{Type: argot.Boolean, Alias: "u", Description: "Prints the text in upper case."},
			},
			Middleware: func(next argot.HandlerFunc) argot.HandlerFunc {
				return func(ctx context.Context, inv *argot.Invocation) error {
					inv.Logger.Debug("echo", "args", inv.Args, "upper", inv.Flags.Bool("upper"))
					return next(ctx, inv)
				}
			},
			Handler: func(ctx context.Context, inv *argot.Invocation) error {
				text := strings.Join(inv.Args, " ")
				if inv.Flags.Bool("upper") {
					text = strings.ToUpper(text)
				}
				_, err := fmt.Fprintln(inv.Stdout, text)
				return err
			},
		},
	}

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
