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
		Name:  "fastcommit",
		Short: "A tool for making fast commits with various options.",
		Commands: argot.CommandsSchema{
			"commit": {
				Short:   "Commit changes.",
				Long:    "Commit changes with a message and other options.",
				Aliases: []string{"ci"},
				Args: []argot.Arg{
					{Name: "files", Decl: argot.ArgDefinition{Type: argot.String, Optional: true, Description: "Files to commit."}},
				},
				Flags: map[string]argot.FlagDecl{
					"message": argot.FlagDefinition{Type: argot.String, Alias: "m", Description: "Commit message."},
					"amend":   argot.FlagDefinition{Type: argot.Boolean, Description: "Amend the previous commit."},
					"type": argot.FlagDefinition{
						Type:        argot.String,
						Alias:       "t",
						Description: "Change type, asked for when missing.",
					},
				},
				Handler: commit,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func commit(ctx context.Context, inv *argot.Invocation) error {
	kind := inv.Flags.String("type")
	if kind == "" {
		var err error
		kind, err = inv.Select(ctx, "Change type", []string{"feat", "fix", "chore", "docs"})
		if err != nil {
			return err
		}
	}

	message := inv.Flags.String("message")
	if message == "" {
		var err error
		message, err = inv.Ask(ctx, argot.Question{Message: "Commit message:"})
		if err != nil {
			return err
		}
	}

	if inv.Flags.Bool("amend") {
		ok, err := inv.Confirm(ctx, "Amend the previous commit?", false)
		if err != nil {
			return err
		}
		if !ok {
			inv.Errorf("aborted")
			return nil
		}
	}

	return inv.Task(ctx, "Committing", func(context.Context) error {
		files := "all changes"
		if len(inv.Args) > 0 {
			files = strings.Join(inv.Args, ", ")
		}
		_, err := fmt.Fprintf(inv.Stdout, "%s: %s (%s)\n", kind, message, files)
		return err
	})
}
