package argot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ErrNoPrompter is returned by the prompting methods of an Invocation that has
// no Prompter.
var ErrNoPrompter = errors.New("no prompter configured")

// Invocation represents an instance of a command being executed. It is the
// value handlers and hooks receive.
type Invocation struct {
	ctx context.Context

	// ID identifies this run in log output.
	ID string

	Command *CommandDefinition
	// Path is the canonical command path, aliases resolved.
	Path []string

	// Values holds the bound arguments and the flags in one map. A flag wins
	// over an argument of the same name.
	Values Values
	// Flags holds the flags after environment overrides and defaults.
	Flags Values
	// Args holds the positional words left after routing.
	Args []string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	Logger   hclog.Logger
	Prompter Prompter
	Settings Config

	// Annotations is a map of arbitrary annotations to attach to the invocation.
	Annotations map[string]any
}

func (inv *Invocation) Context() context.Context {
	if inv.ctx == nil {
		return context.Background()
	}
	return inv.ctx
}

// WithContext returns a copy of the Invocation with the given context.
func (inv *Invocation) WithContext(ctx context.Context) *Invocation {
	return inv.with(func(i *Invocation) {
		i.ctx = ctx
	})
}

// with returns a copy of the Invocation with the given function applied.
func (inv *Invocation) with(fn func(*Invocation)) *Invocation {
	i2 := *inv
	fn(&i2)
	return &i2
}

// Config returns the loaded configuration, or an empty one.
func (inv *Invocation) Config() Config {
	if inv.Settings == nil {
		return MapConfig{}
	}
	return inv.Settings
}

func (inv *Invocation) logger() hclog.Logger {
	if inv.Logger == nil {
		return hclog.NewNullLogger()
	}
	return inv.Logger
}

func (inv *Invocation) stdout() io.Writer {
	if inv.Stdout == nil {
		return io.Discard
	}
	return inv.Stdout
}

func (inv *Invocation) stderr() io.Writer {
	if inv.Stderr == nil {
		return io.Discard
	}
	return inv.Stderr
}

// Ask prompts for a line of input.
func (inv *Invocation) Ask(ctx context.Context, q Question) (string, error) {
	if inv.Prompter == nil {
		return "", ErrNoPrompter
	}
	return inv.Prompter.Ask(ctx, q)
}

// Confirm asks a yes/no question. See Confirm.
func (inv *Invocation) Confirm(ctx context.Context, msg string, def bool) (bool, error) {
	if inv.Prompter == nil {
		return false, ErrNoPrompter
	}
	return Confirm(ctx, inv.Prompter, msg, def)
}

// Select asks for one of options. See Select.
func (inv *Invocation) Select(ctx context.Context, msg string, options []string) (string, error) {
	if inv.Prompter == nil {
		return "", ErrNoPrompter
	}
	return Select(ctx, inv.Prompter, msg, options)
}

// Errorf writes an error line to Stderr.
func (inv *Invocation) Errorf(format string, args ...any) {
	w := inv.stderr()
	out := newStyledOutput(w)
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	_, _ = fmt.Fprintf(w, "%s %s\n", out.String("error:").Foreground(out.Color(errorColor)).Bold(), msg)
}

// Task runs fn, reporting its start and outcome on Stderr. The error of fn is
// returned unchanged.
func (inv *Invocation) Task(ctx context.Context, title string, fn func(ctx context.Context) error) error {
	w := inv.stderr()
	out := newStyledOutput(w)
	_, _ = fmt.Fprintf(w, "%s %s\n", out.String("•").Foreground(out.Color(headerColor)), title)

	err := fn(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(w, "%s %s: %v\n", out.String("✗").Foreground(out.Color(errorColor)), title, err)
		inv.logger().Debug("task failed", "task", title, "error", err)
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", out.String("✓").Foreground(out.Color(optionColor)), title)
	return nil
}
