package argot

import (
	"context"
	"slices"

	"github.com/hashicorp/go-hclog"
)

// ExecuteOptions is the input of ExecuteCommand.
type ExecuteOptions struct {
	Command *CommandDefinition
	// Positional holds the positional words, bound to Command.Args by order.
	Positional []string
	// Flags holds the parsed flags, before defaults.
	Flags Values
	// Path is the matched command path.
	Path []string

	// Invocation is the handler-facing context. Its command fields are filled
	// in by ExecuteCommand. A nil Invocation gets an empty one.
	Invocation *Invocation
	Hooks      HookRunner
	// Middleware wraps the handler, outermost first.
	Middleware []MiddlewareFunc

	// StrictFlags reports flags that neither Command nor KnownFlags declare.
	StrictFlags bool
	KnownFlags  map[string]FlagDefinition

	Logger hclog.Logger
}

// ExecuteCommand runs one resolved command:
//
//  1. normalize the flag declarations,
//  2. apply defaults,
//  3. validate using the defaulted flags, so a required flag with a default
//     can never be reported missing,
//  4. on failure return one *ValidationError before any hook runs,
//  5. bind positional values to the declared arguments by order, casting
//     number arguments,
//  6. merge arguments and flags, flags overwriting arguments,
//  7. run the before hooks, the handler (if any) and the after hooks, in
//     sequence.
//
// Whatever the outcome, OnError hooks see a failure and OnExit hooks run last.
// A handler error is returned as a *RunCommandError.
func ExecuteCommand(ctx context.Context, opts ExecuteOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	cmd := opts.Command
	if cmd == nil {
		cmd = &CommandDefinition{}
	}

	inv := opts.Invocation
	if inv == nil {
		inv = &Invocation{}
	}
	inv = inv.WithContext(ctx)
	if inv.Logger == nil {
		inv.Logger = logger
	}
	inv.Command = cmd
	inv.Path = slices.Clone(opts.Path)
	inv.Args = slices.Clone(opts.Positional)

	defs := NormalizeFlags(cmd.Flags)
	flags := ApplyDefaults(opts.Flags, defs)
	logger.Trace("defaults applied", "flags", flags)

	res := ValidateCommand(cmd, opts.Positional, flags)
	if opts.StrictFlags {
		checkUnknownFlags(&res, cmd, flags, opts.KnownFlags)
	}

	var err error
	if !res.Valid {
		logger.Debug("validation failed", "errors", len(res.Errors))
		err = &ValidationError{Path: inv.Path, Result: res}
	} else {
		inv.Flags = flags
		inv.Values = merge(bindArgs(cmd.Args, opts.Positional), flags)
		err = runCommand(ctx, inv, opts.Hooks, opts.Middleware)
	}

	return finishRun(ctx, opts.Hooks, logger, &HookEvent{Path: inv.Path, Invocation: inv}, err)
}

func runCommand(ctx context.Context, inv *Invocation, hooks HookRunner, mws []MiddlewareFunc) error {
	logger := inv.logger()

	if err := runHooks(ctx, hooks, &HookEvent{Point: BeforeCommand, Path: inv.Path, Invocation: inv}); err != nil {
		return err
	}

	if inv.Command.Handler != nil {
		logger.Debug("running handler", "command", inv.Path)
		handler := Chain(mws...)(inv.Command.Handler)
		if err := handler(ctx, inv); err != nil {
			return &RunCommandError{Path: inv.Path, Err: err}
		}
	}

	return runHooks(ctx, hooks, &HookEvent{Point: AfterCommand, Path: inv.Path, Invocation: inv})
}

// finishRun runs the OnError hooks for a failed run and the OnExit hooks for
// every run. Errors of those hooks are logged when the run already failed and
// returned otherwise.
func finishRun(ctx context.Context, hooks HookRunner, logger hclog.Logger, ev *HookEvent, err error) error {
	ev.Err = err
	if err != nil {
		ev.Point = OnError
		if herr := runHooks(ctx, hooks, ev); herr != nil {
			logger.Warn("error hook failed", "error", herr)
		}
	}

	ev.Point = OnExit
	if herr := runHooks(ctx, hooks, ev); herr != nil {
		if err != nil {
			logger.Warn("exit hook failed", "error", herr)
			return err
		}
		return herr
	}
	return err
}

func runHooks(ctx context.Context, hooks HookRunner, ev *HookEvent) error {
	if hooks == nil {
		return nil
	}
	return hooks.RunHooks(ctx, ev)
}

// bindArgs zips declared argument names with positional values. Number
// arguments are cast; missing ones are left unset.
func bindArgs(args []Arg, positional []string) Values {
	out := make(Values, len(args))
	for i, a := range args {
		if i >= len(positional) {
			break
		}
		if a.Definition().Type == Number {
			out[a.Name] = toNumber(positional[i])
			continue
		}
		out[a.Name] = positional[i]
	}
	return out
}
