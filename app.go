package argot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Names of the global flags every command accepts.
const (
	FlagHelp         = "help"
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLogLevel     = "log-level"
	FlagConfigFile   = "config-file"
	FlagListCommands = "list-commands"
	FlagListFlags    = "list-flags"
)

// GlobalFlags returns the flags accepted on every command. A command that
// declares a flag of the same name takes it over.
func GlobalFlags() map[string]FlagDefinition {
	return map[string]FlagDefinition{
		FlagHelp: {
			Type:        Boolean,
			Alias:       "h",
			Description: "Show help for command.",
		},
		FlagVersion: {
			Type:        Boolean,
			Alias:       "v",
			Description: "Show version information.",
		},
		FlagDebug: {
			Type:        Boolean,
			Description: "Enable debug logging.",
		},
		FlagLogLevel: {
			Type:        String,
			Description: "Set the logging level (trace, debug, info, warn, error).",
		},
		FlagConfigFile: {
			Type:        String,
			Alias:       "c",
			Description: "Path to the configuration file.",
		},
		FlagListCommands: {
			Type:        Boolean,
			Description: "List all commands, including subcommands.",
		},
		FlagListFlags: {
			Type:        Boolean,
			Description: "List all flags.",
		},
	}
}

// App is a command-line application declared as a command schema.
//
// An App keeps no state between runs: every call to Run builds its own
// router and parse state, so one App may be run any number of times.
type App struct {
	Name    string
	Version string
	Short   string

	// Root optionally handles invocations that name no command.
	Root     *CommandDefinition
	Commands CommandsSchema

	Hooks    HookRunner
	Prompter Prompter
	// Config, when set, is used instead of loading a configuration file.
	Config Config
	// ConfigFile is loaded when --config-file is not given.
	ConfigFile string
	// Logger receives the log output of every run. Its level is left alone;
	// --debug and --log-level log through a separate logger on Stderr.
	Logger hclog.Logger
	HelpFn     HelpFunc

	// StrictFlags rejects flags the matched command does not declare. By
	// default unknown flags are accepted and set to true.
	StrictFlags bool

	// Argv0 is the name the program was started as. When it names a top-level
	// command and argv does not, that command runs (busybox-style dispatch).
	Argv0 string

	// LookupEnv reads flag environment overrides. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// Router builds the command trie of the application.
func (a *App) Router() *TrieNode {
	root := BuildRouter(a.Commands)
	root.Command = a.Root
	return root
}

// RunLine splits line into words the way a POSIX shell would and runs them.
func (a *App) RunLine(ctx context.Context, line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return &ParseError{Input: line, Err: err}
	}
	return a.Run(ctx, words)
}

// Run parses argv (program name excluded), routes it to a command and
// executes that command. Help and version requests are answered on Stdout.
// Nothing is printed for errors; the returned error is for the caller to
// report.
func (a *App) Run(ctx context.Context, argv []string) error {
	if err := a.Lint(); err != nil {
		return fmt.Errorf("initializing command: %w", err)
	}

	id := uuid.NewString()
	root := a.Router()
	tokens := Tokenize(argv)

	prefix := a.argv0Prefix(root, tokens)
	pre := FindCommand(root, append(slices.Clone(prefix), leadingWords(tokens)...))

	globals := GlobalFlags()
	var cmdDefs map[string]FlagDefinition
	if pre.Command != nil {
		cmdDefs = NormalizeFlags(pre.Command.Flags)
	}
	parseDefs := make(map[string]FlagDefinition, len(globals)+len(cmdDefs))
	for name, def := range globals {
		parseDefs[name] = def
	}
	for name, def := range cmdDefs {
		parseDefs[name] = def
	}
	shortToLong := ShortAliases(globals)
	for short, long := range ShortAliases(cmdDefs) {
		shortToLong[short] = long
	}

	g := ParseTokens(tokens, parseDefs, shortToLong)
	path := append(slices.Clone(prefix), g.Commands...)
	m := FindCommand(root, path)

	isGlobal := func(name string) bool {
		_, declared := cmdDefs[name]
		return !declared
	}
	logger := a.runLogger(g.Flags, isGlobal).With("invocation", id)
	logger.Debug("routed", "path", path, "matched", m.MatchedPath, "remaining", m.Remaining)

	stdout := a.stdout()
	if isGlobal(FlagHelp) && g.Flags.Bool(FlagHelp) {
		return a.help(stdout, root, m)
	}
	if isGlobal(FlagVersion) && g.Flags.Bool(FlagVersion) {
		_, err := fmt.Fprintf(stdout, "%s %s\n", a.Name, a.Version)
		return err
	}
	if isGlobal(FlagListCommands) && g.Flags.Bool(FlagListCommands) {
		return PrintCommands(stdout, a.Name, root)
	}
	if isGlobal(FlagListFlags) && g.Flags.Bool(FlagListFlags) {
		return PrintFlags(stdout, a.Name, root, globals)
	}

	if m.Command == nil {
		if len(path) == 0 {
			return a.help(stdout, root, m)
		}
		err := &CommandNotFoundError{Path: path, Suggestions: suggestCommands(path[0], root.Children())}
		return finishRun(ctx, a.Hooks, logger, &HookEvent{Path: path}, err)
	}

	if m.Command.Handler == nil {
		// Nothing matched below a root without a handler.
		if len(m.Canonical) == 0 && len(m.Remaining) > 0 {
			err := &CommandNotFoundError{Path: path, Suggestions: suggestCommands(path[0], root.Children())}
			return finishRun(ctx, a.Hooks, logger, &HookEvent{Path: path}, err)
		}
		if len(m.Remaining) == 0 && (len(m.Command.Commands) > 0 || len(m.Canonical) == 0) {
			return a.help(stdout, root, m)
		}
	}

	settings, err := a.loadConfig(g.Flags, isGlobal)
	if err != nil {
		return finishRun(ctx, a.Hooks, logger, &HookEvent{Path: m.Canonical}, err)
	}

	flags := make(Values, len(g.Flags))
	for name, value := range g.Flags {
		if _, ok := globals[name]; ok && isGlobal(name) {
			continue
		}
		flags[name] = value
	}
	flags = applyEnv(flags, cmdDefs, a.LookupEnv)

	positional := append(slices.Clone(m.Remaining), g.Args...)

	inv := &Invocation{
		ID:       id,
		Stdout:   stdout,
		Stderr:   a.stderr(),
		Stdin:    a.stdin(),
		Logger:   logger,
		Prompter: a.prompter(),
		Settings: settings,
	}

	return ExecuteCommand(ctx, ExecuteOptions{
		Command:     m.Command,
		Positional:  positional,
		Flags:       flags,
		Path:        m.Canonical,
		Invocation:  inv,
		Hooks:       a.Hooks,
		Middleware:  middlewareChain(root, m.Canonical),
		StrictFlags: a.StrictFlags,
		KnownFlags:  globals,
		Logger:      logger,
	})
}

// leadingWords returns the values before the first flag or "--".
func leadingWords(tokens []Token) []string {
	var words []string
	for _, tok := range tokens {
		if tok.Type != TokenValue {
			break
		}
		words = append(words, tok.Value)
	}
	return words
}

func (a *App) argv0Prefix(root *TrieNode, tokens []Token) []string {
	if a.Argv0 == "" {
		return nil
	}
	name := filepath.Base(a.Argv0)
	if root.Resolve(name) == nil {
		return nil
	}
	if words := leadingWords(tokens); len(words) > 0 && root.Resolve(words[0]) != nil {
		return nil
	}
	return []string{name}
}

// middlewareChain collects the middleware along path, root first.
func middlewareChain(root *TrieNode, path []string) []MiddlewareFunc {
	var mws []MiddlewareFunc
	if root.Command != nil && root.Command.Middleware != nil {
		mws = append(mws, root.Command.Middleware)
	}
	node := root
	for _, seg := range path {
		node = node.Child(seg)
		if node == nil {
			break
		}
		if node.Command != nil && node.Command.Middleware != nil {
			mws = append(mws, node.Command.Middleware)
		}
	}
	return mws
}

func (a *App) help(w io.Writer, root *TrieNode, m Match) error {
	topic := HelpTopic{
		AppName:     a.Name,
		Short:       a.Short,
		Path:        m.Canonical,
		Node:        FindNode(root, m.Canonical),
		GlobalFlags: GlobalFlags(),
	}
	if len(m.Canonical) > 0 {
		topic.Command = m.Command
	} else {
		topic.Command = a.Root
	}
	helpFn := a.HelpFn
	if helpFn == nil {
		helpFn = RenderHelp
	}
	return helpFn(w, topic)
}

// runLogger returns the logger of one run. App.Logger is never modified:
// when --debug or --log-level asks for another level, a new logger with that
// level is built writing to Stderr.
func (a *App) runLogger(flags Values, isGlobal func(string) bool) hclog.Logger {
	level := hclog.NoLevel
	if isGlobal(FlagLogLevel) {
		level = hclog.LevelFromString(flags.String(FlagLogLevel))
	}
	if isGlobal(FlagDebug) && flags.Bool(FlagDebug) {
		level = hclog.Debug
	}

	name := a.Name
	if a.Logger != nil {
		if level == hclog.NoLevel {
			return a.Logger
		}
		name = a.Logger.Name()
	}
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: a.stderr(),
	})
}

func (a *App) loadConfig(flags Values, isGlobal func(string) bool) (Config, error) {
	if a.Config != nil {
		return a.Config, nil
	}
	path := a.ConfigFile
	if isGlobal(FlagConfigFile) && flags.String(FlagConfigFile) != "" {
		path = flags.String(FlagConfigFile)
	}
	if path == "" {
		return MapConfig{}, nil
	}
	return LoadConfig(path)
}

func (a *App) prompter() Prompter {
	if a.Prompter != nil {
		return a.Prompter
	}
	stdin, ok := a.stdin().(io.ReadCloser)
	if !ok {
		stdin = io.NopCloser(a.stdin())
	}
	return &ReadlinePrompter{Stdin: stdin, Stdout: a.stdout(), Stderr: a.stderr()}
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}

func (a *App) stdin() io.Reader {
	if a.Stdin == nil {
		return os.Stdin
	}
	return a.Stdin
}

// Lint checks the schema for declarations the router or parser cannot honor.
// All problems are reported together.
func (a *App) Lint() error {
	var merr error
	if a.Root != nil {
		if err := lintCommand(a.Root); err != nil {
			merr = errors.Join(merr, fmt.Errorf("root command: %w", err))
		}
	}
	return errors.Join(merr, lintSchema(a.Commands))
}

func lintSchema(schema CommandsSchema) error {
	var merr error
	taken := make(map[string]string)
	for _, name := range sortedKeys(schema) {
		taken[name] = name
	}

	for _, name := range sortedKeys(schema) {
		def := schema[name]
		switch {
		case name == "":
			merr = errors.Join(merr, errors.New("command has no name"))
			continue
		case strings.ContainsAny(name, " \t"):
			merr = errors.Join(merr, fmt.Errorf("command name %q contains spaces", name))
		case strings.HasPrefix(name, "-"):
			merr = errors.Join(merr, fmt.Errorf("command name %q starts with a dash", name))
		}
		if def == nil {
			merr = errors.Join(merr, fmt.Errorf("command %v: no definition", name))
			continue
		}

		for _, alias := range def.Aliases {
			if alias == "" || strings.ContainsAny(alias, " \t") || strings.HasPrefix(alias, "-") {
				merr = errors.Join(merr, fmt.Errorf("command %v: invalid alias %q", name, alias))
				continue
			}
			if owner, ok := taken[alias]; ok && owner != name {
				merr = errors.Join(merr, fmt.Errorf("command %v: alias %q already used by %q", name, alias, owner))
				continue
			}
			taken[alias] = name
		}

		if err := lintCommand(def); err != nil {
			merr = errors.Join(merr, fmt.Errorf("command %v: %w", name, err))
		}
	}
	return merr
}

func lintCommand(def *CommandDefinition) error {
	var merr error

	shorts := make(map[string]string)
	for _, name := range sortedKeys(def.Flags) {
		fd := NormalizeFlag(def.Flags[name])
		if name == "" || strings.HasPrefix(name, "-") || strings.ContainsAny(name, " =") {
			merr = errors.Join(merr, fmt.Errorf("invalid flag name %q", name))
		}
		switch fd.Type {
		case String, Boolean, Number:
		default:
			merr = errors.Join(merr, fmt.Errorf("flag %q: unsupported type %q", name, fd.Type))
		}
		if fd.Alias == "" {
			continue
		}
		if len(fd.Alias) != 1 || fd.Alias == "-" {
			merr = errors.Join(merr, fmt.Errorf("flag %q: short alias %q must be one character", name, fd.Alias))
			continue
		}
		if other, ok := shorts[fd.Alias]; ok {
			merr = errors.Join(merr, fmt.Errorf("flag %q: short alias %q already used by %q", name, fd.Alias, other))
			continue
		}
		shorts[fd.Alias] = name
	}

	seenOptional := false
	for i, arg := range def.Args {
		ad := arg.Definition()
		if arg.Name == "" {
			merr = errors.Join(merr, fmt.Errorf("argument %d has no name", i+1))
		}
		switch ad.Type {
		case String, Number:
		case EnumType:
			if len(ad.Values) == 0 {
				merr = errors.Join(merr, fmt.Errorf("argument %q: enum has no values", arg.Name))
			}
		default:
			merr = errors.Join(merr, fmt.Errorf("argument %q: unsupported type %q", arg.Name, ad.Type))
		}
		if ad.Optional {
			seenOptional = true
		} else if seenOptional {
			merr = errors.Join(merr, fmt.Errorf("argument %q: required argument follows an optional one", arg.Name))
		}
	}

	return errors.Join(merr, lintSchema(def.Commands))
}
