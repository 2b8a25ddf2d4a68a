package argot

import (
	"fmt"
	"strings"
)

// ParseError reports input that could not be split into arguments. The lexer
// and grammar parser accept every argv, so this only comes from App.RunLine.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError carries every failed check of a validation. It is never
// produced for a single check in isolation.
type ValidationError struct {
	Path   []string
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	if len(e.Path) > 0 {
		fmt.Fprintf(&sb, "invalid input for %q:", strings.Join(e.Path, " "))
	} else {
		sb.WriteString("invalid input:")
	}
	for _, info := range e.Result.Errors {
		sb.WriteString("\n  ")
		sb.WriteString(info.String())
		if info.Value != nil {
			fmt.Fprintf(&sb, " (got %q)", formatValue(info.Value))
		}
	}
	return sb.String()
}

// CommandNotFoundError is returned when no segment of the requested path
// matched a declared command.
type CommandNotFoundError struct {
	Path []string
	// Suggestions are known command names close to the first segment.
	Suggestions []string
}

func (e *CommandNotFoundError) Error() string {
	msg := fmt.Sprintf("unknown command %q", strings.Join(e.Path, " "))
	if len(e.Path) == 0 {
		msg = "no command given"
	}
	if len(e.Suggestions) > 0 {
		msg += ". Did you mean one of these?\n\t" + strings.Join(e.Suggestions, "\n\t")
	}
	return msg
}

// RunCommandError wraps an error returned by a handler, middleware or hook.
type RunCommandError struct {
	Path []string
	Err  error
}

func (e *RunCommandError) Unwrap() error {
	return e.Err
}

func (e *RunCommandError) Error() string {
	return fmt.Sprintf("running command %q: %+v", strings.Join(e.Path, " "), e.Err)
}
