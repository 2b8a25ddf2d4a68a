package argot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInvalidChoice is returned by Select when the answer matches no option.
var ErrInvalidChoice = errors.New("invalid choice")

// Question is a single prompt.
type Question struct {
	Message string
	// Default is returned when the answer is empty.
	Default string
	// Secret masks the input.
	Secret bool
}

// Prompter reads answers from the user.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// ReadlinePrompter is a Prompter reading from a terminal with readline.
type ReadlinePrompter struct {
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

// Ask shows q.Message and reads one line. Interrupts are returned as
// readline.ErrInterrupt.
func (p *ReadlinePrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prompt := q.Message
	if q.Default != "" && !q.Secret {
		prompt = fmt.Sprintf("%s [%s]", prompt, q.Default)
	}

	cfg := &readline.Config{
		Prompt:          prompt + " ",
		Stdin:           p.Stdin,
		Stdout:          p.Stdout,
		Stderr:          p.Stderr,
		EnableMask:      q.Secret,
		MaskRune:        '*',
		InterruptPrompt: "^C",
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return "", fmt.Errorf("init readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	line, err := rl.Readline()
	if err != nil {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return q.Default, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. An empty answer yields def.
func Confirm(ctx context.Context, p Prompter, msg string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer, err := p.Ask(ctx, Question{Message: fmt.Sprintf("%s (%s)", msg, hint)})
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, nil
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
	}
}

// Select asks for one of options. The answer may be an option or its 1-based
// position.
func Select(ctx context.Context, p Prompter, msg string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", msg)
	}
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = fmt.Sprintf("%d) %s", i+1, o)
	}
	answer, err := p.Ask(ctx, Question{Message: fmt.Sprintf("%s [%s]", msg, strings.Join(labels, ", "))})
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if slices.Contains(options, answer) {
		return answer, nil
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
}
