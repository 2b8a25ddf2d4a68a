package argot

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers questions from a fixed list.
type scriptedPrompter struct {
	answers   []string
	questions []Question
}

func (p *scriptedPrompter) Ask(_ context.Context, q Question) (string, error) {
	p.questions = append(p.questions, q)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		answer  string
		def     bool
		want    bool
		wantErr bool
	}{
		{answer: "y", want: true},
		{answer: "YES", want: true},
		{answer: "1", want: true},
		{answer: "n", def: true, want: false},
		{answer: "no", want: false},
		{answer: "", def: true, want: true},
		{answer: "  ", def: false, want: false},
		{answer: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		p := &scriptedPrompter{answers: []string{tt.answer}}
		got, err := Confirm(context.Background(), p, "Continue?", tt.def)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidChoice, "answer %q", tt.answer)
			continue
		}
		require.NoError(t, err, "answer %q", tt.answer)
		assert.Equal(t, tt.want, got, "answer %q", tt.answer)
	}

	p := &scriptedPrompter{answers: []string{"y"}}
	_, _ = Confirm(context.Background(), p, "Continue?", true)
	assert.Equal(t, "Continue? (Y/n)", p.questions[0].Message)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	options := []string{"dev", "staging", "prod"}

	p := &scriptedPrompter{answers: []string{"prod", "2", "4", "qa"}}
	got, err := Select(context.Background(), p, "Environment", options)
	require.NoError(t, err)
	assert.Equal(t, "prod", got)
	assert.Equal(t, "Environment [1) dev, 2) staging, 3) prod]", p.questions[0].Message)

	got, err = Select(context.Background(), p, "Environment", options)
	require.NoError(t, err)
	assert.Equal(t, "staging", got)

	_, err = Select(context.Background(), p, "Environment", options)
	require.ErrorIs(t, err, ErrInvalidChoice)
	_, err = Select(context.Background(), p, "Environment", options)
	require.ErrorIs(t, err, ErrInvalidChoice)

	_, err = Select(context.Background(), p, "Environment", nil)
	require.Error(t, err)

	_, err = Select(context.Background(), p, "Environment", options)
	require.ErrorIs(t, err, io.EOF)
}

func TestInvocationPrompting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	inv := &Invocation{}
	_, err := inv.Ask(ctx, Question{Message: "name"})
	require.ErrorIs(t, err, ErrNoPrompter)
	_, err = inv.Confirm(ctx, "ok?", false)
	require.ErrorIs(t, err, ErrNoPrompter)
	_, err = inv.Select(ctx, "pick", []string{"a"})
	require.ErrorIs(t, err, ErrNoPrompter)

	inv.Prompter = &scriptedPrompter{answers: []string{"alice", "yes", "1"}}
	name, err := inv.Ask(ctx, Question{Message: "name"})
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	ok, err := inv.Confirm(ctx, "ok?", false)
	require.NoError(t, err)
	assert.True(t, ok)
	choice, err := inv.Select(ctx, "pick", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", choice)
}

func TestReadlinePrompterCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &ReadlinePrompter{Stdin: io.NopCloser(strings.NewReader("x\n")), Stdout: io.Discard, Stderr: io.Discard}
	_, err := p.Ask(ctx, Question{Message: "name"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestInvocationTask(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	inv := &Invocation{Stderr: &stderr}

	require.NoError(t, inv.Task(context.Background(), "build", func(context.Context) error { return nil }))
	err := inv.Task(context.Background(), "push", func(context.Context) error { return io.ErrUnexpectedEOF })
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	assert.Equal(t, "• build\n✓ build\n• push\n✗ push: unexpected EOF\n", stderr.String())
}

func TestInvocationErrorf(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	inv := &Invocation{Stderr: &stderr}
	inv.Errorf("bad thing %d\n", 3)
	assert.Equal(t, "error: bad thing 3\n", stderr.String())
}
