package argot

import (
	"context"
	"errors"
	"fmt"
)

// HookPoint is a fixed point of the command lifecycle.
type HookPoint int

const (
	// BeforeCommand runs after validation, before the handler.
	BeforeCommand HookPoint = iota
	// AfterCommand runs after the handler returned successfully.
	AfterCommand
	// OnError runs once with the error of a failed run.
	OnError
	// OnExit runs last on every run that reached command resolution.
	OnExit
)

func (p HookPoint) String() string {
	switch p {
	case BeforeCommand:
		return "beforeCommand"
	case AfterCommand:
		return "afterCommand"
	case OnError:
		return "onError"
	case OnExit:
		return "onExit"
	default:
		return fmt.Sprintf("HookPoint(%d)", int(p))
	}
}

// HookEvent is passed to every hook.
type HookEvent struct {
	Point HookPoint
	// Path is the best-known command path: the matched path once routing
	// succeeded, the requested words otherwise.
	Path []string
	// Invocation is nil when the run failed before an invocation was built.
	Invocation *Invocation
	// Err is the error of the run, for OnError and OnExit.
	Err error
}

// HookFunc is a lifecycle callback.
type HookFunc func(ctx context.Context, ev *HookEvent) error

// HookRunner runs the hooks registered for ev.Point.
type HookRunner interface {
	RunHooks(ctx context.Context, ev *HookEvent) error
}

// Hooks is the default HookRunner. The zero value is ready to use.
type Hooks struct {
	hooks map[HookPoint][]HookFunc
}

// On registers fn for point. Hooks of one point run in registration order.
func (h *Hooks) On(point HookPoint, fn HookFunc) *Hooks {
	if h.hooks == nil {
		h.hooks = make(map[HookPoint][]HookFunc)
	}
	h.hooks[point] = append(h.hooks[point], fn)
	return h
}

func (h *Hooks) BeforeCommand(fn HookFunc) *Hooks { return h.On(BeforeCommand, fn) }
func (h *Hooks) AfterCommand(fn HookFunc) *Hooks  { return h.On(AfterCommand, fn) }
func (h *Hooks) OnError(fn HookFunc) *Hooks       { return h.On(OnError, fn) }
func (h *Hooks) OnExit(fn HookFunc) *Hooks        { return h.On(OnExit, fn) }

// RunHooks runs the hooks of ev.Point one after the other. Before and after
// hooks stop at the first error. Error and exit hooks always all run; their
// errors are joined.
func (h *Hooks) RunHooks(ctx context.Context, ev *HookEvent) error {
	if h == nil {
		return nil
	}
	var merr error
	for _, fn := range h.hooks[ev.Point] {
		err := fn(ctx, ev)
		if err == nil {
			continue
		}
		if ev.Point == BeforeCommand || ev.Point == AfterCommand {
			return fmt.Errorf("%s hook: %w", ev.Point, err)
		}
		merr = errors.Join(merr, fmt.Errorf("%s hook: %w", ev.Point, err))
	}
	return merr
}
