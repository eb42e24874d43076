package actions

import (
	"context"
	"fmt"
	"strings"

	"swasthya-sahayak/internal/logger"
)

// ErrorKind separates bad input from remote-call failure so callers can tell
// "nothing matched" apart from "the service was down".
type ErrorKind string

const (
	ErrValidation ErrorKind = "validation"
	ErrExternal   ErrorKind = "external"
)

// ActionError carries the failure kind alongside the message.
type ActionError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Result is the uniform contract every action returns. A handler never lets
// a panic or error escape its boundary; failures become Success=false with a
// populated Error.
type Result struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   *ActionError `json:"error,omitempty"`
}

func failValidation(format string, args ...any) Result {
	return Result{Success: false, Error: &ActionError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}}
}

func failExternal(format string, args ...any) Result {
	return Result{Success: false, Error: &ActionError{Kind: ErrExternal, Message: fmt.Sprintf(format, args...)}}
}

// Input is the decoded JSON body of an action invocation.
type Input map[string]any

func (in Input) String(key string) string {
	if v, ok := in[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func (in Input) Bool(key string) bool {
	if v, ok := in[key].(bool); ok {
		return v
	}
	return false
}

func (in Input) Int(key string) int {
	switch v := in[key].(type) {
	case float64: // JSON numbers decode as float64
		return int(v)
	case int:
		return v
	}
	return 0
}

func (in Input) IntSlice(key string) []int {
	raw, ok := in[key].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		if f, ok := item.(float64); ok {
			out = append(out, int(f))
		}
	}
	return out
}

// Action is one catalog entry: a named operation with a fixed input shape
// and a uniform result contract.
type Action interface {
	Name() string
	Description() string
	Execute(ctx context.Context, input Input) Result
}

// Registry holds the action catalog in registration order.
type Registry struct {
	actions map[string]Action
	order   []string
}

func NewRegistry(actions ...Action) *Registry {
	r := &Registry{actions: make(map[string]Action)}
	for _, a := range actions {
		r.Register(a)
	}
	return r
}

func (r *Registry) Register(a Action) {
	if _, exists := r.actions[a.Name()]; !exists {
		r.order = append(r.order, a.Name())
	}
	r.actions[a.Name()] = a
}

// List returns the catalog in registration order.
func (r *Registry) List() []Action {
	out := make([]Action, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.actions[name])
	}
	return out
}

// Execute dispatches to the named action. Unknown names and handler panics
// both become failure-shaped results rather than errors.
func (r *Registry) Execute(ctx context.Context, name string, input Input) (result Result) {
	action, ok := r.actions[name]
	if !ok {
		return failValidation("unknown action %q", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("action panicked", "action", name, "panic", rec)
			result = failExternal("action %s failed unexpectedly", name)
		}
	}()

	return action.Execute(ctx, input)
}
