// Package modal implements the one-per-page dialog: an add form or a delete
// confirmation.
package modal

import (
	"errors"
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

var (
	ErrNotOpen       = errors.New("no form is open")
	ErrNotConfirming = errors.New("no delete is awaiting confirmation")
)

type State int

const (
	Closed State = iota
	Open
	ConfirmingDelete
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case ConfirmingDelete:
		return "confirming_delete"
	default:
		return "closed"
	}
}

// Controller holds a form of type F or a delete target of type T.
type Controller[F, T any] struct {
	mu       sync.Mutex
	defaults func() F
	state    State
	form     F
	errors   map[string]string
	target   T
}

// New returns a closed controller. defaults builds the initial form each time
// the dialog opens.
func New[F, T any](defaults func() F) *Controller[F, T] {
	if defaults == nil {
		defaults = func() F {
			var zero F
			return zero
		}
	}
	return &Controller[F, T]{defaults: defaults}
}

// OpenAdd opens the form reset to its defaults, dropping any pending
// confirmation.
func (c *Controller[F, T]) OpenAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.target = zero
	c.form = c.defaults()
	c.errors = nil
	c.state = Open
}

// Update edits the open form. The error shown for field, if any, is cleared.
func (c *Controller[F, T]) Update(field string, fn func(*F)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Open {
		return ErrNotOpen
	}
	fn(&c.form)
	delete(c.errors, field)
	return nil
}

// Fail attaches validation errors; the form stays open.
func (c *Controller[F, T]) Fail(errs validator.ValidationErrors) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Open {
		return ErrNotOpen
	}
	c.errors = errs.ToMap()
	return nil
}

// FailFields attaches a field -> message mapping, as returned by the server.
func (c *Controller[F, T]) FailFields(fields map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Open {
		return ErrNotOpen
	}
	c.errors = make(map[string]string, len(fields))
	for k, v := range fields {
		c.errors[k] = v
	}
	return nil
}

// ConfirmDelete asks for confirmation before deleting target. Allowed from
// any state; an open form is discarded.
func (c *Controller[F, T]) ConfirmDelete(target T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero F
	c.form = zero
	c.errors = nil
	c.target = target
	c.state = ConfirmingDelete
}

// Close returns to Closed on cancel or after a successful submit or delete.
func (c *Controller[F, T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zeroF F
	var zeroT T
	c.form = zeroF
	c.target = zeroT
	c.errors = nil
	c.state = Closed
}

func (c *Controller[F, T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Form returns a copy of the open form.
func (c *Controller[F, T]) Form() (F, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Open {
		var zero F
		return zero, ErrNotOpen
	}
	return c.form, nil
}

// Errors returns the field errors currently shown on the form.
func (c *Controller[F, T]) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Target returns the record awaiting delete confirmation.
func (c *Controller[F, T]) Target() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != ConfirmingDelete {
		var zero T
		return zero, ErrNotConfirming
	}
	return c.target, nil
}
