// Package page implements the controllers behind each console screen. A
// controller loads its resources in parallel, owns one modal, and reloads
// everything from the server after every successful write.
package page

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/app/modal"
	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

var (
	ErrBusy            = errors.New("a submission is already in progress")
	ErrRecordNotLoaded = errors.New("record is not in the current list")
)

const genericErrorMessage = "An error occurred"

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "loading"
	}
}

type options struct {
	logger        *slog.Logger
	now           func() time.Time
	bannerTimeout time.Duration
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the clock used for form defaults.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithBannerTimeout(d time.Duration) Option {
	return func(o *options) {
		o.bannerTimeout = d
	}
}

// Header is the state every page shares.
type Header struct {
	Status     Status
	Submitting bool
	Success    string
	Error      string
}

// ModalView is a read-only copy of a page's modal.
type ModalView[F, T any] struct {
	State  modal.State
	Form   F
	Errors map[string]string
	Target T
}

func viewModal[F, T any](c *modal.Controller[F, T]) ModalView[F, T] {
	v := ModalView[F, T]{State: c.State(), Errors: c.Errors()}
	v.Form, _ = c.Form()
	v.Target, _ = c.Target()
	return v
}

type base struct {
	mu         sync.Mutex
	status     Status
	submitting bool
	banners    *Banners
	logger     *slog.Logger
	now        func() time.Time
}

func newBase(name string, opts []Option) *base {
	o := options{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &base{
		status:  StatusLoading,
		banners: NewBanners(o.bannerTimeout),
		logger:  o.logger.With("page", name),
		now:     o.now,
	}
}

func (b *base) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

func (b *base) Submitting() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submitting
}

func (b *base) Banners() *Banners {
	return b.banners
}

func (b *base) DismissError() {
	b.banners.DismissError()
}

// Unmount stops the banner timer. The page may be mounted again later.
func (b *base) Unmount() {
	b.banners.Stop()
}

func (b *base) header() Header {
	success, errMsg := b.banners.Messages()
	b.mu.Lock()
	defer b.mu.Unlock()
	return Header{
		Status:     b.status,
		Submitting: b.submitting,
		Success:    success,
		Error:      errMsg,
	}
}

func (b *base) setStatus(s Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = s
}

func (b *base) beginSubmit() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.submitting {
		return ErrBusy
	}
	b.submitting = true
	return nil
}

func (b *base) endSubmit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitting = false
}

// report shows err on the error banner. Validation errors stay on the form
// and superseded fetches are silent.
func (b *base) report(err error) {
	var verrs validator.ValidationErrors
	switch {
	case err == nil, errors.As(err, &verrs), errors.Is(err, listview.ErrSuperseded):
		return
	}
	b.logger.Warn("request failed", "error", err)
	b.banners.Error(errorMessage(err))
}

func errorMessage(err error) string {
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericErrorMessage
}

// step fetches one resource and returns a function publishing it.
type step func(ctx context.Context) (func() error, error)

func listStep[T, F any](l *listview.List[T, F]) step {
	return func(ctx context.Context) (func() error, error) {
		res, err := l.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return func() error { return l.Commit(res) }, nil
	}
}

// load runs every step concurrently and publishes the results only if all
// of them succeed. Any failure leaves previous data in place and moves the
// page to StatusError. A step superseded by a newer fetch of the same list
// is skipped; that fetch publishes the list itself.
func (b *base) load(ctx context.Context, steps ...step) error {
	commits := make([]func() error, len(steps))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range steps {
		g.Go(func() error {
			commit, err := s(gctx)
			if errors.Is(err, listview.ErrSuperseded) {
				return nil
			}
			if err != nil {
				return err
			}
			commits[i] = commit
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		b.setStatus(StatusError)
		b.report(err)
		return err
	}

	for _, commit := range commits {
		if commit == nil {
			continue
		}
		if err := commit(); err != nil && !errors.Is(err, listview.ErrSuperseded) {
			return err
		}
	}
	b.setStatus(StatusReady)
	return nil
}

// failForm attaches validation errors from either side of the wire to the
// open form, returning true when it did.
func failForm[F, T any](c *modal.Controller[F, T], err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		_ = c.Fail(verrs)
		return true
	}
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		if fields := reqErr.FieldErrors(); len(fields) > 0 {
			_ = c.FailFields(fields)
		}
	}
	return false
}

// noFilter is the filter type of lists that are never filtered.
type noFilter struct{}
