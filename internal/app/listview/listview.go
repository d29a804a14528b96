// Package listview holds an ordered set of records fetched from the server
// under an independent filter. Filtering always happens server-side: every
// filter change re-issues the fetch.
package listview

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned when a newer fetch started before this one
// finished. The late result is discarded.
var ErrSuperseded = errors.New("fetch superseded by a newer request")

// Fetcher loads the records matching filter, in server order.
type Fetcher[T, F any] func(ctx context.Context, filter F) ([]T, error)

// Result is a fetched page of records that has not been published yet.
type Result[T any] struct {
	Items []T
	seq   uint64
}

type List[T, F any] struct {
	mu     sync.Mutex
	fetch  Fetcher[T, F]
	filter F
	items  []T
	loaded bool
	seq    uint64
	cancel context.CancelFunc
}

func New[T, F any](fetch Fetcher[T, F]) *List[T, F] {
	return &List[T, F]{fetch: fetch}
}

// Load fetches under the current filter and publishes the result.
func (l *List[T, F]) Load(ctx context.Context) error {
	res, err := l.Fetch(ctx)
	if err != nil {
		return err
	}
	return l.Commit(res)
}

// SetFilter replaces the filter and re-fetches. If the fetch fails the
// previous filter is restored, so Filter always describes Items.
func (l *List[T, F]) SetFilter(ctx context.Context, filter F) error {
	l.mu.Lock()
	prev := l.filter
	l.filter = filter
	l.mu.Unlock()

	res, err := l.fetchFiltered(ctx, &prev)
	if err != nil {
		return err
	}
	return l.Commit(res)
}

// ClearFilter resets the filter to its zero value and re-fetches.
func (l *List[T, F]) ClearFilter(ctx context.Context) error {
	var zero F
	return l.SetFilter(ctx, zero)
}

// Fetch runs the fetcher under the current filter without publishing. Any
// fetch still in flight is cancelled. The result must be passed to Commit to
// become visible, which lets a caller publish several lists together.
func (l *List[T, F]) Fetch(ctx context.Context) (Result[T], error) {
	return l.fetchFiltered(ctx, nil)
}

// fetchFiltered fetches like Fetch. When the fetch fails and is still the
// latest one, the filter is reset to restore.
func (l *List[T, F]) fetchFiltered(ctx context.Context, restore *F) (Result[T], error) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	filter := l.filter
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	items, err := l.fetch(fetchCtx, filter)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		cancel()
		return Result[T]{}, ErrSuperseded
	}
	l.cancel = nil
	cancel()
	if err != nil {
		if restore != nil {
			l.filter = *restore
		}
		return Result[T]{}, err
	}
	return Result[T]{Items: items, seq: seq}, nil
}

// Commit publishes a fetched result unless a newer fetch has started since.
func (l *List[T, F]) Commit(res Result[T]) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if res.seq != l.seq {
		return ErrSuperseded
	}
	l.items = res.Items
	l.loaded = true
	return nil
}

// Replace publishes items directly and invalidates any fetch in flight.
func (l *List[T, F]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
	l.items = items
	l.loaded = true
}

func (l *List[T, F]) Filter() F {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// Items returns a copy of the published records.
func (l *List[T, F]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T, F]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Loaded reports whether any result has been published.
func (l *List[T, F]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
