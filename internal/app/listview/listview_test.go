package listview

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filter struct {
	EmployeeID string
}

func TestList_FilterChangeRefetches(t *testing.T) {
	var seen []filter
	l := New(func(ctx context.Context, f filter) ([]string, error) {
		seen = append(seen, f)
		if f.EmployeeID == "" {
			return []string{"a", "b", "c"}, nil
		}
		return []string{"a"}, nil
	})

	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, 3, l.Len())

	require.NoError(t, l.SetFilter(context.Background(), filter{EmployeeID: "EMP001"}))
	assert.Equal(t, []string{"a"}, l.Items())
	assert.Equal(t, filter{EmployeeID: "EMP001"}, l.Filter())

	require.NoError(t, l.ClearFilter(context.Background()))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, filter{}, l.Filter())
	assert.Equal(t, []filter{{}, {EmployeeID: "EMP001"}, {}}, seen)
}

func TestList_ErrorKeepsPreviousItems(t *testing.T) {
	fail := false
	l := New(func(ctx context.Context, f filter) ([]int, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return []int{1, 2}, nil
	})

	require.NoError(t, l.Load(context.Background()))
	fail = true
	assert.Error(t, l.Load(context.Background()))
	assert.Equal(t, []int{1, 2}, l.Items())
}

func TestList_FailedFilterChangeKeepsPreviousFilter(t *testing.T) {
	l := New(func(ctx context.Context, f filter) ([]string, error) {
		if f.EmployeeID == "EMP002" {
			return nil, errors.New("boom")
		}
		return []string{"EMP001"}, nil
	})

	require.NoError(t, l.SetFilter(context.Background(), filter{EmployeeID: "EMP001"}))
	assert.Error(t, l.SetFilter(context.Background(), filter{EmployeeID: "EMP002"}))

	assert.Equal(t, filter{EmployeeID: "EMP001"}, l.Filter())
	assert.Equal(t, []string{"EMP001"}, l.Items())
}

func TestList_LateResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	l := New(func(ctx context.Context, f filter) ([]string, error) {
		if f.EmployeeID == "slow" {
			close(started)
			<-release
			return []string{"stale"}, nil
		}
		return []string{"fresh"}, nil
	})

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowErr = l.SetFilter(context.Background(), filter{EmployeeID: "slow"})
	}()
	<-started

	require.NoError(t, l.SetFilter(context.Background(), filter{EmployeeID: "fast"}))
	close(release)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrSuperseded)
	assert.Equal(t, []string{"fresh"}, l.Items())
}

func TestList_NewFetchCancelsPrevious(t *testing.T) {
	cancelled := make(chan struct{})
	started := make(chan struct{})
	l := New(func(ctx context.Context, f filter) ([]string, error) {
		if f.EmployeeID == "slow" {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}
		return nil, nil
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- l.SetFilter(context.Background(), filter{EmployeeID: "slow"})
	}()
	<-started

	require.NoError(t, l.SetFilter(context.Background(), filter{}))
	<-cancelled
	assert.ErrorIs(t, <-errCh, ErrSuperseded)
}

func TestList_CommitAfterReplaceIsSuperseded(t *testing.T) {
	l := New(func(ctx context.Context, f filter) ([]int, error) {
		return []int{1}, nil
	})

	res, err := l.Fetch(context.Background())
	require.NoError(t, err)
	l.Replace([]int{9})

	assert.ErrorIs(t, l.Commit(res), ErrSuperseded)
	assert.Equal(t, []int{9}, l.Items())
}

func TestTable_Render(t *testing.T) {
	type row struct{ ID, Name string }
	table := Table[row]{
		Columns: []Column[row]{
			{Header: "ID", Cell: func(r row) string { return r.ID }},
			{Header: "NAME", Cell: func(r row) string { return r.Name }},
		},
		Empty: "No employees found.",
	}

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf, nil))
	assert.Equal(t, "No employees found.\n", buf.String())

	buf.Reset()
	require.NoError(t, table.Render(&buf, []row{{"EMP001", "John Doe"}, {"EMP002", "Jane"}}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID      NAME", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "EMP001  John Doe", lines[1])
}
