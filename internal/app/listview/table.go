package listview

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type Column[T any] struct {
	Header string
	Cell   func(T) string
}

// Table projects records into aligned text columns. It holds no state.
type Table[T any] struct {
	Columns []Column[T]
	Empty   string
}

func (t Table[T]) Render(w io.Writer, items []T) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, t.Empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	cells := make([]string, len(t.Columns))
	for _, item := range items {
		for i, col := range t.Columns {
			cells[i] = col.Cell(item)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
