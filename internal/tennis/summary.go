package tennis

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const headRows = 2

// WriteSummary writes a human-readable overview of ds to w: the row count,
// each column with its non-null count and type, and the first two rows.
func WriteSummary(w io.Writer, ds *Dataset) error {
	rule := strings.Repeat("--", 30)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Data Overview : After Datatypes conversion")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	n := ds.Len()
	if n == 0 {
		fmt.Fprintln(&b, "Empty dataset")
	} else {
		fmt.Fprintf(&b, "Dataset: %d entries, 0 to %d\n", n, n-1)
	}
	fmt.Fprintf(&b, "Data columns (total %d columns):\n", len(ds.Columns()))

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tDtype")
	fmt.Fprintln(tw, "---\t------\t--------------\t-----")
	for i, name := range ds.Columns() {
		t, _ := ds.Type(name)
		fmt.Fprintf(tw, " %d\t%s\t%d non-null\t%s\n", i, name, nonNull(ds, name), t)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(&b)

	if n > 0 {
		if err := writeHead(&b, ds, headRows); err != nil {
			return err
		}
		fmt.Fprintln(&b)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHead(w io.Writer, ds *Dataset, rows int) error {
	cols := ds.Columns()
	vals := make([][]string, len(cols))
	for i, name := range cols {
		vals[i] = ds.frame.Col(name).Records()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\t"+strings.Join(cols, "\t"))
	for r := 0; r < rows && r < ds.Len(); r++ {
		cells := make([]string, len(cols))
		for c := range cols {
			cells[c] = vals[c][r]
		}
		fmt.Fprintf(tw, "%d\t%s\n", r, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func nonNull(ds *Dataset, name string) int {
	count := 0
	for _, isNaN := range ds.frame.Col(name).IsNaN() {
		if !isNaN {
			count++
		}
	}
	return count
}
