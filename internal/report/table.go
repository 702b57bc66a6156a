package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
)

const (
	ansiGreen   = "\x1b[32m"
	ansiDefault = "\x1b[39m"
	ansiReset   = "\x1b[0m"
)

// WriteTable renders a suite report as aligned text.
func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n", r.Meta.Suite)
	fmt.Fprintf(tw, "run %s, %d/%d passed (%.2f%%)\n\n", r.Meta.RunID, r.Summary.Passed, r.Summary.Total, r.Summary.PassRate)

	writeRow(tw, "Case", "Rows", "p50", "p95", "Max", "Status")
	writeSeparator(tw, 6)
	for _, c := range r.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		writeRow(tw,
			c.ID,
			fmt.Sprintf("%d", c.Rows),
			fmtDuration(c.Latency.P50()),
			fmtDuration(c.Latency.P95()),
			fmtDuration(c.Latency.Max),
			status,
		)
	}
	fmt.Fprintln(tw)

	if r.Summary.Failed > 0 {
		fmt.Fprintf(tw, "Failures\n\n")
		for _, c := range r.Cases {
			for _, f := range c.Failures {
				fmt.Fprintf(tw, "%s\t%s\n", c.ID, f)
			}
		}
		fmt.Fprintln(tw)
	}

	s := r.Latency
	fmt.Fprintf(tw, "Latency (all cases)\n\n")
	writeRow(tw, "Min", "p50", "p90", "p99", "Max", "Mean", "Stddev", "Samples")
	writeSeparator(tw, 8)
	writeRow(tw,
		fmtDuration(s.Min),
		fmtDuration(s.P50()),
		fmtDuration(s.P90()),
		fmtDuration(s.P99()),
		fmtDuration(s.Max),
		fmtDuration(s.Mean),
		fmtDuration(s.Stddev),
		fmt.Sprintf("%d", s.SampleCount),
	)

	return tw.Flush()
}

// WriteTruthTable renders rows with one column per variable and a final
// result column. With highlight set, rows whose result is true are colored.
func WriteTruthTable(w io.Writer, vars []string, rows []truthtable.Row, highlight bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	// every line starts with an escape sequence of the same length so the
	// first column stays aligned
	prefix := func(on bool) string {
		switch {
		case !highlight:
			return ""
		case on:
			return ansiGreen
		default:
			return ansiDefault
		}
	}
	suffix := ""
	if highlight {
		suffix = ansiReset
	}

	header := append(append([]string{}, vars...), "Result")
	fmt.Fprintln(tw, prefix(false)+strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, prefix(false)+strings.Join(sep, "\t"))

	for _, r := range rows {
		cells := make([]string, 0, len(r.Variables)+1)
		for _, v := range r.Variables {
			cells = append(cells, fmtBool(v.Value))
		}
		cells = append(cells, fmtBool(r.Result))

		fmt.Fprintln(tw, prefix(r.Result)+strings.Join(cells, "\t")+suffix)
	}

	return tw.Flush()
}

func writeRow(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func writeSeparator(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func fmtBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
