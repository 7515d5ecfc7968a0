package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ironsheep/colorbench/internal/metrics"
)

const rule = "=================================================="

// WriteText writes one report in the plain-text layout.
func WriteText(w io.Writer, r metrics.Report) error {
	var b strings.Builder

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "METHOD: %s [%s, %s]\n", r.Title, r.Strategy, r.Mode)
	fmt.Fprintf(&b, "Run: %s\n", r.RunID)
	fmt.Fprintln(&b, rule)

	if r.NoData {
		fmt.Fprintln(&b, "No data: the run was sealed before any frame was measured.")
		fmt.Fprintln(&b)
		_, err := io.WriteString(w, b.String())
		return err
	}

	if r.Frames < r.Target {
		fmt.Fprintf(&b, "Partial run: %d of %d frames (%s)\n", r.Frames, r.Target, r.Reason)
	}

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Throughput")
	fmt.Fprintf(tw, "  Frames processed:\t%d\n", r.Frames)
	fmt.Fprintf(tw, "  Total time:\t%.2f s\n", r.TotalSeconds)
	fmt.Fprintf(tw, "  Real FPS:\t%.2f\n", r.RealFPS)

	fmt.Fprintln(tw, "Latency (classify + select)")
	fmt.Fprintf(tw, "  Mean:\t%.3f ms\n", r.Latency.MeanMS)
	fmt.Fprintf(tw, "  Std dev:\t%.3f ms\n", r.Latency.StdDevMS)
	fmt.Fprintf(tw, "  Max:\t%.3f ms\n", r.Latency.MaxMS)
	fmt.Fprintf(tw, "  Min:\t%.3f ms\n", r.Latency.MinMS)

	fmt.Fprintln(tw, "Resources")
	fmt.Fprintf(tw, "  CPU mean:\t%.1f %%\n", r.CPU.Mean)
	fmt.Fprintf(tw, "  CPU max:\t%.1f %%\n", r.CPU.Max)
	fmt.Fprintf(tw, "  Memory mean:\t%.1f MB\n", r.MemoryMB.Mean)
	fmt.Fprintf(tw, "  Memory max:\t%.1f MB\n", r.MemoryMB.Max)

	fmt.Fprintln(tw, "Detection")
	fmt.Fprintf(tw, "  Overall:\t%.1f %%\n", r.OverallPercent)
	for _, c := range r.PerColor {
		fmt.Fprintf(tw, "  %s:\t%.1f %%\n", c.Target, c.Percent)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary writes a one-line-per-strategy comparison table.
func WriteSummary(w io.Writer, reports []metrics.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFRAMES\tFPS\tMEAN MS\tCPU %\tMEM MB\tDETECTED %")
	for _, r := range reports {
		if r.NoData {
			fmt.Fprintf(tw, "%s\t0\t-\t-\t-\t-\t-\n", r.Strategy)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.3f\t%.1f\t%.1f\t%.1f\n",
			r.Strategy, r.Frames, r.RealFPS, r.Latency.MeanMS, r.CPU.Mean, r.MemoryMB.Mean, r.OverallPercent)
	}
	return tw.Flush()
}
