package benchmark

import (
	"fmt"
	"io"

	"benchcmp/internal/ui"
)

// DefaultOrder is the fixed comparison order of implementation/target
// pairs. The reference pair comes first.
var DefaultOrder = []Pair{
	{Impl: "rust", Target: "rust"},
	{Impl: "moonbit", Target: "native"},
	{Impl: "moonbit", Target: "wasm-gc"},
}

// DefaultReference is the pair whose ns_per_iter is the denominator for
// all ratio lines.
var DefaultReference = Pair{Impl: "rust", Target: "rust"}

// Reporter writes the per-scenario comparison report.
type Reporter struct {
	Order     []Pair
	Reference Pair
	Color     bool
}

// NewReporter returns a Reporter with the default comparison policy.
func NewReporter() *Reporter {
	return &Reporter{Order: DefaultOrder, Reference: DefaultReference}
}

// FormatRow renders a single fixed-width data row. Zero-valued fields
// format as 0.000 / 0.000000 / 0; formatting never fails.
func FormatRow(label, target string, rec Record) string {
	return fmt.Sprintf("%-10s %-10s %12.3f %12.6f %10d",
		label, target, rec.NsPerIter, rec.TotalSecs, rec.Iters)
}

// Write prints one section per scenario in lexicographic order: a section
// header, a column header, a row for each ordered pair present in the
// scenario, ratio lines against the reference pair, and a trailing blank
// line. Pairs without a record are skipped silently.
func (r *Reporter) Write(w io.Writer, records []Record) {
	groups := GroupByScenario(records)
	for _, scenario := range Scenarios(records) {
		lookup := PairLookup(groups[scenario])

		fmt.Fprintln(w, r.section("== "+scenario))
		fmt.Fprintln(w, r.columns(fmt.Sprintf("%-10s %-10s %12s %12s %10s",
			"impl", "target", "ns/iter", "secs", "iters")))

		for _, p := range r.Order {
			rec, ok := lookup[p]
			if !ok {
				continue
			}
			fmt.Fprintln(w, FormatRow(p.Impl, p.Target, rec))
		}

		// Ratios only make sense against a positive reference timing.
		if ref, ok := lookup[r.Reference]; ok && ref.NsPerIter > 0 {
			for _, p := range r.Order {
				if p == r.Reference {
					continue
				}
				rec, ok := lookup[p]
				if !ok {
					continue
				}
				fmt.Fprintln(w, r.ratio(fmt.Sprintf("ratio vs %s (%s/%s): %.3fx",
					r.Reference.Impl, p.Impl, p.Target, rec.NsPerIter/ref.NsPerIter)))
			}
		}
		fmt.Fprintln(w)
	}
}

func (r *Reporter) section(s string) string {
	if !r.Color {
		return s
	}
	return ui.SectionStyle.Render(s)
}

func (r *Reporter) columns(s string) string {
	if !r.Color {
		return s
	}
	return ui.ColumnStyle.Render(s)
}

func (r *Reporter) ratio(s string) string {
	if !r.Color {
		return s
	}
	return ui.RatioStyle.Render(s)
}
