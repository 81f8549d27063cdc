package report

import (
	"fmt"
	"io"

	"github.com/kilianp07/enersim/core/analysis"
	"github.com/kilianp07/enersim/core/model"
)

// Writer renders the human-readable run report.
type Writer struct {
	// PreviewRows is how many leading and trailing rows to print.
	PreviewRows int
}

// Write emits the full report: a head/tail preview of the table, the three
// insight lines and a completion message. It never mutates the table.
func (rw Writer) Write(w io.Writer, runID string, tab model.Table, rep analysis.Report) error {
	if _, err := fmt.Fprintf(w, "Energy transition outlook %d-%d (run %s)\n\n",
		tab.First().Year, tab.Last().Year, runID); err != nil {
		return err
	}
	if err := rw.writePreview(w, tab); err != nil {
		return err
	}

	fmt.Fprintln(w)
	writeCrossover(w, "Renewable capacity overtakes fossil capacity", rep.CapacityCrossover)
	writeCrossover(w, "Renewable LCOE drops below fossil LCOE", rep.CostCrossover)
	fmt.Fprintf(w, "Renewable LCOE change %d-%d: %.2f%%\n",
		tab.First().Year, tab.Last().Year, rep.RenewableCostChangePct)

	if len(rep.Series) > 0 {
		fmt.Fprintln(w, "\nSeries summary:")
		for _, s := range rep.Series {
			fmt.Fprintf(w, "  %-24s mean=%8.2f std=%7.2f min=%8.2f max=%8.2f trend=%+.2f/yr\n",
				s.Name, s.Mean, s.StdDev, s.Min, s.Max, s.TrendPerYear)
		}
	}

	_, err := fmt.Fprintln(w, "\nAnalysis complete.")
	return err
}

func (rw Writer) writePreview(w io.Writer, tab model.Table) error {
	n := rw.PreviewRows
	if n < 1 {
		n = 1
	}
	if _, err := fmt.Fprintf(w, "%6s %15s %15s %13s %13s\n",
		"year", "fossil_cap_gw", "renew_cap_gw", "fossil_lcoe", "renew_lcoe"); err != nil {
		return err
	}
	if len(tab) <= 2*n {
		for _, r := range tab {
			writeRow(w, r)
		}
	} else {
		for _, r := range tab[:n] {
			writeRow(w, r)
		}
		fmt.Fprintf(w, "%6s\n", "...")
		for _, r := range tab[len(tab)-n:] {
			writeRow(w, r)
		}
	}
	_, err := fmt.Fprintf(w, "(%d rows)\n", len(tab))
	return err
}

func writeRow(w io.Writer, r model.YearRecord) {
	fmt.Fprintf(w, "%6d %15.2f %15.2f %13.2f %13.2f\n",
		r.Year, r.FossilCapacityGW, r.RenewableCapacityGW, r.FossilLCOE, r.RenewableLCOE)
}

func writeCrossover(w io.Writer, label string, c analysis.Crossover) {
	if c.Found {
		fmt.Fprintf(w, "%s in %d\n", label, c.Year)
		return
	}
	fmt.Fprintf(w, "%s: no crossover in range\n", label)
}
