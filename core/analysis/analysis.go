package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/enersim/core/model"
)

// Crossover is the result of a threshold scan. A missing crossover is a
// normal outcome, not an error.
type Crossover struct {
	Year  int
	Found bool
}

// SeriesStats summarises one column of the table.
type SeriesStats struct {
	Name         string
	Mean         float64
	StdDev       float64
	Min          float64
	Max          float64
	TrendPerYear float64 // least-squares slope in units per year
}

// Report bundles every derived figure of a run.
type Report struct {
	CapacityCrossover      Crossover
	CostCrossover          Crossover
	RenewableCostChangePct float64
	Series                 []SeriesStats
}

// Analyze computes all insights over the table in one pass per concern.
func Analyze(t model.Table) Report {
	return Report{
		CapacityCrossover:      FirstCapacityCrossover(t),
		CostCrossover:          FirstCostCrossover(t),
		RenewableCostChangePct: RenewableCostChangePct(t),
		Series:                 Summaries(t),
	}
}

// FirstCapacityCrossover returns the first year where renewable capacity
// exceeds fossil capacity.
func FirstCapacityCrossover(t model.Table) Crossover {
	for _, r := range t {
		if r.RenewableCapacityGW > r.FossilCapacityGW {
			return Crossover{Year: r.Year, Found: true}
		}
	}
	return Crossover{}
}

// FirstCostCrossover returns the first year where renewable LCOE drops below
// fossil LCOE.
func FirstCostCrossover(t model.Table) Crossover {
	for _, r := range t {
		if r.RenewableLCOE < r.FossilLCOE {
			return Crossover{Year: r.Year, Found: true}
		}
	}
	return Crossover{}
}

// RenewableCostChangePct is the signed percentage change of renewable LCOE
// between the first and last row.
func RenewableCostChangePct(t model.Table) float64 {
	first := t.First().RenewableLCOE
	last := t.Last().RenewableLCOE
	return (last - first) / first * 100
}

// Summaries computes per-series statistics in table column order.
func Summaries(t model.Table) []SeriesStats {
	years := make([]float64, len(t))
	for i, r := range t {
		years[i] = float64(r.Year)
	}
	cols := []struct {
		name   string
		values func(model.YearRecord) float64
	}{
		{"fossil_capacity_gw", func(r model.YearRecord) float64 { return r.FossilCapacityGW }},
		{"renewable_capacity_gw", func(r model.YearRecord) float64 { return r.RenewableCapacityGW }},
		{"fossil_lcoe_usd_mwh", func(r model.YearRecord) float64 { return r.FossilLCOE }},
		{"renewable_lcoe_usd_mwh", func(r model.YearRecord) float64 { return r.RenewableLCOE }},
	}
	out := make([]SeriesStats, 0, len(cols))
	for _, c := range cols {
		vals := make([]float64, len(t))
		for i, r := range t {
			vals[i] = c.values(r)
		}
		_, slope := stat.LinearRegression(years, vals, nil, false)
		out = append(out, SeriesStats{
			Name:         c.name,
			Mean:         stat.Mean(vals, nil),
			StdDev:       stat.StdDev(vals, nil),
			Min:          floats.Min(vals),
			Max:          floats.Max(vals),
			TrendPerYear: slope,
		})
	}
	return out
}
