package model

import "fmt"

// YearRecord is one simulated row: installed capacity and levelized cost for
// both generation families in a given year.
type YearRecord struct {
	Year                int     `json:"year"`
	FossilCapacityGW    float64 `json:"fossil_capacity_gw"`
	RenewableCapacityGW float64 `json:"renewable_capacity_gw"`
	FossilLCOE          float64 `json:"fossil_lcoe_usd_mwh"`
	RenewableLCOE       float64 `json:"renewable_lcoe_usd_mwh"`
}

// Table is the full simulated dataset, ordered by year. Records are never
// mutated after assembly; downstream consumers only read it.
type Table []YearRecord

// Assemble zips the year sequence and the four series into a Table. A length
// mismatch is a programming error in the generator, so it is reported as an
// error for the caller to treat as fatal.
func Assemble(years []int, fossilCap, renewCap, fossilCost, renewCost []float64) (Table, error) {
	n := len(years)
	for name, s := range map[string][]float64{
		"fossil_capacity":    fossilCap,
		"renewable_capacity": renewCap,
		"fossil_lcoe":        fossilCost,
		"renewable_lcoe":     renewCost,
	} {
		if len(s) != n {
			return nil, fmt.Errorf("series %s has %d values, want %d", name, len(s), n)
		}
	}
	t := make(Table, n)
	for i, y := range years {
		t[i] = YearRecord{
			Year:                y,
			FossilCapacityGW:    fossilCap[i],
			RenewableCapacityGW: renewCap[i],
			FossilLCOE:          fossilCost[i],
			RenewableLCOE:       renewCost[i],
		}
	}
	return t, nil
}

// First returns the earliest record. The table must not be empty.
func (t Table) First() YearRecord { return t[0] }

// Last returns the latest record. The table must not be empty.
func (t Table) Last() YearRecord { return t[len(t)-1] }

// Years returns the year column.
func (t Table) Years() []int {
	years := make([]int, len(t))
	for i, r := range t {
		years[i] = r.Year
	}
	return years
}

// Validate checks the table invariants: at least two rows, years strictly
// increasing with step 1, and both floors respected.
func (t Table) Validate(fossilCapFloor, renewCostFloor float64) error {
	if len(t) < 2 {
		return fmt.Errorf("table needs at least two rows, got %d", len(t))
	}
	for i, r := range t {
		if i > 0 && r.Year != t[i-1].Year+1 {
			return fmt.Errorf("year %d follows %d, want consecutive years", r.Year, t[i-1].Year)
		}
		if r.FossilCapacityGW < fossilCapFloor {
			return fmt.Errorf("year %d: fossil capacity %.2f below floor %.2f", r.Year, r.FossilCapacityGW, fossilCapFloor)
		}
		if r.RenewableLCOE < renewCostFloor {
			return fmt.Errorf("year %d: renewable LCOE %.2f below floor %.2f", r.Year, r.RenewableLCOE, renewCostFloor)
		}
	}
	return nil
}
