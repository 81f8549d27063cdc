package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/enersim/core/model"
)

// WriteJSON writes the simulated table to w in JSON format.
func WriteJSON(w io.Writer, tab model.Table) error {
	enc := json.NewEncoder(w)
	return enc.Encode(tab)
}

// WriteCSV writes the simulated table to w with a stable header row.
func WriteCSV(w io.Writer, tab model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "fossil_capacity_gw", "renewable_capacity_gw", "fossil_lcoe_usd_mwh", "renewable_lcoe_usd_mwh"}); err != nil {
		return err
	}
	for _, r := range tab {
		rec := []string{
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.FossilCapacityGW, 'f', -1, 64),
			strconv.FormatFloat(r.RenewableCapacityGW, 'f', -1, 64),
			strconv.FormatFloat(r.FossilLCOE, 'f', -1, 64),
			strconv.FormatFloat(r.RenewableLCOE, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
