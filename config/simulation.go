package config

import "fmt"

const (
	defaultFossilCostSigma    = 3.0
	defaultRenewableCostSigma = 5.0
)

// SimulationConfig configures the synthetic series generator. The curve
// shapes themselves are fixed; only the horizon, the noise and the floors
// are adjustable.
type SimulationConfig struct {
	// StartYear and EndYear bound the simulated horizon, inclusive.
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
	// Seed initialises the noise source. Zero seeds from the current time,
	// making each run unique; any other value is fully reproducible.
	Seed int64 `json:"seed"`
	// FossilCostSigma and RenewableCostSigma are the standard deviations of
	// the Gaussian noise added to the cost series. Nil applies the defaults
	// 3 and 5; an explicit zero disables noise for that series.
	FossilCostSigma    *float64 `json:"fossil_cost_sigma"`
	RenewableCostSigma *float64 `json:"renewable_cost_sigma"`
	// FossilCapacityFloorGW and RenewableCostFloor clamp the respective
	// series from below.
	FossilCapacityFloorGW float64 `json:"fossil_capacity_floor_gw"`
	RenewableCostFloor    float64 `json:"renewable_cost_floor"`
}

// SetDefaults applies fallback values for optional fields.
func (c *SimulationConfig) SetDefaults() {
	if c.StartYear == 0 {
		c.StartYear = 2010
	}
	if c.EndYear == 0 {
		c.EndYear = 2030
	}
	if c.FossilCostSigma == nil {
		v := defaultFossilCostSigma
		c.FossilCostSigma = &v
	}
	if c.RenewableCostSigma == nil {
		v := defaultRenewableCostSigma
		c.RenewableCostSigma = &v
	}
	if c.FossilCapacityFloorGW == 0 {
		c.FossilCapacityFloorGW = 150
	}
	if c.RenewableCostFloor == 0 {
		c.RenewableCostFloor = 30
	}
}

// DisableNoise zeroes both sigmas. Intended for deterministic runs and
// tests.
func (c *SimulationConfig) DisableNoise() {
	fz, rz := 0.0, 0.0
	c.FossilCostSigma = &fz
	c.RenewableCostSigma = &rz
}

// FossilSigma returns the fossil cost noise sigma, defaulting when unset.
func (c SimulationConfig) FossilSigma() float64 {
	if c.FossilCostSigma == nil {
		return defaultFossilCostSigma
	}
	return *c.FossilCostSigma
}

// RenewableSigma returns the renewable cost noise sigma, defaulting when
// unset.
func (c SimulationConfig) RenewableSigma() float64 {
	if c.RenewableCostSigma == nil {
		return defaultRenewableCostSigma
	}
	return *c.RenewableCostSigma
}

// Validate checks the configuration ranges.
func (c SimulationConfig) Validate() error {
	if c.StartYear >= c.EndYear {
		return fmt.Errorf("start_year %d must be before end_year %d", c.StartYear, c.EndYear)
	}
	if c.FossilSigma() < 0 || c.RenewableSigma() < 0 {
		return fmt.Errorf("noise sigmas must be >= 0")
	}
	if c.FossilCapacityFloorGW < 0 {
		return fmt.Errorf("fossil_capacity_floor_gw must be >= 0")
	}
	if c.RenewableCostFloor < 0 {
		return fmt.Errorf("renewable_cost_floor must be >= 0")
	}
	return nil
}

// Years returns the inclusive year sequence of the horizon.
func (c SimulationConfig) Years() []int {
	years := make([]int, 0, c.EndYear-c.StartYear+1)
	for y := c.StartYear; y <= c.EndYear; y++ {
		years = append(years, y)
	}
	return years
}
