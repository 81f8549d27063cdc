package simulation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/enersim/config"
	"github.com/kilianp07/enersim/infra/logger"
)

func defaultCfg() config.SimulationConfig {
	var cfg config.SimulationConfig
	cfg.SetDefaults()
	cfg.Seed = 7
	return cfg
}

func TestRunInvariants(t *testing.T) {
	cfg := defaultCfg()
	tab, err := New(cfg, logger.NopLogger{}).Run()
	require.NoError(t, err)
	require.Len(t, tab, 21)

	for i, r := range tab {
		assert.Equal(t, 2010+i, r.Year)
		assert.GreaterOrEqual(t, r.FossilCapacityGW, 150.0)
		assert.GreaterOrEqual(t, r.RenewableLCOE, 30.0)
	}
	require.NoError(t, tab.Validate(cfg.FossilCapacityFloorGW, cfg.RenewableCostFloor))
}

func TestRenewableCapacityStrictlyIncreasing(t *testing.T) {
	tab, err := New(defaultCfg(), logger.NopLogger{}).Run()
	require.NoError(t, err)
	for i := 1; i < len(tab); i++ {
		assert.Greater(t, tab[i].RenewableCapacityGW, tab[i-1].RenewableCapacityGW,
			"year %d", tab[i].Year)
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	cfg := defaultCfg()
	a, err := New(cfg, logger.NopLogger{}).Run()
	require.NoError(t, err)
	b, err := New(cfg, logger.NopLogger{}).Run()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunNoiseFreeValues(t *testing.T) {
	var cfg config.SimulationConfig
	cfg.DisableNoise()
	cfg.SetDefaults()
	cfg.StartYear = 2010
	cfg.EndYear = 2012

	tab, err := NewWithRand(cfg, rand.New(rand.NewSource(1)), logger.NopLogger{}).Run()
	require.NoError(t, err)
	require.Len(t, tab, 3)

	wantFossilCap := []float64{200, 204.5, 208}
	wantRenewCap := []float64{50, 52, 50 + 2*math.Pow(2, 2.2)}
	for i := range tab {
		assert.InDelta(t, wantFossilCap[i], tab[i].FossilCapacityGW, 1e-9)
		assert.InDelta(t, wantRenewCap[i], tab[i].RenewableCapacityGW, 1e-9)
		assert.InDelta(t, 80+10*math.Sin(float64(i)/3), tab[i].FossilLCOE, 1e-9)
		assert.InDelta(t, 150-6*float64(i), tab[i].RenewableLCOE, 1e-9)
	}
}

func TestExplicitZeroSigmaDisablesNoise(t *testing.T) {
	fz, rz := 0.0, 0.0
	cfg := config.SimulationConfig{FossilCostSigma: &fz, RenewableCostSigma: &rz}
	cfg.SetDefaults()
	require.Zero(t, cfg.FossilSigma())
	require.Zero(t, cfg.RenewableSigma())

	// With noise off the output is independent of the seed.
	cfg.Seed = 1
	a, err := New(cfg, logger.NopLogger{}).Run()
	require.NoError(t, err)
	cfg.Seed = 2
	b, err := New(cfg, logger.NopLogger{}).Run()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFossilCapacityClampedLateYears(t *testing.T) {
	var cfg config.SimulationConfig
	cfg.DisableNoise()
	cfg.SetDefaults()
	tab, err := New(cfg, logger.NopLogger{}).Run()
	require.NoError(t, err)
	// The quadratic drops below the floor in the late years (t=20 gives 100).
	assert.InDelta(t, 150.0, tab.Last().FossilCapacityGW, 1e-9)
	assert.InDelta(t, 150.0, tab[17].FossilCapacityGW, 1e-9) // 2027, raw 140.5
}
