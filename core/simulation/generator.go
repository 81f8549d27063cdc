package simulation

import (
	"math"
	"math/rand"
	"time"

	"github.com/kilianp07/enersim/config"
	"github.com/kilianp07/enersim/core/logger"
	"github.com/kilianp07/enersim/core/model"
)

// Curve coefficients of the scenario. The shapes are fixed; only the
// horizon, noise and floors come from configuration.
const (
	fossilCapBase  = 200.0
	fossilCapLin   = 5.0
	fossilCapQuad  = 0.5
	renewCapBase   = 50.0
	renewCapScale  = 2.0
	renewCapExp    = 2.2
	fossilCostBase = 80.0
	fossilCostAmp  = 10.0
	fossilCostFreq = 3.0
	renewCostBase  = 150.0
	renewCostSlope = 6.0
)

// Generator produces the synthetic capacity and cost series. Noise is drawn
// from the injected *rand.Rand so runs are reproducible under a fixed seed.
type Generator struct {
	cfg  config.SimulationConfig
	rand *rand.Rand
	log  logger.Logger
}

// New creates a Generator seeded from the configuration. A zero seed falls
// back to the current time.
func New(cfg config.SimulationConfig, log logger.Logger) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)), log)
}

// NewWithRand creates a Generator with an explicit noise source. Tests use
// this to supply a fixed source.
func NewWithRand(cfg config.SimulationConfig, r *rand.Rand, log logger.Logger) *Generator {
	return &Generator{cfg: cfg, rand: r, log: log}
}

// Run generates all four series over the configured horizon and assembles
// them into a table.
func (g *Generator) Run() (model.Table, error) {
	years := g.cfg.Years()
	n := len(years)
	fossilCap := make([]float64, n)
	renewCap := make([]float64, n)
	fossilCost := make([]float64, n)
	renewCost := make([]float64, n)
	for i, y := range years {
		t := float64(y - g.cfg.StartYear)
		fossilCap[i] = g.fossilCapacity(t)
		renewCap[i] = g.renewableCapacity(t)
		fossilCost[i] = g.fossilCost(t)
		renewCost[i] = g.renewableCost(t)
	}
	g.log.Infof("generated %d rows for %d-%d", n, g.cfg.StartYear, g.cfg.EndYear)
	return model.Assemble(years, fossilCap, renewCap, fossilCost, renewCost)
}

// fossilCapacity grows linearly, rolls over quadratically and is clamped to
// the configured floor.
func (g *Generator) fossilCapacity(t float64) float64 {
	v := fossilCapBase + fossilCapLin*t - fossilCapQuad*t*t
	return math.Max(g.cfg.FossilCapacityFloorGW, v)
}

// renewableCapacity grows super-quadratically and is strictly increasing.
func (g *Generator) renewableCapacity(t float64) float64 {
	return renewCapBase + renewCapScale*math.Pow(t, renewCapExp)
}

// fossilCost oscillates around its base with Gaussian noise.
func (g *Generator) fossilCost(t float64) float64 {
	return fossilCostBase + fossilCostAmp*math.Sin(t/fossilCostFreq) + g.noise(g.cfg.FossilSigma())
}

// renewableCost declines linearly with Gaussian noise, clamped to the floor.
func (g *Generator) renewableCost(t float64) float64 {
	v := renewCostBase - renewCostSlope*t + g.noise(g.cfg.RenewableSigma())
	return math.Max(g.cfg.RenewableCostFloor, v)
}

func (g *Generator) noise(sigma float64) float64 {
	if sigma == 0 {
		return 0
	}
	return g.rand.NormFloat64() * sigma
}
