package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `simulation:
  start_year: 2015
  end_year: 2025
  seed: 42
  fossil_cost_sigma: 2
  renewable_cost_sigma: 4
output:
  chart_path: "out.png"
  preview_rows: 3
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"start_year", cfg.Simulation.StartYear, 2015},
		{"end_year", cfg.Simulation.EndYear, 2025},
		{"seed", cfg.Simulation.Seed, int64(42)},
		{"fossil_sigma", cfg.Simulation.FossilSigma(), 2.0},
		{"renewable_sigma", cfg.Simulation.RenewableSigma(), 4.0},
		{"chart_path", cfg.Output.ChartPath, "out.png"},
		{"preview_rows", cfg.Output.PreviewRows, 3},
		{"log_level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v want %v", c.name, c.got, c.want)
		}
	}
	if !cfg.Output.RenderChart() {
		t.Errorf("chart rendering should default to enabled")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Simulation.StartYear != 2010 || cfg.Simulation.EndYear != 2030 {
		t.Fatalf("unexpected default horizon %d-%d", cfg.Simulation.StartYear, cfg.Simulation.EndYear)
	}
	if cfg.Simulation.FossilCapacityFloorGW != 150 || cfg.Simulation.RenewableCostFloor != 30 {
		t.Fatalf("unexpected default floors")
	}
	if cfg.Simulation.FossilSigma() != 3 || cfg.Simulation.RenewableSigma() != 5 {
		t.Fatalf("unexpected default sigmas")
	}
	if cfg.Output.ChartPath != "energy_outlook.png" || cfg.Output.PreviewRows != 5 {
		t.Fatalf("unexpected output defaults")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected default log level %s", cfg.Logging.Level)
	}
}

func TestLoadExplicitZeroSigma(t *testing.T) {
	path := writeConfig(t, `simulation:
  seed: 1
  fossil_cost_sigma: 0
  renewable_cost_sigma: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	// An explicit zero disables noise; it must not be mistaken for unset.
	if got := cfg.Simulation.FossilSigma(); got != 0 {
		t.Errorf("fossil sigma: got %v want 0", got)
	}
	if got := cfg.Simulation.RenewableSigma(); got != 0 {
		t.Errorf("renewable sigma: got %v want 0", got)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadBadLogLevel(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: verbose\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestSimulationValidate(t *testing.T) {
	c := SimulationConfig{StartYear: 2030, EndYear: 2010}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for inverted horizon")
	}
	neg := -1.0
	c = SimulationConfig{StartYear: 2010, EndYear: 2030, FossilCostSigma: &neg}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative sigma")
	}
}

func TestDisableNoise(t *testing.T) {
	var c SimulationConfig
	c.DisableNoise()
	c.SetDefaults()
	if c.FossilSigma() != 0 || c.RenewableSigma() != 0 {
		t.Fatalf("noise should stay disabled, got %v/%v", c.FossilSigma(), c.RenewableSigma())
	}
}

func TestYears(t *testing.T) {
	c := SimulationConfig{StartYear: 2010, EndYear: 2012}
	years := c.Years()
	want := []int{2010, 2011, 2012}
	if len(years) != len(want) {
		t.Fatalf("got %d years want %d", len(years), len(want))
	}
	for i := range want {
		if years[i] != want[i] {
			t.Errorf("year[%d] = %d want %d", i, years[i], want[i])
		}
	}
}
