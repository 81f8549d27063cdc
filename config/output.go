package config

import "fmt"

// OutputConfig defines where the figure lands and how the text report is
// shaped.
type OutputConfig struct {
	// ChartPath is the PNG file the figure is written to. An empty string
	// after defaulting is not allowed; use ChartEnabled to skip rendering.
	ChartPath string `json:"chart_path"`
	// ChartEnabled toggles figure rendering. Defaults to true.
	ChartEnabled *bool `json:"chart_enabled"`
	// PreviewRows is how many leading and trailing table rows the report
	// prints.
	PreviewRows int `json:"preview_rows"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.ChartPath == "" {
		c.ChartPath = "energy_outlook.png"
	}
	if c.ChartEnabled == nil {
		enabled := true
		c.ChartEnabled = &enabled
	}
	if c.PreviewRows == 0 {
		c.PreviewRows = 5
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	if c.ChartPath == "" {
		return fmt.Errorf("chart_path is required")
	}
	if c.PreviewRows < 1 {
		return fmt.Errorf("preview_rows must be >= 1")
	}
	return nil
}

// RenderChart reports whether the figure should be produced.
func (c OutputConfig) RenderChart() bool {
	return c.ChartEnabled == nil || *c.ChartEnabled
}
