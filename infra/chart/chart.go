package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/kilianp07/enersim/core/model"
)

var (
	fossilColor = color.RGBA{R: 205, G: 55, B: 40, A: 255}
	renewColor  = color.RGBA{R: 30, G: 120, B: 50, A: 255}
)

// Renderer draws the outlook figure: capacity on top, LCOE below, sharing
// the year axis. Rendering reads the table and never mutates it.
type Renderer struct {
	Path string
}

// Render writes the two-panel PNG to the configured path.
func (r Renderer) Render(tab model.Table) error {
	capacity, err := capacityPanel(tab)
	if err != nil {
		return fmt.Errorf("capacity panel: %w", err)
	}
	cost, err := costPanel(tab)
	if err != nil {
		return fmt.Errorf("cost panel: %w", err)
	}

	img := vgimg.New(10*vg.Inch, 12*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter * 4}
	panels := [][]*plot.Plot{{capacity}, {cost}}
	canvases := plot.Align(panels, tiles, dc)
	capacity.Draw(canvases[0][0])
	cost.Draw(canvases[1][0])

	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode chart: %w", err)
	}
	return f.Close()
}

func capacityPanel(tab model.Table) (*plot.Plot, error) {
	p := newPanel(tab, "Installed Generation Capacity", "Capacity (GW)")
	if err := addSeries(p, tab, "Fossil capacity (GW)", fossilColor, true,
		func(r model.YearRecord) float64 { return r.FossilCapacityGW }); err != nil {
		return nil, err
	}
	if err := addSeries(p, tab, "Renewable capacity (GW)", renewColor, false,
		func(r model.YearRecord) float64 { return r.RenewableCapacityGW }); err != nil {
		return nil, err
	}
	return p, nil
}

func costPanel(tab model.Table) (*plot.Plot, error) {
	p := newPanel(tab, "Levelized Cost of Energy", "LCOE (USD/MWh)")
	if err := addSeries(p, tab, "Fossil LCOE (USD/MWh)", fossilColor, true,
		func(r model.YearRecord) float64 { return r.FossilLCOE }); err != nil {
		return nil, err
	}
	if err := addSeries(p, tab, "Renewable LCOE (USD/MWh)", renewColor, false,
		func(r model.YearRecord) float64 { return r.RenewableLCOE }); err != nil {
		return nil, err
	}
	return p, nil
}

func newPanel(tab model.Table, title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%d-%d)", title, tab.First().Year, tab.Last().Year)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = yearTicks{}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

func addSeries(p *plot.Plot, tab model.Table, name string, col color.Color, dashed bool, value func(model.YearRecord) float64) error {
	pts := make(plotter.XYs, len(tab))
	for i, r := range tab {
		pts[i].X = float64(r.Year)
		pts[i].Y = value(r)
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = col
	line.Width = vg.Points(1.5)
	if dashed {
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	scatter.GlyphStyle.Color = col
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(line, scatter)
	p.Legend.Add(name, line, scatter)
	return nil
}

// yearTicks labels every second year, matching the original figure's axis.
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	first := int(math.Ceil(min))
	last := int(math.Floor(max))
	ticks := make([]plot.Tick, 0, last-first+1)
	for y := first; y <= last; y++ {
		tick := plot.Tick{Value: float64(y)}
		if (y-first)%2 == 0 {
			tick.Label = strconv.Itoa(y)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}
