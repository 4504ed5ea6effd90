package diphoton

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotGrid draws one tile per grid slot, pt bins along the rows and mass
// bins along the columns, and saves the result to fname. The image format
// follows the file extension.
func PlotGrid(fname string, grid Grid, hists []*hbook.H1D) error {
	if len(hists) != grid.Len() {
		return fmt.Errorf("got %d histograms for a grid of %d slots", len(hists), grid.Len())
	}

	tp := hplot.NewTiledPlot(draw.Tiles{
		Rows: grid.Pt.Len(),
		Cols: grid.Mass.Len(),
		PadX: 2 * vg.Millimeter,
		PadY: 2 * vg.Millimeter,
	})

	for slot, hist := range hists {
		i, j := grid.Cell(slot)
		p := tp.Plot(i, j)
		p.Title.Text = grid.Label(slot)
		p.X.Label.Text = "pT(y1) / pT(y2)"
		p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = color.RGBA{B: 255, A: 255}
		h.Infos.Style = hplot.HInfoSummary
		p.Add(h)
	}

	const side = 4 * vg.Inch
	return tp.Save(vg.Length(grid.Mass.Len())*side, vg.Length(grid.Pt.Len())*side*3/4, fname)
}
