// brick-plot renders per-row diagnostics for a tiling: column count
// and brick area as functions of declination. Useful when eyeballing
// how a non-default brick size partitions the sphere.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/skybricks/internal/brick"
)

var (
	bricksize = flag.Float64("bricksize", brick.DefaultBricksize, "Brick size in degrees")
	outputDir = flag.String("output", "plots", "Directory to write plots into")
)

func main() {
	flag.Parse()

	tiling, err := brick.New(*bricksize)
	if err != nil {
		log.Fatalf("Failed to build tiling: %v", err)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// One point per row: dec center vs column count, dec center vs the
	// area of that row's bricks (constant within a row).
	colPts := make(plotter.XYs, 0, tiling.Rows())
	areaPts := make(plotter.XYs, 0, tiling.Rows())
	prevRow := int32(-1)
	for _, rec := range tiling.Table() {
		if rec.Row == prevRow {
			continue
		}
		prevRow = rec.Row
		colPts = append(colPts, plotter.XY{X: rec.Dec, Y: float64(tiling.ColCount(int(rec.Row)))})
		areaPts = append(areaPts, plotter.XY{X: rec.Dec, Y: rec.Area})
	}

	if err := savePlot("Columns per row", "Dec (deg)", "Columns",
		colPts, filepath.Join(*outputDir, "columns_per_row.png")); err != nil {
		log.Fatalf("Failed to plot column counts: %v", err)
	}
	if err := savePlot("Brick area per row", "Dec (deg)", "Area (sq deg)",
		areaPts, filepath.Join(*outputDir, "area_per_row.png")); err != nil {
		log.Fatalf("Failed to plot brick areas: %v", err)
	}

	log.Printf("Wrote plots for bricksize=%g to %s", *bricksize, *outputDir)
}

func savePlot(title, xLabel, yLabel string, pts plotter.XYs, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line)

	return p.Save(14*vg.Inch, 6*vg.Inch, path)
}
