package brick

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/skybricks/internal/units"
)

// DefaultBricksize is the survey-standard brick size in degrees.
const DefaultBricksize = 0.25

// Tiling is the full brick grid for one brick size. All per-row and
// per-brick tables are computed once in New and never mutated, so a
// Tiling is safe for concurrent readers.
type Tiling struct {
	bricksize float64

	decCenters []float64 // per row, degrees
	decEdges   []float64 // per row boundary, len rows+1, clamped to +/-90
	colCounts  []int     // per row; even everywhere except the polar rows (1)
	idOffsets  []int     // per row, total bricks in all earlier rows

	raCenters [][]float64 // per row, per column, degrees
	raEdges   [][]float64 // per row, len colCounts[row]+1, degrees

	names [][]string  // per row, per column, 8-char brick names
	areas [][]float64 // per row, per column, square degrees

	tableOnce sync.Once
	table     []Record
}

// New builds the complete tiling for the given brick size in degrees.
// Brick sizes that cannot produce at least the two polar rows are
// rejected with a ConfigurationError.
func New(bricksize float64) (*Tiling, error) {
	if bricksize <= 0 || math.IsNaN(bricksize) || math.IsInf(bricksize, 0) {
		return nil, &ConfigurationError{
			Param:  "bricksize",
			Value:  bricksize,
			Reason: "must be a positive finite number of degrees",
		}
	}

	// Row centers run from -90 to +90 inclusive at bricksize steps; the
	// half-step pad keeps +90 inside the range despite float drift.
	rows := int(math.Ceil((180.0 + bricksize/2) / bricksize))
	if rows < 2 {
		return nil, &ConfigurationError{
			Param:  "bricksize",
			Value:  bricksize,
			Reason: "too large to form both polar rows",
		}
	}

	t := &Tiling{bricksize: bricksize}

	t.decCenters = make([]float64, rows)
	for i := range t.decCenters {
		t.decCenters[i] = -90.0 + float64(i)*bricksize
	}

	// Edges are offset half a step from centers, then pinned exactly to
	// the poles so the outermost rows close at +/-90.
	t.decEdges = make([]float64, rows+1)
	for i := range t.decEdges {
		t.decEdges[i] = -90.0 - bricksize/2 + float64(i)*bricksize
	}
	t.decEdges[0] = -90.0
	t.decEdges[rows] = 90.0

	// Column counts: wide enough that a column spans at most bricksize
	// degrees of arc at the row edge nearest the pole, rounded up to an
	// even count. The polar rows collapse to a single circular cap.
	t.colCounts = make([]int, rows)
	for i := range t.colCounts {
		declo := math.Abs(t.decCenters[i]) - bricksize/2
		n := 360.0 / bricksize * math.Cos(units.Radians(declo))
		t.colCounts[i] = int(math.Ceil(n/2)) * 2
	}
	t.colCounts[0] = 1
	t.colCounts[rows-1] = 1

	t.idOffsets = make([]int, rows)
	for i := 1; i < rows; i++ {
		t.idOffsets[i] = t.idOffsets[i-1] + t.colCounts[i-1]
	}

	t.raEdges = make([][]float64, rows)
	t.raCenters = make([][]float64, rows)
	for i, ncol := range t.colCounts {
		edges := floats.Span(make([]float64, ncol+1), 0, 360)
		edges[ncol] = 360.0 // close the circle exactly despite step rounding
		centers := make([]float64, ncol)
		for j := range centers {
			centers[j] = 0.5 * (edges[j] + edges[j+1])
		}
		t.raEdges[i] = edges
		t.raCenters[i] = centers
	}
	// Polar caps span the full circle regardless of the span above.
	t.raEdges[0] = []float64{0, 360}
	t.raEdges[rows-1] = []float64{0, 360}
	t.raCenters[0] = []float64{180}
	t.raCenters[rows-1] = []float64{180}

	t.names = make([][]string, rows)
	t.areas = make([][]float64, rows)
	for i := range t.names {
		names := make([]string, t.colCounts[i])
		for j := range names {
			names[j] = encodeName(t.raCenters[i][j], t.decCenters[i])
		}
		t.names[i] = names

		// Exact spherical area between the row's dec edges: the sine
		// difference mapped back to degrees, times the RA width.
		decfac := units.Degrees(math.Sin(units.Radians(t.decEdges[i+1])) -
			math.Sin(units.Radians(t.decEdges[i])))
		areas := make([]float64, t.colCounts[i])
		for j := range areas {
			areas[j] = (t.raEdges[i][j+1] - t.raEdges[i][j]) * decfac
		}
		t.areas[i] = areas
	}

	return t, nil
}

// Bricksize returns the brick size in degrees.
func (t *Tiling) Bricksize() float64 { return t.bricksize }

// Rows returns the number of declination rows.
func (t *Tiling) Rows() int { return len(t.decCenters) }

// ColCount returns the number of RA columns in the given row.
func (t *Tiling) ColCount(row int) int { return t.colCounts[row] }

// TotalBricks returns the number of bricks in the whole tiling.
func (t *Tiling) TotalBricks() int {
	last := len(t.colCounts) - 1
	return t.idOffsets[last] + t.colCounts[last]
}

func (t *Tiling) String() string {
	return fmt.Sprintf("Tiling(bricksize=%4.2f)", t.bricksize)
}
