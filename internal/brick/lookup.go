package brick

import (
	"fmt"

	"github.com/banshee-data/skybricks/internal/units"
)

// Vertices holds the four corners of a brick in (RA, Dec) degrees,
// ordered counter-clockwise starting from (RA min, Dec min).
type Vertices [4][2]float64

// Locate returns the row and column of the brick covering (ra, dec).
// RA is normalised modulo 360; dec outside [-90, 90] returns an
// OutOfRangeError. Rows are spaced uniformly in dec and columns
// uniformly in RA within a row, so this is closed-form with no search.
func (t *Tiling) Locate(ra, dec float64) (row, col int, err error) {
	if !units.ValidDec(dec) {
		return 0, 0, &OutOfRangeError{
			Coord: "dec", Value: dec, Min: units.MinDec, Max: units.MaxDec,
		}
	}
	ra = units.NormalizeRA(ra)

	row = int((dec + 90.0 + t.bricksize/2) / t.bricksize)
	if row >= len(t.colCounts) {
		// dec exactly +90 can land on the row boundary for brick sizes
		// that leave 180/bricksize half-integral.
		row = len(t.colCounts) - 1
	}
	col = int(ra / 360.0 * float64(t.colCounts[row]))
	return row, col, nil
}

// quadrant classifies a brick within its 2x2 stitching meta-tile.
// Row 0 (the south polar cap) is forced to 1; the north polar row is
// intentionally left to the general formula, matching the catalog data
// this encoding must stay compatible with.
func quadrant(row, col int) int {
	if row == 0 {
		return 1
	}
	return (col % 2) + (row%2)*2
}

// Name returns the 8-character name of the brick covering (ra, dec).
func (t *Tiling) Name(ra, dec float64) (string, error) {
	row, col, err := t.Locate(ra, dec)
	if err != nil {
		return "", err
	}
	return t.names[row][col], nil
}

// ID returns the 1-based row-major serial index of the brick covering
// (ra, dec).
func (t *Tiling) ID(ra, dec float64) (int, error) {
	row, col, err := t.Locate(ra, dec)
	if err != nil {
		return 0, err
	}
	return t.idOffsets[row] + col + 1, nil
}

// Quadrant returns the BRICKQ stitching quadrant of the brick covering
// (ra, dec).
func (t *Tiling) Quadrant(ra, dec float64) (int, error) {
	row, col, err := t.Locate(ra, dec)
	if err != nil {
		return 0, err
	}
	return quadrant(row, col), nil
}

// Area returns the spherical area in square degrees of the brick
// covering (ra, dec).
func (t *Tiling) Area(ra, dec float64) (float64, error) {
	row, col, err := t.Locate(ra, dec)
	if err != nil {
		return 0, err
	}
	return t.areas[row][col], nil
}

// BrickVertices returns the four corners of the brick covering (ra, dec).
func (t *Tiling) BrickVertices(ra, dec float64) (Vertices, error) {
	row, col, err := t.Locate(ra, dec)
	if err != nil {
		return Vertices{}, err
	}
	return t.vertices(row, col), nil
}

func (t *Tiling) vertices(row, col int) Vertices {
	ra1, ra2 := t.raEdges[row][col], t.raEdges[row][col+1]
	dec1, dec2 := t.decEdges[row], t.decEdges[row+1]
	return Vertices{
		{ra1, dec1},
		{ra2, dec1},
		{ra2, dec2},
		{ra1, dec2},
	}
}

// Center returns the (RA, Dec) center in degrees of the brick covering
// (ra, dec); this is the brick center, not the input coordinate.
func (t *Tiling) Center(ra, dec float64) (raCenter, decCenter float64, err error) {
	row, col, err := t.Locate(ra, dec)
	if err != nil {
		return 0, 0, err
	}
	return t.raCenters[row][col], t.decCenters[row], nil
}

func checkLengths(ra, dec []float64) error {
	if len(ra) != len(dec) {
		return fmt.Errorf("coordinate length mismatch: %d ra vs %d dec", len(ra), len(dec))
	}
	return nil
}

// Names is the batch form of Name. Results are in input order; the
// first invalid coordinate aborts the batch.
func (t *Tiling) Names(ra, dec []float64) ([]string, error) {
	if err := checkLengths(ra, dec); err != nil {
		return nil, err
	}
	out := make([]string, len(ra))
	for i := range ra {
		name, err := t.Name(ra[i], dec[i])
		if err != nil {
			return nil, err
		}
		out[i] = name
	}
	return out, nil
}

// IDs is the batch form of ID.
func (t *Tiling) IDs(ra, dec []float64) ([]int, error) {
	if err := checkLengths(ra, dec); err != nil {
		return nil, err
	}
	out := make([]int, len(ra))
	for i := range ra {
		id, err := t.ID(ra[i], dec[i])
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// Quadrants is the batch form of Quadrant.
func (t *Tiling) Quadrants(ra, dec []float64) ([]int, error) {
	if err := checkLengths(ra, dec); err != nil {
		return nil, err
	}
	out := make([]int, len(ra))
	for i := range ra {
		q, err := t.Quadrant(ra[i], dec[i])
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

// Areas is the batch form of Area.
func (t *Tiling) Areas(ra, dec []float64) ([]float64, error) {
	if err := checkLengths(ra, dec); err != nil {
		return nil, err
	}
	out := make([]float64, len(ra))
	for i := range ra {
		a, err := t.Area(ra[i], dec[i])
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// BrickVerticesBatch is the batch form of BrickVertices.
func (t *Tiling) BrickVerticesBatch(ra, dec []float64) ([]Vertices, error) {
	if err := checkLengths(ra, dec); err != nil {
		return nil, err
	}
	out := make([]Vertices, len(ra))
	for i := range ra {
		v, err := t.BrickVertices(ra[i], dec[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Centers is the batch form of Center, returning parallel RA and Dec
// center slices.
func (t *Tiling) Centers(ra, dec []float64) (raCenters, decCenters []float64, err error) {
	if err := checkLengths(ra, dec); err != nil {
		return nil, nil, err
	}
	raCenters = make([]float64, len(ra))
	decCenters = make([]float64, len(ra))
	for i := range ra {
		rc, dc, err := t.Center(ra[i], dec[i])
		if err != nil {
			return nil, nil, err
		}
		raCenters[i] = rc
		decCenters[i] = dc
	}
	return raCenters, decCenters, nil
}
