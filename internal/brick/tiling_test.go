package brick

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/skybricks/internal/units"
)

func TestNew_RejectsBadBricksize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bricksize float64
	}{
		{"zero", 0},
		{"negative", -0.25},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"too large for polar rows", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.bricksize)
			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "bricksize", cfgErr.Param)
		})
	}
}

func TestNew_RowStructure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bricksize float64
		rows      int
	}{
		{"survey default", 0.25, 721},
		{"one degree", 1.0, 181},
		{"half degree", 0.5, 361},
		{"coarse", 4.0, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tl, err := New(tt.bricksize)
			require.NoError(t, err)

			assert.Equal(t, tt.rows, tl.Rows())
			assert.Equal(t, tt.bricksize, tl.Bricksize())

			// Centers span -90..+90 inclusive at bricksize steps.
			assert.InDelta(t, -90.0, tl.decCenters[0], 1e-12)
			assert.InDelta(t, 90.0, tl.decCenters[tl.Rows()-1], 1e-9)

			// Outermost edges are pinned exactly, not approximately.
			assert.Equal(t, -90.0, tl.decEdges[0])
			assert.Equal(t, 90.0, tl.decEdges[tl.Rows()])

			// Polar rows are single caps; everything else is even.
			assert.Equal(t, 1, tl.ColCount(0))
			assert.Equal(t, 1, tl.ColCount(tl.Rows()-1))
			for row := 1; row < tl.Rows()-1; row++ {
				require.Positivef(t, tl.ColCount(row), "row %d", row)
				require.Zerof(t, tl.ColCount(row)%2, "row %d col count %d not even", row, tl.ColCount(row))
			}
		})
	}
}

func TestNew_RowColumnWidths(t *testing.T) {
	t.Parallel()

	tl, err := New(1.0)
	require.NoError(t, err)

	// The equatorial row divides the full circle into exactly 360 cells
	// for a one-degree brick.
	equator := tl.Rows() / 2
	assert.InDelta(t, 0.0, tl.decCenters[equator], 1e-12)
	assert.Equal(t, 360, tl.ColCount(equator))

	for row := 1; row < tl.Rows()-1; row++ {
		ncol := tl.ColCount(row)
		// Uniform partition of [0, 360].
		require.Len(t, tl.raEdges[row], ncol+1)
		require.Len(t, tl.raCenters[row], ncol)
		assert.Equal(t, 0.0, tl.raEdges[row][0])
		assert.Equal(t, 360.0, tl.raEdges[row][ncol])

		// Arc length of a column at the polar-side row edge never
		// exceeds the brick size.
		declo := math.Abs(tl.decCenters[row]) - tl.bricksize/2
		arc := 360.0 / float64(ncol) * math.Cos(units.Radians(declo))
		assert.LessOrEqualf(t, arc, tl.bricksize+1e-9, "row %d", row)
	}

	// Polar rows span the whole circle with a single cell.
	assert.Equal(t, []float64{0, 360}, tl.raEdges[0])
	assert.Equal(t, []float64{180}, tl.raCenters[0])
	assert.Equal(t, []float64{0, 360}, tl.raEdges[tl.Rows()-1])
	assert.Equal(t, []float64{180}, tl.raCenters[tl.Rows()-1])
}

func TestNew_AreasTileTheSphere(t *testing.T) {
	t.Parallel()

	for _, bricksize := range []float64{0.5, 1.0, 2.0} {
		tl, err := New(bricksize)
		require.NoError(t, err)

		var total float64
		for row := range tl.areas {
			require.Len(t, tl.areas[row], tl.ColCount(row))
			for _, a := range tl.areas[row] {
				require.Positive(t, a)
			}
			total += floats.Sum(tl.areas[row])
		}
		// No gaps, no overlaps: the areas sum to the whole sky.
		assert.InDeltaf(t, units.WholeSkyDeg2, total, 1e-5, "bricksize %g", bricksize)
	}
}

func TestNew_PolarCapArea(t *testing.T) {
	t.Parallel()

	tl, err := New(0.25)
	require.NoError(t, err)

	// Each polar cap is a circle of angular radius bricksize/2.
	capArea := 2 * math.Pi * (1 - math.Cos(units.Radians(0.125))) *
		units.DegPerRad * units.DegPerRad
	assert.InDelta(t, capArea, tl.areas[0][0], 1e-9)
	assert.InDelta(t, capArea, tl.areas[tl.Rows()-1][0], 1e-9)
}

func TestNew_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := New(2.0)
	require.NoError(t, err)
	b, err := New(2.0)
	require.NoError(t, err)

	assert.Equal(t, a.decCenters, b.decCenters)
	assert.Equal(t, a.decEdges, b.decEdges)
	assert.Equal(t, a.colCounts, b.colCounts)
	assert.Equal(t, a.raCenters, b.raCenters)
	assert.Equal(t, a.raEdges, b.raEdges)
	assert.Equal(t, a.names, b.names)
	assert.Equal(t, a.areas, b.areas)
}

func TestNew_NamesUniqueWithinGrid(t *testing.T) {
	t.Parallel()

	tl, err := New(1.0)
	require.NoError(t, err)

	seen := make(map[string]struct{}, tl.TotalBricks())
	for row := range tl.names {
		for _, name := range tl.names[row] {
			require.Len(t, name, 8)
			_, dup := seen[name]
			require.Falsef(t, dup, "duplicate brick name %q", name)
			seen[name] = struct{}{}
		}
	}
	assert.Len(t, seen, tl.TotalBricks())
}

func TestTilingString(t *testing.T) {
	t.Parallel()

	tl, err := New(0.25)
	require.NoError(t, err)
	assert.Equal(t, "Tiling(bricksize=0.25)", tl.String())
}

func TestConfigurationErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := New(-1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bricksize")
	assert.Contains(t, err.Error(), "-1")

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}
