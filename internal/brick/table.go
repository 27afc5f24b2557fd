package brick

// Record is one row of the flattened brick table: the canonical
// shareable representation of a tiling, with the column layout used by
// external catalog tooling.
type Record struct {
	Name string // BRICKNAME, 8 characters
	ID   int32  // BRICKID, 1-based row-major serial
	Q    int16  // BRICKQ stitching quadrant
	Row  int32  // BRICKROW, declination row index
	Col  int32  // BRICKCOL, RA column index within the row
	RA   float64
	Dec  float64
	RA1  float64 // lower RA edge, degrees
	RA2  float64 // upper RA edge, degrees
	Dec1 float64 // lower dec edge, degrees
	Dec2 float64 // upper dec edge, degrees
	Area float64 // square degrees
}

// Table returns the whole tiling flattened row-major, one Record per
// brick. The table is built on first call and the same slice is
// returned thereafter; callers must not modify it.
func (t *Tiling) Table() []Record {
	t.tableOnce.Do(func() {
		t.table = make([]Record, 0, t.TotalBricks())
		id := int32(0)
		for row := range t.decCenters {
			for col := 0; col < t.colCounts[row]; col++ {
				id++
				t.table = append(t.table, Record{
					Name: t.names[row][col],
					ID:   id,
					Q:    int16(quadrant(row, col)),
					Row:  int32(row),
					Col:  int32(col),
					RA:   t.raCenters[row][col],
					Dec:  t.decCenters[row],
					RA1:  t.raEdges[row][col],
					RA2:  t.raEdges[row][col+1],
					Dec1: t.decEdges[row],
					Dec2: t.decEdges[row+1],
					Area: t.areas[row][col],
				})
			}
		}
	})
	return t.table
}
