// Package brick computes a deterministic tiling of the celestial sphere
// into roughly square cells ("bricks") and maps sky coordinates to the
// identity, geometry, and area of the containing brick.
//
// Responsibilities: grid construction (declination rows, per-row right
// ascension columns), coordinate lookup, brick naming/ID/quadrant
// encoding, spherical areas, and the flattened brick table.
// Key types: Tiling, Record.
//
// The tiling has these properties:
//
//   - bricks form rows in dec like a brick wall; edges are constant RA or dec
//   - bricks are rectangular with longest edge no longer than the brick size
//   - the two polar rows are single circular caps with diameter equal to
//     the brick size
//   - every non-polar row holds an even number of bricks
//
// A Tiling is immutable once built, so any number of goroutines may
// query it concurrently. In most pipelines brick identity should be
// propagated from input catalogs rather than recomputed here.
package brick
