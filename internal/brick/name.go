package brick

import (
	"fmt"
	"math"
)

// encodeName derives the fixed 8-character brick name from the brick
// center. Format is RRRRsDDD: the first four digits of the RA center
// times 10000 zero-padded to seven digits, a sign character ('p' for
// dec >= 0, 'm' otherwise), and the first three digits of the absolute
// dec center times 10000 zero-padded to six digits.
//
// Formatting with %.0f before truncating is what makes values like
// 39.599999999999994 come out as "0396" rather than "0395"; the digit
// selection must stay exactly as-is to remain compatible with catalogs
// keyed on these names.
func encodeName(raCenter, decCenter float64) string {
	sign := "p"
	if decCenter < 0 {
		sign = "m"
	}
	ra := fmt.Sprintf("%07.0f", raCenter*10000)
	dec := fmt.Sprintf("%06.0f", math.Abs(decCenter)*10000)
	return ra[0:4] + sign + dec[0:3]
}
