package brick

import "testing"

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name      string
		raCenter  float64
		decCenter float64
		expected  string
	}{
		{"origin brick", 0.125, 0.125, "0001p001"},
		{"equator exact zero dec", 0.125, 0.0, "0001p000"},
		{"negative dec uses m", 0.125, -0.125, "0001m001"},
		{"anticenter", 180.125, 0.0, "1801p000"},
		{"high ra", 359.875, 45.0, "3598p450"},
		{"south pole cap", 180.0, -90.0, "1800m900"},
		{"north pole cap", 180.0, 90.0, "1800p900"},
		// Rounding before truncation rescues centers that sit just
		// below a decimal boundary in binary floating point.
		{"float drift in dec", 100.0, 39.599999999999994, "1000p396"},
		{"float drift in ra", 39.599999999999994, 10.0, "0396p100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeName(tt.raCenter, tt.decCenter); got != tt.expected {
				t.Errorf("encodeName(%v, %v) = %q, want %q", tt.raCenter, tt.decCenter, got, tt.expected)
			}
		})
	}
}

func TestEncodeNameLength(t *testing.T) {
	for _, dec := range []float64{-90, -45.125, 0, 0.125, 45.125, 90} {
		for _, ra := range []float64{0.125, 10, 100, 359.875} {
			if got := encodeName(ra, dec); len(got) != 8 {
				t.Errorf("encodeName(%v, %v) = %q, want 8 characters", ra, dec, got)
			}
		}
	}
}
