package geom_test

import (
	"testing"

	"cssb/geom"
)

func TestRectangle_Area(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          float64
	}{
		{"unit", 1, 1, 1},
		{"plain", 4, 5, 20},
		{"fractional", 2.5, 4, 10},
		{"zero width", 0, 7, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := geom.NewRectangle(tc.width, tc.height)
			if r.Width != tc.width || r.Height != tc.height {
				t.Errorf("dimensions not preserved: %+v", r)
			}
			if got := r.Area(); got != tc.want {
				t.Errorf("Area() = %v, want %v", got, tc.want)
			}
		})
	}
}
