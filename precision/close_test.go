package precision

import (
	"math"
	"testing"
)

func TestIsClose(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	cases := []struct {
		name     string
		a, b     float64
		relative float64
		absolute float64
		want     bool
	}{
		{"equal", 1.0, 1.0, 1e-3, 0.0, true},
		{"tiny relative difference", 1.0, 1.0 + 1e-7, 1e-3, 0.0, true},
		{"far apart", 1.0, 2.0, 1e-3, 0.0, false},
		{"exact zero", 0.0, 0.0, 1e-3, 0.0, true},
		{"signed zeros", 0.0, math.Copysign(0, -1), 1e-3, 0.0, true},
		{"zero tolerance exact", 42.0, 42.0, 0.0, 0.0, true},
		{"absolute floor", 0.0, 1e-9, 0.0, 1e-8, true},
		{"absolute floor exceeded", 0.0, 1e-7, 0.0, 1e-8, false},
		{"relative scales with magnitude", 1000.0, 1000.9, 1e-3, 0.0, true},
		{"relative scales with magnitude, out", 1000.0, 1002.1, 1e-3, 0.0, false},
		{"negative values", -1.0, -1.0005, 1e-3, 0.0, true},
		{"infinity never close", inf, inf, 1e-3, 0.0, false},
		{"negative infinity never close", math.Inf(-1), math.Inf(-1), 1e-3, 0.0, false},
		{"mixed infinities", inf, math.Inf(-1), 1e-3, 0.0, false},
		{"infinity vs finite", inf, 1.0, 1e-3, 0.0, false},
		{"nan never close", nan, nan, 1e-3, 0.0, false},
		{"nan vs finite", nan, 1.0, 1e-3, 0.0, false},
	}
	for _, c := range cases {
		if got := IsClose(c.a, c.b, c.relative, c.absolute); got != c.want {
			t.Errorf("%s: IsClose(%g, %g, %g, %g) = %v, want %v",
				c.name, c.a, c.b, c.relative, c.absolute, got, c.want)
		}
	}
}

// TestIsCloseSymmetric: the predicate must not depend on operand order.
func TestIsCloseSymmetric(t *testing.T) {
	pairs := [][2]float64{
		{1.0, 1.0009}, {1.0, 1.5}, {-3.0, -3.002}, {0.0, 1e-9},
	}
	for _, p := range pairs {
		ab := IsClose(p[0], p[1], 1e-3, 1e-8)
		ba := IsClose(p[1], p[0], 1e-3, 1e-8)
		if ab != ba {
			t.Errorf("IsClose(%g, %g) = %v but IsClose(%g, %g) = %v",
				p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}
