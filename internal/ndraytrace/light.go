package ndraytrace

import (
	"math"
	"time"
)

// Rotation maps elapsed time to a point on the unit circle, one full turn
// per period.
func Rotation(t, period time.Duration) (c, s Real) {
	if period <= 0 {
		return 1, 0
	}
	offset := Real(t%period) / Real(period)
	if offset < 0 {
		offset++
	}
	return math.Cos(2 * math.Pi * offset), math.Sin(2 * math.Pi * offset)
}

// LightPosition orbits base on the plane of the first two axes.
func LightPosition(base Vector, t, period time.Duration, radius Real) Vector {
	c, s := Rotation(t, period)
	return base.Add(PadVec([]Real{c * radius, s * radius}, 0, len(base)))
}
