package ndraytrace

import (
	"fmt"
	"math"
)

// Vector is a point or direction in N-dimensional space.
// Operations never modify their receiver; they return a new vector.
type Vector []Real

func sameDim(a, b Vector) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vector dimension mismatch: %d != %d", len(a), len(b)))
	}
}

// Vector functions
func (a Vector) Add(b Vector) Vector {
	sameDim(a, b)
	r := make(Vector, len(a))
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a Vector) Sub(b Vector) Vector {
	sameDim(a, b)
	r := make(Vector, len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r
}

// MulVec multiplies component-wise.
func (a Vector) MulVec(b Vector) Vector {
	sameDim(a, b)
	r := make(Vector, len(a))
	for i := range a {
		r[i] = a[i] * b[i]
	}
	return r
}

func (v Vector) Mul(s Real) Vector {
	r := make(Vector, len(v))
	for i := range v {
		r[i] = v[i] * s
	}
	return r
}

// Dot returns the dot product of two vectors of equal dimension.
func (a Vector) Dot(b Vector) Real {
	sameDim(a, b)
	var d Real
	for i := range a {
		d += a[i] * b[i]
	}
	return d
}

// Len returns the Euclidean length. The sum of squares is padded by a
// negligible epsilon so the result is never exactly zero.
func (v Vector) Len() Real { return math.Sqrt(v.Dot(v) + lenEps) }

// Norm returns a unit-length version of the vector (zero stays zero).
func (v Vector) Norm() Vector { return v.Mul(1 / v.Len()) }

// Dist is the Euclidean distance between two points.
func (a Vector) Dist(b Vector) Real { return a.Sub(b).Len() }

// PadVec builds a dim-dimensional vector from the given leading components,
// filling the remaining axes with fill. Extra components are dropped.
func PadVec(vals []Real, fill Real, dim int) Vector {
	r := make(Vector, dim)
	for i := range r {
		if i < len(vals) {
			r[i] = vals[i]
		} else {
			r[i] = fill
		}
	}
	return r
}
