package ndraytrace

import "math"

// intersectSphere returns the near intersection of a ray with a sphere
// using the closest-point-on-ray method. D must be unit length.
// Spheres whose center is not in front of O (tc <= 0) are never hit, even
// when O lies inside them.
func intersectSphere(O, D Vector, s *Sphere) (Vector, bool) {
	toSphere := s.Position.Sub(O)

	// distance along the ray to the point closest to the center
	tc := D.Dot(toSphere)
	if tc <= 0 {
		return nil, false
	}

	l := toSphere.Len()
	d2 := l*l - tc*tc
	if d2 < 0 {
		d2 = 0 // rounding on the center line
	}
	d := math.Sqrt(d2)
	if d >= s.Radius {
		return nil, false
	}

	t1c := math.Sqrt(s.Radius*s.Radius - d2)
	return O.Add(D.Mul(tc - t1c)), true
}
