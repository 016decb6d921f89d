package ndraytrace

import "math"

// Brightness maps the cosine between the surface normal and the light
// direction to a Lambert factor with an ambient floor of 0.2.
func Brightness(angle Real) Real {
	return math.Max(angle*0.7+0.1, 0) + 0.2
}

// Shade lights a hit point on a sphere by a point light. There are no
// shadows and the result is not clamped.
func Shade(hit, center Vector, color RGB, light Vector) RGB {
	normal := hit.Sub(center).Norm()
	toLight := light.Sub(hit).Norm()
	return color.Mul(Brightness(toLight.Dot(normal)))
}
