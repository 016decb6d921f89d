package ndraytrace

import "math"

// Intersection is the nearest hit of one ray.
type Intersection struct {
	Point  Vector
	Sphere *Sphere
	Dist   Real // distance from the ray origin
}

// nearestHit intersects every sphere in scene order and keeps the closest
// hit; the first sphere wins on equal distance.
func nearestHit(scene *Scene, O, D Vector) (Intersection, bool) {
	best := Intersection{}
	okAny := false
	bestDist := math.Inf(1)
	for i := range scene.Spheres {
		s := &scene.Spheres[i]
		P, ok := intersectSphere(O, D, s)
		if !ok {
			continue
		}
		if dist := P.Dist(O); dist < bestDist {
			bestDist, okAny = dist, true
			best = Intersection{Point: P, Sphere: s, Dist: dist}
		}
	}
	return best, okAny
}

// Trace casts one ray from O along unit direction D and returns its color:
// the shaded nearest sphere or the background.
func Trace(scene *Scene, O, D, light Vector) RGBA {
	hit, ok := nearestHit(scene, O, D)
	if !ok {
		if Debug {
			logSample(Miss)
		}
		return Background
	}
	if Debug {
		logSample(Hit)
	}
	return Shade(hit.Point, hit.Sphere.Position, hit.Sphere.Color, light).Opaque()
}
