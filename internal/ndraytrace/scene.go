package ndraytrace

import (
	"fmt"
	"math"
)

// Sphere is an N-dimensional ball with a flat color.
type Sphere struct {
	Position Vector
	Radius   Real
	Color    RGB
}

// Scene is an ordered list of spheres; order breaks distance ties.
type Scene struct {
	Dimension int
	Spheres   []Sphere
}

// NewScene returns an empty scene of the given dimension.
func NewScene(dim int) *Scene {
	if dim < 1 {
		panic(fmt.Sprintf("scene dimension must be positive, got %d", dim))
	}
	return &Scene{Dimension: dim}
}

func (s *Scene) AddSphere(sp Sphere) {
	if len(sp.Position) != s.Dimension {
		panic(fmt.Sprintf("sphere dimension %d does not match scene dimension %d", len(sp.Position), s.Dimension))
	}
	s.Spheres = append(s.Spheres, sp)
}

// BuildScene stacks unit-spaced spheres on every corner of the
// [-1,1]^dim hypercube plus one sphere filling the gap at the origin.
func BuildScene(dim int) *Scene {
	return BuildSceneRadius(dim, InnerRadius)
}

// BuildSceneRadius is BuildScene with a custom corner sphere radius.
func BuildSceneRadius(dim int, radius Real) *Scene {
	s := NewScene(dim)
	count := 1 << dim
	for i := 0; i < count; i++ {
		s.AddSphere(Sphere{Position: hypercubeCorner(i, dim), Radius: radius, Color: InnerColor})
	}
	s.AddSphere(Sphere{
		Position: PadVec(nil, 0, dim),
		Radius:   math.Sqrt(Real(dim)) - radius,
		Color:    OuterColor,
	})
	DebugLog("Built scene: dim=%d, spheres=%d, corner radius=%.3f", dim, len(s.Spheres), radius)
	return s
}

// hypercubeCorner maps the dim-bit binary form of i (most significant bit
// first) to a corner, bit 0 -> -1 and bit 1 -> +1.
func hypercubeCorner(i, dim int) Vector {
	v := make(Vector, dim)
	for a := 0; a < dim; a++ {
		bit := (i >> (dim - 1 - a)) & 1
		v[a] = Real(bit*2 - 1)
	}
	return v
}
