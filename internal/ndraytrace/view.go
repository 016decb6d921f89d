package ndraytrace

// View samples a scene through a pinhole looking down the first axis.
// The surface is centered in a square of side max(width, height).
type View struct {
	Scene  *Scene
	Camera Vector
	Light  Vector

	maxDim     Real
	offX, offY Real
}

func NewView(scene *Scene, camera, light Vector, width, height int) *View {
	maxDim := Real(imax(width, height))
	return &View{
		Scene:  scene,
		Camera: camera,
		Light:  light,
		maxDim: maxDim,
		offX:   (maxDim - Real(width)) / 2,
		offY:   (maxDim - Real(height)) / 2,
	}
}

// Dir returns the unit ray direction through pixel (x,y).
func (v *View) Dir(x, y int) Vector {
	relX := (Real(x) + v.offX) / v.maxDim
	relY := 1 - (Real(y)+v.offY)/v.maxDim
	return PadVec([]Real{1, relX - 0.5, relY - 0.5}, 1, v.Scene.Dimension).Norm()
}

func (v *View) Sample(x, y int) RGBA {
	return Trace(v.Scene, v.Camera, v.Dir(x, y), v.Light)
}
