package ndraytrace

// Real is the scalar type used by all geometry and shading code.
type Real = float64

const (
	Dimension          = 3
	InnerRadius        = 0.95
	OrbitPeriodMs      = 2000
	OrbitRadius        = 2
	DeviationThreshold = 0.1 // refine a block when corner colors deviate at least this much
	DeviationEarlyExit = 250 // stop scanning corners once a deviation exceeds this
	BlockDivisor       = 250 // finest block = max(width, height) / BlockDivisor
	CameraFill         = -10
	LightFill          = -3
	Width              = 800
	Height             = 600
	HeadlessHz         = 60
	ExportFrames       = 40
	ExportFrameStepMs  = 50
	GIFOut             = "frames.gif"
	GIFDelay           = 5 // 100ths of a second per frame
	WindowTitle        = "ndraytrace"
	// hot-loop constants
	lenEps = 1e-300
)

var (
	CameraPos     = []Real{-10, -2, 0}
	LightBasePos  = []Real{-4, 0, 4}
	InnerColor    = RGB{40, 90, 255}
	OuterColor    = RGB{255, 90, 40}
	Background    = RGBA{220, 220, 220, 255}
	HitAlpha Real = 255
)
