package mandel

// Fraction of the current axis range moved per pan or zoom step.
const stepFraction = 0.1

// PanDir is a bitmask of pan directions. Directions combine additively,
// so Up|Right moves the viewport diagonally in one step.
type PanDir uint8

const (
	PanUp PanDir = 1 << iota
	PanDown
	PanLeft
	PanRight
)

// Viewport is the rectangle of the complex plane mapped onto the pixel
// grid. Invariant: ReMin < ReMax and ImMin < ImMax.
type Viewport struct {
	ReMin, ReMax float64
	ImMin, ImMax float64
}

// DefaultViewport returns the whole-set view the renderer starts with.
func DefaultViewport() Viewport {
	return Viewport{ReMin: -2, ReMax: 2, ImMin: -2, ImMax: 2}
}

// At maps pixel (x, y) on a res×res grid to its complex coordinate.
// The mapping is left-inclusive and right-open: (0, 0) lands exactly on
// (ReMin, ImMin), while pixel res-1 stays one pixel step short of the
// maximum bound. Row 0 carries the minimum imaginary value.
func (v Viewport) At(x, y, res int) complex128 {
	re := v.ReMin + (v.ReMax-v.ReMin)/float64(res)*float64(x)
	im := v.ImMin + (v.ImMax-v.ImMin)/float64(res)*float64(y)
	return complex(re, im)
}

// Pan shifts the viewport by one step per set direction. With row 0 at
// the minimum imaginary value, Up lowers both imaginary bounds and Down
// raises them; opposite directions in one call cancel out.
func (v *Viewport) Pan(dirs PanDir) {
	reStep := stepFraction * (v.ReMax - v.ReMin)
	imStep := stepFraction * (v.ImMax - v.ImMin)

	if dirs&PanUp != 0 {
		v.ImMin -= imStep
		v.ImMax -= imStep
	}
	if dirs&PanDown != 0 {
		v.ImMin += imStep
		v.ImMax += imStep
	}
	if dirs&PanLeft != 0 {
		v.ReMin -= reStep
		v.ReMax -= reStep
	}
	if dirs&PanRight != 0 {
		v.ReMin += reStep
		v.ReMax += reStep
	}
}

// ZoomIn shrinks both axes symmetrically around their centers, pulling
// each bound inward by one step of the current range.
func (v *Viewport) ZoomIn() {
	v.scale(stepFraction)
}

// ZoomOut is the exact inverse of ZoomIn: it pushes each bound outward
// by an eighth of the zoomed range, which restores the tenth a ZoomIn
// removed, so equal in/out steps round-trip the bounds.
func (v *Viewport) ZoomOut() {
	v.scale(-stepFraction / (1 - 2*stepFraction))
}

func (v *Viewport) scale(frac float64) {
	reStep := frac * (v.ReMax - v.ReMin)
	imStep := frac * (v.ImMax - v.ImMin)
	v.ReMin += reStep
	v.ReMax -= reStep
	v.ImMin += imStep
	v.ImMax -= imStep
}

// Classic regions / landmarks in the Mandelbrot set, usable as starting
// viewports for the export tool or a viewer.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Viewport{
		ReMin: -0.8,
		ReMax: -0.7,
		ImMin: 0.05,
		ImMax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Viewport{
		ReMin: -1.85,
		ReMax: -1.75,
		ImMin: -0.10,
		ImMax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{
		ReMin: -0.7435,
		ReMax: -0.7420,
		ImMin: 0.1310,
		ImMax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Viewport{
		ReMin: -0.7480,
		ReMax: -0.7450,
		ImMin: 0.0950,
		ImMax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{
		ReMin: -0.7400,
		ReMax: -0.7350,
		ImMin: 0.1800,
		ImMax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewport{
		ReMin: -1.7390,
		ReMax: -1.7375,
		ImMin: -0.0235,
		ImMax: -0.0220,
	}
)

// Landmarks maps region names to the predefined viewports above.
var Landmarks = map[string]Viewport{
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"mini-spiral":     MinibrotInMiniSpiral,
}
