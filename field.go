package mandel

import (
	"image"
	"math"
	"runtime"
	"sync"
)

const (
	// DefaultIterations is the iteration budget a fresh or reset Field uses.
	DefaultIterations = 255

	// IterationStep is the amount MoreIterations / FewerIterations move
	// the budget by. The budget never drops to the step or below.
	IterationStep = 10

	tileSize = 64
)

// Field renders the Mandelbrot set over its viewport into a res×res
// grid of 8-bit iteration intensities. Every state change requires a
// full Recompute; there is no partial update. A Field is not safe for
// concurrent use: the caller serializes mutate→Recompute→Render cycles.
type Field struct {
	res   int
	view  Viewport
	iters int
	cmap  ColorMap
	cells []uint8 // row-major, row 0 = minimum imaginary value
}

// NewField creates a field of the given square resolution showing the
// default viewport with the default budget and grayscale coloring. The
// cells are zero until the first Recompute.
func NewField(res int) *Field {
	if res <= 0 {
		panic("field resolution must be positive")
	}
	return &Field{
		res:   res,
		view:  DefaultViewport(),
		iters: DefaultIterations,
		cmap:  Grayscale{},
		cells: make([]uint8, res*res),
	}
}

func (f *Field) Resolution() int { return f.res }

func (f *Field) Iterations() int { return f.iters }

func (f *Field) View() Viewport { return f.view }

// Intensity returns the stored cell value for pixel (x, y).
func (f *Field) Intensity(x, y int) uint8 {
	return f.cells[y*f.res+x]
}

// Pan moves the viewport one step in each set direction.
func (f *Field) Pan(dirs PanDir) {
	f.view.Pan(dirs)
}

// ZoomIn narrows the viewport by one step around its center.
func (f *Field) ZoomIn() {
	f.view.ZoomIn()
}

// ZoomOut widens the viewport by one step around its center.
func (f *Field) ZoomOut() {
	f.view.ZoomOut()
}

// SetView jumps the viewport to v, e.g. one of the landmark regions.
func (f *Field) SetView(v Viewport) {
	f.view = v
}

// SetColorMap swaps the mapping used by Render. Stored intensities are
// unaffected, so no Recompute is needed to see the new colors.
func (f *Field) SetColorMap(m ColorMap) {
	f.cmap = m
}

// ColorMap returns the mapping currently used by Render.
func (f *Field) ColorMap() ColorMap { return f.cmap }

// Reset restores the default viewport, budget and grayscale coloring.
func (f *Field) Reset() {
	f.view = DefaultViewport()
	f.iters = DefaultIterations
	f.cmap = Grayscale{}
}

// SetIterations replaces the budget outright, e.g. from a command line
// flag. Values at or below the step are ignored, keeping the same floor
// the stepping operations guarantee.
func (f *Field) SetIterations(n int) {
	if n <= IterationStep {
		return
	}
	f.iters = n
}

// MoreIterations raises the budget by one step.
func (f *Field) MoreIterations() {
	f.iters += IterationStep
}

// FewerIterations lowers the budget by one step. The call is a no-op if
// it would leave the budget at or below the step size.
func (f *Field) FewerIterations() {
	if f.iters-IterationStep <= IterationStep {
		return
	}
	f.iters -= IterationStep
}

// Recompute re-evaluates every cell from the current viewport and
// budget, overwriting the whole grid. Pixels are independent, so the
// grid is split into tiles handed to one worker per CPU; each worker
// writes only its own tiles' cells. The call returns once every cell is
// written, and repeated calls with unchanged state produce identical
// contents.
func (f *Field) Recompute() {
	tiles := make(chan image.Rectangle)
	var wg sync.WaitGroup

	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tiles {
				f.computeTile(tile)
			}
		}()
	}

	for _, tile := range splitRect(image.Rect(0, 0, f.res, f.res), tileSize, tileSize) {
		tiles <- tile
	}
	close(tiles)
	wg.Wait()
}

func (f *Field) computeTile(tile image.Rectangle) {
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			n := Escape(f.view.At(x, y, f.res), f.iters)
			intensity := math.Round(float64(n) / float64(f.iters) * 255)
			f.cells[y*f.res+x] = uint8(intensity)
		}
	}
}

// Render writes the field into frame as row-major RGBA pixels, 4 bytes
// per cell with a fully opaque alpha, using the current color map. The
// frame must hold at least 4·res² bytes; a shorter frame is a caller
// bug and panics.
func (f *Field) Render(frame []byte) {
	if len(frame) < 4*f.res*f.res {
		panic("render frame smaller than 4 bytes per field cell")
	}
	for i, intensity := range f.cells {
		c := f.cmap.Map(intensity)
		frame[4*i] = c.R
		frame[4*i+1] = c.G
		frame[4*i+2] = c.B
		frame[4*i+3] = c.A
	}
}

// splitRect splits r into tiles of size tileW × tileH. Tiles at the
// right and bottom edges are smaller if r is not divisible.
func splitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}
