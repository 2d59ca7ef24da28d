// viewer opens an interactive window on the Mandelbrot set.
// Arrow keys pan (combinable for diagonal moves), X zooms in, Z zooms
// out, R resets the view, + / - adjust the iteration budget, C cycles
// the color map and Escape quits.

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	mandel "github.com/marben/mandelpan"
)

var colorMaps = []mandel.ColorMap{mandel.Grayscale{}, mandel.Heatmap{}}

type game struct {
	field    *mandel.Field
	frame    []byte
	mapIndex int
}

func newGame(res, iters int) *game {
	field := mandel.NewField(res)
	field.SetIterations(iters)
	field.Recompute()

	g := &game{
		field: field,
		frame: make([]byte, 4*res*res),
	}
	field.Render(g.frame)
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var dirs mandel.PanDir
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dirs |= mandel.PanUp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dirs |= mandel.PanDown
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dirs |= mandel.PanLeft
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dirs |= mandel.PanRight
	}

	changed := false

	if dirs != 0 {
		g.field.Pan(dirs)
		changed = true
	}

	// Zooming in and out are mutually exclusive within one update.
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.field.ZoomIn()
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.field.ZoomOut()
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.field.MoreIterations()
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.field.FewerIterations()
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Reset()
		g.mapIndex = 0
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		// Recoloring reuses the stored intensities; no recompute needed.
		g.mapIndex = (g.mapIndex + 1) % len(colorMaps)
		g.field.SetColorMap(colorMaps[g.mapIndex])
		g.field.Render(g.frame)
		return nil
	}

	if changed {
		g.field.Recompute()
		g.field.Render(g.frame)
		v := g.field.View()
		log.Printf("view: re [%g, %g] im [%g, %g], %d iterations",
			v.ReMin, v.ReMax, v.ImMin, v.ImMax, g.field.Iterations())
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.frame)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.field.Resolution(), g.field.Resolution()
}

func main() {
	res := flag.Int("res", 400, "field resolution in pixels")
	iters := flag.Int("iter", mandel.DefaultIterations, "iteration budget")
	flag.Parse()

	if err := run(*res, *iters); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(res, iters int) error {
	if res <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", res)
	}

	ebiten.SetWindowSize(res, res)
	ebiten.SetWindowTitle("Mandelbrot")

	log.Printf("rendering %dx%d field with %d iterations", res, res, iters)
	if err := ebiten.RunGame(newGame(res, iters)); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}
