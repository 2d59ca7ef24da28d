package mandel

import (
	"bytes"
	"image/color"
	"testing"
)

func TestRecomputeIsDeterministic(t *testing.T) {
	f := NewField(64)
	f.SetView(SeahorseValley)

	f.Recompute()
	first := bytes.Clone(f.cells)
	f.Recompute()

	if !bytes.Equal(first, f.cells) {
		t.Error("two recomputes with identical state produced different field contents")
	}
}

func TestRecomputeCoversWholeField(t *testing.T) {
	// 100 is not divisible by the tile size, so edge tiles are exercised.
	f := NewField(100)
	f.Recompute()

	// Every cell outside the escape circle gets intensity 1; an untouched
	// cell would still hold 0.
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := f.View().At(x, y, 100)
			if real(c)*real(c)+imag(c)*imag(c) > 4 && f.Intensity(x, y) == 0 {
				t.Fatalf("cell (%d, %d) outside the escape circle was left at 0", x, y)
			}
		}
	}
}

func TestDefaultFieldCenterAndCorner(t *testing.T) {
	f := NewField(400)
	f.Recompute()

	// Pixel (200, 200) maps to the origin, which never escapes.
	if got := f.Intensity(200, 200); got != 255 {
		t.Errorf("center intensity = %d, want 255", got)
	}

	// Pixel (0, 0) maps to -2-2i, well outside the escape circle.
	if got := f.Intensity(0, 0); got >= 16 {
		t.Errorf("corner intensity = %d, want a near-immediate escape", got)
	}
}

func TestNormalizationScalesWithBudget(t *testing.T) {
	f := NewField(4)
	f.MoreIterations() // budget 265
	f.Recompute()

	// The cell at (2, 2) maps to the origin and runs the full budget, so
	// its normalized intensity must still be 255.
	if got := f.Intensity(2, 2); got != 255 {
		t.Errorf("non-escaping cell intensity = %d, want 255", got)
	}
}

func TestRenderWritesOpaqueRGBA(t *testing.T) {
	f := NewField(4)
	f.Recompute()

	frame := make([]byte, 4*4*4)
	f.Render(frame)

	for i := 0; i < 16; i++ {
		v := f.cells[i]
		got := [4]byte{frame[4*i], frame[4*i+1], frame[4*i+2], frame[4*i+3]}
		if got != [4]byte{v, v, v, 255} {
			t.Fatalf("cell %d rendered as %v, want grayscale %v with opaque alpha", i, got, v)
		}
	}
}

func TestRenderAppliesColorMapWithoutRecompute(t *testing.T) {
	f := NewField(4)
	f.Recompute()
	before := bytes.Clone(f.cells)

	f.SetColorMap(Heatmap{})
	frame := make([]byte, 4*4*4)
	f.Render(frame)

	if !bytes.Equal(before, f.cells) {
		t.Error("swapping the color map changed stored intensities")
	}

	// The origin cell never escapes and must render black under Heatmap.
	i := 2*4 + 2
	if f.cells[i] != 255 {
		t.Fatalf("origin cell intensity = %d, want 255", f.cells[i])
	}
	got := color.RGBA{frame[4*i], frame[4*i+1], frame[4*i+2], frame[4*i+3]}
	if got != (color.RGBA{A: 255}) {
		t.Errorf("non-escaping cell rendered as %v under Heatmap, want opaque black", got)
	}
}

func TestRenderPanicsOnShortFrame(t *testing.T) {
	f := NewField(4)
	defer func() {
		if recover() == nil {
			t.Error("Render accepted a frame shorter than 4 bytes per cell")
		}
	}()
	f.Render(make([]byte, 4*4*4-1))
}

func TestIterationBudgetFloor(t *testing.T) {
	f := NewField(4)
	for i := 0; i < 100; i++ {
		f.FewerIterations()
	}
	// 255, 245, ... 25, 15; 15-10 = 5 would be at most the step, refused.
	if got := f.Iterations(); got != 15 {
		t.Errorf("budget after repeated decrements = %d, want 15", got)
	}

	f.MoreIterations()
	if got := f.Iterations(); got != 25 {
		t.Errorf("budget after increment = %d, want 25", got)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	f := NewField(8)
	f.SetView(TripleSpiral)
	f.SetColorMap(Heatmap{})
	f.MoreIterations()
	f.Pan(PanLeft | PanDown)
	f.ZoomIn()

	f.Reset()

	if f.View() != DefaultViewport() {
		t.Errorf("view after reset = %+v, want %+v", f.View(), DefaultViewport())
	}
	if f.Iterations() != DefaultIterations {
		t.Errorf("budget after reset = %d, want %d", f.Iterations(), DefaultIterations)
	}
	if _, ok := f.ColorMap().(Grayscale); !ok {
		t.Errorf("color map after reset = %T, want Grayscale", f.ColorMap())
	}
}
