package mandel

import (
	"image/color"
	"math"
)

// ColorMap turns a normalized 8-bit iteration intensity into a display
// color. Implementations must be pure: swapping the map recolors the
// field without touching the stored intensities.
type ColorMap interface {
	Map(intensity uint8) color.RGBA
}

// Grayscale renders the intensity directly as a gray level.
type Grayscale struct{}

func (Grayscale) Map(intensity uint8) color.RGBA {
	return color.RGBA{R: intensity, G: intensity, B: intensity, A: 255}
}

// Heatmap walks the hue wheel with the intensity. Points that never
// escape (intensity 255) render black, so the set interior stays dark
// against the colored filaments.
type Heatmap struct{}

func (Heatmap) Map(intensity uint8) color.RGBA {
	if intensity == 255 {
		return color.RGBA{A: 255}
	}
	hue := float64(intensity) / 255
	return hsv(hue, 1, 1)
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
