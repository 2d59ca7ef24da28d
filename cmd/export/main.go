// export renders a single view of the Mandelbrot set and saves it as a
// PNG file. The view is either the default whole-set viewport or one of
// the named landmark regions.

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sort"
	"strings"

	mandel "github.com/marben/mandelpan"
)

func main() {
	out := flag.String("out", "mandel.png", "output file")
	res := flag.Int("res", 400, "image resolution in pixels")
	iters := flag.Int("iter", mandel.DefaultIterations, "iteration budget")
	region := flag.String("region", "", "landmark region to render, one of: "+landmarkNames())
	colorName := flag.String("color", "gray", "color map: gray or heat")
	flag.Parse()

	if err := run(*out, *res, *iters, *region, *colorName); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(out string, res, iters int, region, colorName string) error {
	field := mandel.NewField(res)
	field.SetIterations(iters)

	if region != "" {
		view, ok := mandel.Landmarks[region]
		if !ok {
			return fmt.Errorf("unknown region %q, expected one of: %s", region, landmarkNames())
		}
		field.SetView(view)
	}

	switch colorName {
	case "gray":
		field.SetColorMap(mandel.Grayscale{})
	case "heat":
		field.SetColorMap(mandel.Heatmap{})
	default:
		return fmt.Errorf("unknown color map %q, expected gray or heat", colorName)
	}

	log.Printf("rendering %dx%d field with %d iterations", res, res, field.Iterations())
	field.Recompute()

	img := image.NewRGBA(image.Rect(0, 0, res, res))
	field.Render(img.Pix)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("rendered image saved to %q", out)
	return nil
}

func landmarkNames() string {
	names := make([]string, 0, len(mandel.Landmarks))
	for name := range mandel.Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
