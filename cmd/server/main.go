// server serves an interactive Mandelbrot explorer to web browsers.
// The static page forwards key presses over a websocket; the server
// applies them to a per-connection field and answers every command
// with a freshly rendered PNG frame.

package main

import (
	"flag"
	"fmt"
	"log"

	mandel "github.com/marben/mandelpan"
)

func main() {
	port := flag.Int("port", 8080, "http listen port")
	res := flag.Int("res", 400, "field resolution in pixels")
	iters := flag.Int("iter", mandel.DefaultIterations, "initial iteration budget")
	flag.Parse()

	if err := run(*port, *res, *iters); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(port, res, iters int) error {
	if res <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", res)
	}

	srv := webServer(port, res, iters)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
