package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer creates a server serving files in the ./static folder and
// a websocket endpoint that explorer sessions speak over
func webServer(port, res, iters int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(res, iters))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

// websocketHandler handles the http ws endpoint
// every accepted websocket gets its own field and explorer session
func websocketHandler(res, iters int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("session from %s", r.RemoteAddr)
		s := newSession(c, res, iters)
		if err := s.serve(r.Context()); err != nil {
			log.Printf("session from %s ended: %v", r.RemoteAddr, err)
		}
	}
}
