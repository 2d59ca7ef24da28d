package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/coder/websocket"
	mandel "github.com/marben/mandelpan"
)

// Commands the static page sends, one text message each.
const (
	cmdUp    = "up"
	cmdDown  = "down"
	cmdLeft  = "left"
	cmdRight = "right"
	cmdIn    = "in"
	cmdOut   = "out"
	cmdReset = "reset"
	cmdMore  = "more"
	cmdLess  = "less"
	cmdMap   = "map"
)

// session drives one browser's view of the set. Each session owns a
// private field, so concurrent browsers never share mutable state.
type session struct {
	conn    *websocket.Conn
	field   *mandel.Field
	img     *image.RGBA
	heatmap bool
}

func newSession(conn *websocket.Conn, res, iters int) *session {
	field := mandel.NewField(res)
	field.SetIterations(iters)
	return &session{
		conn:  conn,
		field: field,
		img:   image.NewRGBA(image.Rect(0, 0, res, res)),
	}
}

// serve sends the initial frame, then answers every command with a
// rerendered one until the connection or the request context ends.
func (s *session) serve(ctx context.Context) error {
	s.field.Recompute()
	if err := s.sendFrame(ctx); err != nil {
		return err
	}

	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		if typ != websocket.MessageText {
			continue
		}

		recompute, err := s.apply(string(data))
		if err != nil {
			return err
		}
		if recompute {
			s.field.Recompute()
		}
		if err := s.sendFrame(ctx); err != nil {
			return err
		}
	}
}

// apply mutates the field per cmd and reports whether the stored
// intensities are stale. Swapping the color map only recolors.
func (s *session) apply(cmd string) (recompute bool, err error) {
	switch cmd {
	case cmdUp:
		s.field.Pan(mandel.PanUp)
	case cmdDown:
		s.field.Pan(mandel.PanDown)
	case cmdLeft:
		s.field.Pan(mandel.PanLeft)
	case cmdRight:
		s.field.Pan(mandel.PanRight)
	case cmdIn:
		s.field.ZoomIn()
	case cmdOut:
		s.field.ZoomOut()
	case cmdReset:
		s.field.Reset()
		s.heatmap = false
	case cmdMore:
		s.field.MoreIterations()
	case cmdLess:
		s.field.FewerIterations()
	case cmdMap:
		s.heatmap = !s.heatmap
		if s.heatmap {
			s.field.SetColorMap(mandel.Heatmap{})
		} else {
			s.field.SetColorMap(mandel.Grayscale{})
		}
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}
	return true, nil
}

func (s *session) sendFrame(ctx context.Context) error {
	s.field.Render(s.img.Pix)

	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
