package gif

import "github.com/marethyu/mygif/codec"

// Player walks a decoded block list and produces displayable frames.
// Graphic control state accumulates as blocks are visited and applies
// to the images that follow it; comment and application blocks yield
// no frame. With Loop set (the default) the player restarts from the
// beginning of the block list when it runs out, matching the format's
// de-facto infinite replay.
type Player struct {
	// Loop controls wraparound at the end of the block list. Callers
	// that honor a finite loop count can clear it and drive replay
	// themselves.
	Loop bool

	gif       *GIF
	canvas    *Canvas
	pos       int
	ctrl      *GraphicControl
	hasImages bool
}

// NewPlayer creates a player over a decoded GIF with a fresh canvas.
func NewPlayer(g *GIF) *Player {
	return &Player{
		Loop:      true,
		gif:       g,
		canvas:    NewCanvas(g.Width, g.Height, g.backgroundColor()),
		hasImages: len(g.Images()) > 0,
	}
}

// backgroundColor resolves the screen descriptor's background index
// against the global table, falling back to opaque white when the
// container has no global table.
func (g *GIF) backgroundColor() Color {
	if g.GlobalColorTable != nil && int(g.BackgroundIndex) < len(g.GlobalColorTable) {
		return g.GlobalColorTable[g.BackgroundIndex]
	}
	return Color{R: 0xFF, G: 0xFF, B: 0xFF}
}

// Next composites and returns the next frame. It returns false when a
// non-looping player has exhausted the block list, or when the
// container holds no images at all.
func (p *Player) Next() (*codec.Frame, bool) {
	if !p.hasImages {
		return nil, false
	}

	for {
		if p.pos >= len(p.gif.Blocks) {
			if !p.Loop {
				return nil, false
			}
			p.pos = 0
		}

		block := p.gif.Blocks[p.pos]
		p.pos++

		switch b := block.(type) {
		case *GraphicControl:
			p.ctrl = b

		case *Image:
			p.canvas.Draw(b, p.ctrl)
			frame := &codec.Frame{
				Pixels:   p.canvas.Snapshot(),
				Width:    p.canvas.Width,
				Height:   p.canvas.Height,
				Duration: p.delay(),
			}
			p.canvas.Dispose(b, p.ctrl)
			return frame, true

		default:
			// Comment and application blocks are side-channel data;
			// they are exposed on the GIF itself.
		}
	}
}

// delay converts the current control state's delay from hundredths of
// a second to milliseconds.
func (p *Player) delay() int {
	if p.ctrl == nil {
		return 0
	}
	return p.ctrl.Delay * 10
}
