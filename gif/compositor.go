package gif

// Canvas is the logical screen a GIF animation composites onto. It is
// mutated in place across the life of one playback session and is
// owned exclusively by the playback driver.
type Canvas struct {
	Width  int
	Height int

	pix        []byte // RGBA, 4 bytes per pixel
	prev       []byte // snapshot taken before the most recent draw
	background Color
}

// NewCanvas creates a canvas filled with the background color at full
// opacity.
func NewCanvas(width, height int, background Color) *Canvas {
	c := &Canvas{
		Width:      width,
		Height:     height,
		pix:        make([]byte, width*height*4),
		prev:       make([]byte, width*height*4),
		background: background,
	}
	for i := 0; i < len(c.pix); i += 4 {
		c.setRGBA(i, background)
	}
	copy(c.prev, c.pix)
	return c
}

func (c *Canvas) setRGBA(offset int, col Color) {
	c.pix[offset] = col.R
	c.pix[offset+1] = col.G
	c.pix[offset+2] = col.B
	c.pix[offset+3] = 0xFF
}

// Snapshot returns a copy of the current pixel buffer.
func (c *Canvas) Snapshot() []byte {
	out := make([]byte, len(c.pix))
	copy(out, c.pix)
	return out
}

// interlacedRows returns, for each row of the decoded index stream in
// order, the display row it belongs to. GIF interlacing emits four
// passes: every 8th row from 0, every 8th from 4, every 4th from 2,
// then every 2nd from 1.
func interlacedRows(height int) []int {
	rows := make([]int, 0, height)
	passes := [4][2]int{{0, 8}, {4, 8}, {2, 4}, {1, 2}}
	for _, p := range passes {
		for y := p[0]; y < height; y += p[1] {
			rows = append(rows, y)
		}
	}
	return rows
}

// Draw composites one image onto the canvas, applying interlace
// reordering and transparency. The pre-draw state is snapshotted
// first so DisposalPrevious can restore it afterwards. ctrl may be
// nil (no graphic control seen yet): disposal unspecified,
// transparency off.
func (c *Canvas) Draw(img *Image, ctrl *GraphicControl) {
	copy(c.prev, c.pix)

	var rows []int
	if img.Interlace {
		rows = interlacedRows(img.Height)
	}

	transparent := ctrl != nil && ctrl.Transparent

	for sy := 0; sy < img.Height; sy++ {
		dy := sy
		if rows != nil {
			dy = rows[sy]
		}
		cy := img.Top + dy
		if cy < 0 || cy >= c.Height {
			continue
		}
		for x := 0; x < img.Width; x++ {
			idx := img.Indexes[sy*img.Width+x]
			if transparent && idx == ctrl.TransparentIndex {
				continue // composite-over: keep whatever is beneath
			}
			cx := img.Left + x
			if cx < 0 || cx >= c.Width {
				continue
			}
			c.setRGBA((cy*c.Width+cx)*4, img.ColorTable[idx])
		}
	}
}

// Dispose applies the frame's disposal method after it has been
// presented, preparing the canvas for the next image.
func (c *Canvas) Dispose(img *Image, ctrl *GraphicControl) {
	disposal := byte(DisposalUnspecified)
	if ctrl != nil {
		disposal = ctrl.Disposal
	}

	switch disposal {
	case DisposalBackground:
		// Clear exactly the image's rectangle to the background.
		for y := img.Top; y < img.Top+img.Height; y++ {
			if y < 0 || y >= c.Height {
				continue
			}
			for x := img.Left; x < img.Left+img.Width; x++ {
				if x < 0 || x >= c.Width {
					continue
				}
				c.setRGBA((y*c.Width+x)*4, c.background)
			}
		}

	case DisposalPrevious:
		copy(c.pix, c.prev)
	}
}
