package gif

import (
	"bytes"
	"testing"
)

func grayTable(n int) ColorTable {
	ct := make(ColorTable, n)
	for i := range ct {
		ct[i] = Color{R: byte(i * 10), G: byte(i * 10), B: byte(i * 10)}
	}
	return ct
}

// canvasIndex reads back which palette entry a canvas pixel holds,
// assuming the grayTable palette.
func canvasIndex(c *Canvas, x, y int) int {
	return int(c.pix[(y*c.Width+x)*4]) / 10
}

func TestInterlacedRows(t *testing.T) {
	got := interlacedRows(8)
	want := []int{0, 4, 2, 6, 1, 3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("emitted row order = %v, want %v", got, want)
		}
	}
}

func TestDrawInterlaced(t *testing.T) {
	// A 1x8 interlaced image whose stream rows carry indices 0..7 in
	// stream order. After reordering, display row y must hold the
	// index of the stream row that pass order assigns to it.
	img := &Image{
		Width:      1,
		Height:     8,
		Interlace:  true,
		ColorTable: grayTable(8),
		Indexes:    []byte{0, 1, 2, 3, 4, 5, 6, 7},
	}
	c := NewCanvas(1, 8, Color{})
	c.Draw(img, nil)

	want := []int{0, 4, 2, 5, 1, 6, 3, 7}
	for y, wantIdx := range want {
		if got := canvasIndex(c, 0, y); got != wantIdx {
			t.Errorf("display row %d holds stream row %d, want %d", y, got, wantIdx)
		}
	}
}

func TestDrawTransparency(t *testing.T) {
	base := &Image{
		Width: 2, Height: 2,
		ColorTable: grayTable(4),
		Indexes:    []byte{3, 3, 3, 3},
	}
	overlay := &Image{
		Width: 2, Height: 2,
		ColorTable: grayTable(4),
		Indexes:    []byte{1, 2, 1, 2},
	}

	c := NewCanvas(2, 2, Color{})
	c.Draw(base, nil)
	c.Draw(overlay, &GraphicControl{Transparent: true, TransparentIndex: 2})

	// Index-2 pixels were skipped: the base shows through.
	wants := [][2]int{{1, 3}, {1, 3}}
	for y, row := range wants {
		for x, want := range row {
			if got := canvasIndex(c, x, y); got != want {
				t.Errorf("pixel (%d,%d) = index %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDisposeBackground(t *testing.T) {
	// 4x4 canvas, 2x2 image at (1,1). Disposal 2 must clear exactly
	// the image's rectangle back to the background color.
	background := Color{R: 200, G: 0, B: 0}
	img := &Image{
		Left: 1, Top: 1, Width: 2, Height: 2,
		ColorTable: grayTable(4),
		Indexes:    []byte{3, 3, 3, 3},
	}
	ctrl := &GraphicControl{Disposal: DisposalBackground}

	c := NewCanvas(4, 4, background)
	c.Draw(img, ctrl)
	c.Dispose(img, ctrl)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			off := (y*4 + x) * 4
			got := Color{R: c.pix[off], G: c.pix[off+1], B: c.pix[off+2]}
			if got != background {
				t.Errorf("pixel (%d,%d) = %+v, want background", x, y, got)
			}
		}
	}
}

func TestDisposeBackgroundKeepsOutside(t *testing.T) {
	background := Color{R: 200, G: 0, B: 0}
	full := &Image{
		Width: 4, Height: 4,
		ColorTable: grayTable(4),
		Indexes:    bytes.Repeat([]byte{3}, 16),
	}
	inner := &Image{
		Left: 1, Top: 1, Width: 2, Height: 2,
		ColorTable: grayTable(4),
		Indexes:    []byte{1, 1, 1, 1},
	}
	ctrl := &GraphicControl{Disposal: DisposalBackground}

	c := NewCanvas(4, 4, background)
	c.Draw(full, nil)
	c.Draw(inner, ctrl)
	c.Dispose(inner, ctrl)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			off := (y*4 + x) * 4
			got := Color{R: c.pix[off], G: c.pix[off+1], B: c.pix[off+2]}
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			if inside && got != background {
				t.Errorf("pixel (%d,%d) = %+v, want background", x, y, got)
			}
			if !inside && got != (Color{30, 30, 30}) {
				t.Errorf("pixel (%d,%d) = %+v, want untouched index 3", x, y, got)
			}
		}
	}
}

func TestDisposePrevious(t *testing.T) {
	first := &Image{
		Width: 2, Height: 2,
		ColorTable: grayTable(4),
		Indexes:    []byte{1, 1, 1, 1},
	}
	second := &Image{
		Width: 2, Height: 2,
		ColorTable: grayTable(4),
		Indexes:    []byte{2, 2, 2, 2},
	}
	ctrl := &GraphicControl{Disposal: DisposalPrevious}

	c := NewCanvas(2, 2, Color{})
	c.Draw(first, nil)
	before := c.Snapshot()

	c.Draw(second, ctrl)
	c.Dispose(second, ctrl)

	if !bytes.Equal(c.Snapshot(), before) {
		t.Error("disposal 3 did not restore the pre-draw canvas")
	}
}

func TestDrawClipsToCanvas(t *testing.T) {
	// An image hanging off the canvas edge must not write out of
	// bounds. 2x2 image at (1,1) on a 2x2 canvas: only (1,1) lands.
	img := &Image{
		Left: 1, Top: 1, Width: 2, Height: 2,
		ColorTable: grayTable(4),
		Indexes:    []byte{3, 3, 3, 3},
	}
	c := NewCanvas(2, 2, Color{})
	c.Draw(img, nil)

	if got := canvasIndex(c, 1, 1); got != 3 {
		t.Errorf("pixel (1,1) = index %d, want 3", got)
	}
	if got := canvasIndex(c, 0, 0); got != 0 {
		t.Errorf("pixel (0,0) = index %d, want untouched background", got)
	}
}
