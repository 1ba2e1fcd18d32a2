package codec

import "image"

// Codec is the universal interface for all animation/image decoders
type Codec interface {
	// Decode decodes a complete container into raster frames
	Decode(data []byte) (*Result, error)

	// Name returns a short format name (e.g. "gif")
	Name() string

	// MIME returns the format's MIME type (e.g. "image/gif")
	MIME() string
}

// Result contains the result of decoding one container
type Result struct {
	Frames    []*Frame // Composited frames in playback order
	Width     int      // Canvas width
	Height    int      // Canvas height
	LoopCount int      // Animation loop count (0 = loop forever)
	Comments  []string // Free-form comment text carried by the container
}

// Frame is one displayable frame of an animation
type Frame struct {
	Pixels   []byte // RGBA, 4 bytes per pixel, row-major
	Width    int    // Frame width (canvas width for compositing formats)
	Height   int    // Frame height
	Duration int    // Display duration in milliseconds
}

// RGBAAt returns the pixel at (x, y). Coordinates outside the frame
// return transparent black.
func (f *Frame) RGBAAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0, 0, 0, 0
	}
	i := (y*f.Width + x) * 4
	return f.Pixels[i], f.Pixels[i+1], f.Pixels[i+2], f.Pixels[i+3]
}

// Image exposes the frame as a standard library image. The pixel
// buffer is shared, not copied.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pixels,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
