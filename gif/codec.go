package gif

import (
	"github.com/marethyu/mygif/codec"
)

// Codec implements the codec.Codec interface for GIF
type Codec struct {
	params *Parameters
}

// NewCodec creates a new GIF codec with default parameters
func NewCodec() *Codec {
	return &Codec{params: NewParameters()}
}

// NewCodecWithParameters creates a new GIF codec with the given
// parameters
func NewCodecWithParameters(params *Parameters) *Codec {
	if params == nil {
		params = NewParameters()
	}
	return &Codec{params: params}
}

// Decode decodes a GIF container into composited frames. Frames are
// rendered for a single pass over the block list; cyclic replay is
// the caller's concern (see Player).
func (c *Codec) Decode(data []byte) (*codec.Result, error) {
	g, err := DecodeWithParameters(data, c.params)
	if err != nil {
		return nil, err
	}

	player := NewPlayer(g)
	player.Loop = false

	var frames []*codec.Frame
	for {
		frame, ok := player.Next()
		if !ok {
			break
		}
		frames = append(frames, frame)
	}

	return &codec.Result{
		Frames:    frames,
		Width:     g.Width,
		Height:    g.Height,
		LoopCount: g.LoopCount,
		Comments:  g.Comments(),
	}, nil
}

// Name returns the human-readable format name
func (c *Codec) Name() string {
	return "gif"
}

// MIME returns the format's MIME type
func (c *Codec) MIME() string {
	return "image/gif"
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
