package gif

// Block introducers and extension labels.
const (
	introducerExtension = 0x21
	introducerImage     = 0x2C
	introducerTrailer   = 0x3B

	labelGraphicControl = 0xF9
	labelApplication    = 0xFF
	labelPlainText      = 0x01
	labelComment        = 0xFE
)

// Disposal methods carried by a graphic control extension.
const (
	DisposalUnspecified = 0
	DisposalNone        = 1
	DisposalBackground  = 2
	DisposalPrevious    = 3
)

// Color is one RGB color table entry.
type Color struct {
	R byte
	G byte
	B byte
}

// ColorTable is an ordered palette. Its length is always a power of
// two in [2, 256].
type ColorTable []Color

// readColorTable reads ncolors consecutive RGB triplets.
func readColorTable(r *byteReader, ncolors int) (ColorTable, error) {
	raw, err := r.ReadBytes(ncolors * 3)
	if err != nil {
		return nil, err
	}
	ct := make(ColorTable, ncolors)
	for i := range ct {
		ct[i] = Color{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return ct, nil
}

// Block is one element of the decoded block list. The set of
// implementations is closed: *Image, *GraphicControl,
// *ApplicationExtension and *Comment.
type Block interface {
	block()
}

/*
ImageDescriptorPacked {
	0-2: LocalColorTableSizeExponent
	3-4: Reserved
	  5: SortFlag
	  6: InterlaceFlag
	  7: LocalColorTableFlag
}
*/

// Image is one decoded image descriptor together with its fully
// decompressed index stream.
type Image struct {
	Left      int
	Top       int
	Width     int
	Height    int
	Interlace bool

	// ColorTable is the image's local table if one was present,
	// otherwise the container's global table.
	ColorTable ColorTable

	// Indexes holds exactly Width*Height color table indices in
	// stream order (interlace reordering happens at composite time).
	Indexes []byte
}

func (*Image) block() {}

/*
GraphicControlPacked {
	  0: TransparentColorFlag
	  1: UserInputFlag
	2-4: DisposalMethod
	5-7: Reserved
}
*/

// GraphicControl carries compositing metadata for the next Image.
type GraphicControl struct {
	Disposal         byte
	Transparent      bool
	UserInput        bool
	TransparentIndex byte

	// Delay is the display duration in hundredths of a second.
	Delay int
}

func (*GraphicControl) block() {}

// ApplicationExtension is an opaque vendor extension. The payload is
// kept as raw sub-blocks; interpretation is left to the caller, except
// for animation loop counts which the parser recognizes itself.
type ApplicationExtension struct {
	ID   [8]byte
	Auth [3]byte
	Data [][]byte
}

func (*ApplicationExtension) block() {}

// Comment is free-form text attached to the stream.
type Comment struct {
	Texts []string
}

func (*Comment) block() {}

func bit(b byte, p int) bool {
	return b&(1<<p) != 0
}

// bits extracts l bits of b starting at bit position p.
func bits(b byte, p, l int) byte {
	return (b >> p) & (1<<l - 1)
}
