package gif

import "fmt"

// GIF is one fully decoded container: the logical screen together
// with the ordered block list. Blocks are immutable after decoding
// and their ordering is the playback order.
type GIF struct {
	Width  int
	Height int

	BackgroundIndex byte
	AspectRatio     byte

	// GlobalColorTable is nil when the container carries none.
	GlobalColorTable ColorTable

	Blocks []Block

	// LoopCount is taken from a NETSCAPE2.0/ANIMEXTS1.0 application
	// extension when present. 0 means loop forever, which is also
	// the default when no such extension exists.
	LoopCount int
}

// Images returns the image blocks in playback order.
func (g *GIF) Images() []*Image {
	var imgs []*Image
	for _, b := range g.Blocks {
		if img, ok := b.(*Image); ok {
			imgs = append(imgs, img)
		}
	}
	return imgs
}

// Comments returns the text of every comment block in stream order.
func (g *GIF) Comments() []string {
	var texts []string
	for _, b := range g.Blocks {
		if c, ok := b.(*Comment); ok {
			texts = append(texts, c.Texts...)
		}
	}
	return texts
}

// Decode decodes a complete GIF container with default parameters.
func Decode(data []byte) (*GIF, error) {
	return DecodeWithParameters(data, nil)
}

// DecodeWithParameters decodes a complete GIF container. A nil
// params decodes with NewParameters() defaults.
func DecodeWithParameters(data []byte, params *Parameters) (*GIF, error) {
	if params == nil {
		params = NewParameters()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	d := &decoder{
		r:        newByteReader(data),
		accepted: make(map[string]bool),
		g:        &GIF{},
	}
	for _, v := range params.AcceptedVersions {
		d.accepted[v] = true
	}

	if err := d.decode(); err != nil {
		return nil, err
	}
	return d.g, nil
}

type decoder struct {
	r        *byteReader
	accepted map[string]bool
	g        *GIF
}

func (d *decoder) decode() error {
	if err := d.parseHeader(); err != nil {
		return err
	}
	if err := d.parseScreenDescriptor(); err != nil {
		return err
	}

	for {
		introducer, err := d.r.ReadByte()
		if err != nil {
			return err
		}

		switch introducer {
		case introducerImage:
			if err := d.parseImage(); err != nil {
				return err
			}

		case introducerExtension:
			if err := d.parseExtension(); err != nil {
				return err
			}

		case introducerTrailer:
			return nil

		default:
			return fmt.Errorf("%w: 0x%02X at offset %d", ErrMalformedBlock, introducer, d.r.Pos()-1)
		}
	}
}

// parseHeader validates the 6-byte signature/version field.
func (d *decoder) parseHeader() error {
	sig, err := d.r.ReadBytes(3)
	if err != nil {
		return err
	}
	if string(sig) != "GIF" {
		return ErrUnsupportedSignature
	}

	version, err := d.r.ReadBytes(3)
	if err != nil {
		return err
	}
	if !d.accepted[string(version)] {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, string(version))
	}
	return nil
}

/*
ScreenDescriptorPacked {
	0-2: GlobalColorTableSizeExponent (87a), unused here
	  3: SortFlag
	4-6: ColorResolution
	  7: GlobalColorTableFlag
}
*/
func (d *decoder) parseScreenDescriptor() error {
	width, err := d.r.ReadUint16()
	if err != nil {
		return err
	}
	height, err := d.r.ReadUint16()
	if err != nil {
		return err
	}
	packed, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	bgIndex, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	aspect, err := d.r.ReadByte()
	if err != nil {
		return err
	}

	d.g.Width = int(width)
	d.g.Height = int(height)
	d.g.BackgroundIndex = bgIndex
	d.g.AspectRatio = aspect

	if bit(packed, 7) {
		resolution := bits(packed, 4, 3)
		ct, err := readColorTable(d.r, 1<<(resolution+1))
		if err != nil {
			return err
		}
		d.g.GlobalColorTable = ct
	}
	return nil
}

func (d *decoder) parseImage() error {
	left, err := d.r.ReadUint16()
	if err != nil {
		return err
	}
	top, err := d.r.ReadUint16()
	if err != nil {
		return err
	}
	width, err := d.r.ReadUint16()
	if err != nil {
		return err
	}
	height, err := d.r.ReadUint16()
	if err != nil {
		return err
	}
	packed, err := d.r.ReadByte()
	if err != nil {
		return err
	}

	img := &Image{
		Left:      int(left),
		Top:       int(top),
		Width:     int(width),
		Height:    int(height),
		Interlace: bit(packed, 6),
	}

	if bit(packed, 7) {
		exponent := bits(packed, 0, 3)
		ct, err := readColorTable(d.r, 1<<(exponent+1))
		if err != nil {
			return err
		}
		img.ColorTable = ct
	} else {
		if d.g.GlobalColorTable == nil {
			return ErrMissingColorTable
		}
		img.ColorTable = d.g.GlobalColorTable
	}

	litWidth, err := d.r.ReadByte()
	if err != nil {
		return err
	}

	subBlocks, err := d.readSubBlocks()
	if err != nil {
		return err
	}

	indexes, err := decompressLZW(assembleSubBlocks(subBlocks), int(litWidth), len(img.ColorTable))
	if err != nil {
		return err
	}
	if len(indexes) != img.Width*img.Height {
		return fmt.Errorf("%w: got %d indices for %dx%d image",
			ErrIndexCountMismatch, len(indexes), img.Width, img.Height)
	}
	img.Indexes = indexes

	d.g.Blocks = append(d.g.Blocks, img)
	return nil
}

func (d *decoder) parseExtension() error {
	label, err := d.r.ReadByte()
	if err != nil {
		return err
	}

	switch label {
	case labelGraphicControl:
		return d.parseGraphicControl()
	case labelApplication:
		return d.parseApplicationExtension()
	case labelPlainText:
		return d.parsePlainText()
	case labelComment:
		return d.parseComment()
	default:
		return fmt.Errorf("%w: 0x%02X", ErrUnknownExtensionLabel, label)
	}
}

func (d *decoder) parseGraphicControl() error {
	size, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if size != 4 {
		return fmt.Errorf("%w: graphic control body size %d", ErrMalformedBlock, size)
	}

	packed, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	delay, err := d.r.ReadUint16()
	if err != nil {
		return err
	}
	transIndex, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	terminator, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if terminator != 0 {
		return fmt.Errorf("%w: graphic control not terminated", ErrMalformedBlock)
	}

	d.g.Blocks = append(d.g.Blocks, &GraphicControl{
		Transparent:      bit(packed, 0),
		UserInput:        bit(packed, 1),
		Disposal:         bits(packed, 2, 3),
		Delay:            int(delay),
		TransparentIndex: transIndex,
	})
	return nil
}

func (d *decoder) parseApplicationExtension() error {
	size, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if size != 11 {
		return fmt.Errorf("%w: application extension body size %d", ErrMalformedBlock, size)
	}

	body, err := d.r.ReadBytes(11)
	if err != nil {
		return err
	}

	ext := &ApplicationExtension{}
	copy(ext.ID[:], body[:8])
	copy(ext.Auth[:], body[8:11])

	ext.Data, err = d.readSubBlocks()
	if err != nil {
		return err
	}

	d.maybeLoopCount(ext)
	d.g.Blocks = append(d.g.Blocks, ext)
	return nil
}

// maybeLoopCount recognizes the de-facto animation loop extension.
// Anything else stays opaque for the caller to interpret.
func (d *decoder) maybeLoopCount(ext *ApplicationExtension) {
	id, auth := string(ext.ID[:]), string(ext.Auth[:])
	netscape := id == "NETSCAPE" && auth == "2.0"
	animexts := id == "ANIMEXTS" && auth == "1.0"
	if !netscape && !animexts {
		return
	}
	for _, sub := range ext.Data {
		if len(sub) == 3 && sub[0] == 0x01 {
			d.g.LoopCount = int(sub[1]) | int(sub[2])<<8
			return
		}
	}
}

// parsePlainText walks a plain text extension structurally. The text
// payload is not rendered, so it is discarded after parsing.
func (d *decoder) parsePlainText() error {
	size, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if _, err := d.r.ReadBytes(int(size)); err != nil {
		return err
	}
	_, err = d.readSubBlocks()
	return err
}

func (d *decoder) parseComment() error {
	subBlocks, err := d.readSubBlocks()
	if err != nil {
		return err
	}

	comment := &Comment{}
	for _, sub := range subBlocks {
		comment.Texts = append(comment.Texts, string(sub))
	}
	d.g.Blocks = append(d.g.Blocks, comment)
	return nil
}

// readSubBlocks reads a run of length-prefixed data sub-blocks. A
// zero-length sub-block terminates the run. The returned slices are
// copies: blocks outlive the decode call and must not alias input
// the caller may reuse.
func (d *decoder) readSubBlocks() ([][]byte, error) {
	var blocks [][]byte
	for {
		n, err := d.r.ReadByte()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return blocks, nil
		}
		data, err := d.r.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, append([]byte(nil), data...))
	}
}

// assembleSubBlocks concatenates a sub-block run into the contiguous
// payload the decompressor consumes.
func assembleSubBlocks(blocks [][]byte) []byte {
	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	payload := make([]byte, 0, total)
	for _, b := range blocks {
		payload = append(payload, b...)
	}
	return payload
}
