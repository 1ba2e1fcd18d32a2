package gif

import "errors"

// Decode errors. All are structural: any one of them aborts the decode
// pass entirely, nothing is retried and no partial result is returned.
var (
	ErrUnexpectedEOF         = errors.New("unexpected end of data")
	ErrUnsupportedSignature  = errors.New("not a GIF file")
	ErrUnsupportedVersion    = errors.New("unsupported GIF version")
	ErrMissingColorTable     = errors.New("image has neither local nor global color table")
	ErrMalformedBlock        = errors.New("malformed block introducer")
	ErrUnknownExtensionLabel = errors.New("unknown extension label")
	ErrIndexCountMismatch    = errors.New("decoded index count does not match image dimensions")
	ErrCodeTableCorruption   = errors.New("LZW code table corruption")
)
