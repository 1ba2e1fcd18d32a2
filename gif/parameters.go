package gif

// DefaultVersions is the version set accepted when none is configured.
// Both revisions are in wide circulation; rejecting either is opt-in.
var DefaultVersions = []string{"87a", "89a"}

// Parameters contains decoding parameters for the GIF codec
type Parameters struct {
	// AcceptedVersions lists the version suffixes the parser accepts
	// (the three bytes following "GIF"). Any other version fails the
	// decode with ErrUnsupportedVersion.
	AcceptedVersions []string
}

// NewParameters creates Parameters with default values
func NewParameters() *Parameters {
	return &Parameters{
		AcceptedVersions: DefaultVersions,
	}
}

// Validate checks if the parameters are valid
func (p *Parameters) Validate() error {
	if len(p.AcceptedVersions) == 0 {
		p.AcceptedVersions = DefaultVersions // Reset to default
	}
	return nil
}

// WithVersions sets the accepted versions and returns the parameters
// for chaining
func (p *Parameters) WithVersions(versions ...string) *Parameters {
	p.AcceptedVersions = versions
	return p
}
