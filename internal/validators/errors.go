package validators

import "errors"

var (
	ErrMissingDomain        = errors.New("entry has no usable domain")
	ErrMissingUsername      = errors.New("entry has no username")
	ErrEmptyPassword        = errors.New("envelope has no password material")
	ErrInconsistentEnvelope = errors.New("envelope encryption fields are inconsistent")
)
