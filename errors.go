package orbital

import "errors"

// Precondition errors. They mark caller bugs rather than runtime faults and
// are returned wrapped; compare with errors.Is.
var (
	ErrInvalidResolution  = errors.New("resolution out of range")
	ErrInvalidSize        = errors.New("size out of range")
	ErrInvalidLengthScale = errors.New("length scale out of range")
	ErrCursorRange        = errors.New("cursor outside scan bounds")
	ErrUnknownOrbital     = errors.New("unknown orbital")
	ErrUnknownPreset      = errors.New("unknown magnetic preset")
)
