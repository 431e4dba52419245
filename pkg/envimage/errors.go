package envimage

import (
	"errors"
	"fmt"
)

// ErrImageTooSmall reports an image shorter than its header plus the
// minimum trailer.
var ErrImageTooSmall = errors.New("image too small to hold an environment")

// ErrInvalidFlag reports a redundancy flag value outside the supported
// range.
var ErrInvalidFlag = errors.New("invalid redundancy flag value")

// SizeTooSmallError reports a requested image size that cannot hold the
// header, payload and trailer.
type SizeTooSmallError struct {
	Requested int
	Minimum   int
}

func (e *SizeTooSmallError) Error() string {
	return fmt.Sprintf("requested size %d is too small, need at least %d bytes", e.Requested, e.Minimum)
}
