package envimage

import "encoding/binary"

// FlagMode selects whether and how the redundant-environment flag byte is
// written.
type FlagMode int

const (
	// FlagNone produces the plain layout without a flag byte.
	FlagNone FlagMode = iota
	// FlagActive writes a flag byte of 1, marking this copy as the one
	// the bootloader should use.
	FlagActive
	// FlagObsolete writes a flag byte of 0, marking this copy as the
	// stale half of a redundant pair.
	FlagObsolete
)

// EncodeOptions control a single Encode call.
type EncodeOptions struct {
	// Flag selects the plain or redundant layout and the flag byte value.
	Flag FlagMode

	// Size is the total image size in bytes. Zero means the minimum size
	// for the payload. Anything smaller than the minimum is an error;
	// anything larger is filled with zero padding.
	Size int

	// SkipCRC leaves the checksum word zeroed instead of computing it.
	SkipCRC bool
}

// Encode packs newline-separated key=value text into an environment image.
// Newlines become NUL bytes, every other byte passes through unchanged.
// The returned buffer is freshly allocated and owned by the caller.
func Encode(text []byte, opts EncodeOptions) ([]byte, error) {
	if opts.Flag < FlagNone || opts.Flag > FlagObsolete {
		return nil, ErrInvalidFlag
	}

	layout := ResolveLayout(opts.Flag != FlagNone)
	min := layout.MinSize(len(text))

	size := opts.Size
	if size == 0 {
		size = min
	} else if size < min {
		return nil, &SizeTooSmallError{Requested: opts.Size, Minimum: min}
	}

	// Zero-initialized, so the checksum placeholder and the trailer need
	// no explicit fill.
	img := make([]byte, size)

	if opts.Flag == FlagActive {
		img[ChecksumSize] = 1
	}

	payload := img[layout.PayloadOffset():]
	for i, c := range text {
		if c == '\n' {
			c = 0
		}
		payload[i] = c
	}

	if !opts.SkipCRC {
		crc := Checksum(0, img[layout.PayloadOffset():])
		binary.LittleEndian.PutUint32(img[:ChecksumSize], crc)
	}

	return img, nil
}
