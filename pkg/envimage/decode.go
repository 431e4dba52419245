package envimage

import "encoding/binary"

// Result is the outcome of a Decode call. ChecksumOK and TerminatorFound
// are advisory: a false value never prevents Text from being produced, it
// only tells the caller the image looked corrupted on the way through.
type Result struct {
	// Text is the recovered key=value text, NUL bytes translated back to
	// newlines.
	Text []byte

	// ChecksumOK reports whether the stored CRC-32 matched the one
	// recomputed over the image body.
	ChecksumOK bool

	// TerminatorFound reports whether the double-NUL end-of-list sentinel
	// was present. When false, Text covers everything up to the scan
	// boundary and may be truncated or carry trailing garbage.
	TerminatorFound bool
}

// Decode unpacks an environment image back into key=value text. flagsSize
// must be 1 if the image was written with a redundant-environment flag
// byte and 0 otherwise; the image itself does not record which.
//
// Decoding is deliberately lenient: a bad checksum or a missing terminator
// is reported in the Result rather than aborting, so text can still be
// recovered from a partially corrupted image.
func Decode(image []byte, flagsSize int) (Result, error) {
	if flagsSize != 0 && flagsSize != 1 {
		return Result{}, ErrInvalidFlag
	}

	start := ChecksumSize + flagsSize
	if len(image) < start+TrailerSize {
		return Result{}, ErrImageTooSmall
	}

	stored := binary.LittleEndian.Uint32(image[:ChecksumSize])
	computed := Checksum(0, image[start:])

	// Find the end-of-list sentinel: the first pair of consecutive NUL
	// bytes. The payload keeps the first NUL of the pair, it is the last
	// variable's terminator and turns back into a trailing newline. If no
	// sentinel exists the payload runs through the last byte the scan
	// could examine.
	stop := len(image) - 1
	found := false
	for i := start; i+1 < len(image); i++ {
		if image[i] == 0 && image[i+1] == 0 {
			stop = i + 1
			found = true
			break
		}
	}

	text := make([]byte, stop-start)
	for i := range text {
		c := image[start+i]
		if c == 0 {
			c = '\n'
		}
		text[i] = c
	}

	return Result{
		Text:            text,
		ChecksumOK:      stored == computed,
		TerminatorFound: found,
	}, nil
}
