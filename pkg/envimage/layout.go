// Package envimage converts between newline-separated key=value text and
// the flat binary environment image a bootloader reads at boot. An image is
// a CRC-32 word, an optional redundant-environment flag byte, the variable
// list with newlines translated to NUL bytes, and a zero trailer of at
// least two bytes that terminates the list.
//
// Both layouts handled here:
//
//	[crc32:4][payload][trailer: >=2 zero bytes]
//	[crc32:4][flag:1][payload][trailer: >=2 zero bytes]
//
// The format is not self-describing: whether the flag byte is present must
// be tracked externally and supplied on decode.
package envimage

// ChecksumSize is the size of the CRC-32 word at the start of an image.
const ChecksumSize = 4

// TrailerSize is the minimum number of trailing zero bytes, enough to
// guarantee the double-NUL end-of-list sentinel.
const TrailerSize = 2

// Layout describes where the pieces of an environment image live for one
// of the two supported header shapes.
type Layout struct {
	ChecksumSize int
	FlagsSize    int
}

// ResolveLayout returns the layout for a plain or redundant environment.
func ResolveLayout(redundant bool) Layout {
	l := Layout{ChecksumSize: ChecksumSize}
	if redundant {
		l.FlagsSize = 1
	}
	return l
}

// PayloadOffset is the offset of the first variable byte.
func (l Layout) PayloadOffset() int {
	return l.ChecksumSize + l.FlagsSize
}

// MinSize is the smallest image that can hold a payload of n bytes.
func (l Layout) MinSize(n int) int {
	return l.PayloadOffset() + n + TrailerSize
}
