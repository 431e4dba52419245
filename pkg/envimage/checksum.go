package envimage

import "hash/crc32"

// Checksum computes the CRC-32 of data, continuing from seed. This is the
// reflected CRC-32 over polynomial 0xEDB88320 with the zlib seed
// convention (accumulator inverted on entry and exit), the same checksum
// the bootloader applies when it loads the environment. Encode and Decode
// both call it with seed 0 over the bytes after the checksum word and flag
// byte.
func Checksum(seed uint32, data []byte) uint32 {
	return crc32.Update(seed, crc32.IEEETable, data)
}
