package fpc

// Block is the compressed representation of a sequence of float64 values:
// a value count, a packed 4-bit-per-value header, and a variable-length
// residual. It carries no table size, version, or checksum — those are the
// caller's responsibility (see the errs and framing packages).
type Block struct {
	// NumValues is the number of original float64 values this block decodes
	// to.
	NumValues uint64

	// Header packs two 4-bit tags per byte. For header byte i, the tag for
	// value 2*i is in the high nibble and the tag for value 2*i+1 is in the
	// low nibble. Its length is always ceil(NumValues/2); when NumValues is
	// odd, the low nibble of the last byte is unused and must be zero.
	Header []byte

	// Residual holds the concatenated big-endian residual bytes for every
	// value, in order. Its length is fully determined by Header's tags.
	Residual []byte
}

// headerByteLen returns ceil(numValues/2), the exact length a header buffer
// must have for numValues values.
func headerByteLen(numValues uint64) int {
	return int((numValues + 1) / 2)
}

// setNibble ORs tag into the nibble for value index i within header. Callers
// must ensure header is pre-zeroed; the encoder only ever sets bits, never
// clears them.
func setNibble(header []byte, i uint64, tag byte) {
	if i%2 == 0 {
		header[i/2] |= tag << 4
	} else {
		header[i/2] |= tag
	}
}

// nibble extracts the tag for value index i from header.
func nibble(header []byte, i uint64) byte {
	b := header[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}
