// Package fpc implements an FPC-style lossless compressor for streams of
// IEEE-754 double-precision floating-point values.
//
// The algorithm predicts each value from two independent context-hashed
// tables (FCM and DFCM), picks whichever prediction XORs closer to the true
// bit pattern, and stores only the non-zero trailing bytes of that XOR
// alongside a 4-bit tag recording which predictor won and how many leading
// bytes were dropped. Both predictors and both sides of a round trip must
// stay in lockstep: the decoder feeds its reconstructed values back into its
// own tables exactly as the encoder did, so a single divergence corrupts
// every value after it.
//
// # Basic usage
//
//	block, err := fpc.Compress(1024, values)
//	if err != nil {
//		// table size was not a nonzero power of two
//	}
//
//	decoded, err := fpc.Decompress(1024, block)
//	if err != nil {
//		// block.Residual ran out of bytes mid-value
//	}
//
// The table size must be identical on both sides; it is not recorded in
// Block and there is no way to detect a mismatch structurally, since a
// Block decoded against the wrong table size simply produces garbage values
// rather than an error.
//
// For repeated calls at a fixed table size, Codec avoids re-passing it:
//
//	codec, err := fpc.NewCodec(fpc.WithTableSize(1024))
//	block, err := codec.Compress(values)
//	decoded, err := codec.Decompress(block)
//
// CompressInto and DecompressInto accept caller-owned buffers for callers
// who want to amortize allocations across many calls; see their doc comments
// for buffer sizing requirements. CompressBatch and DecompressBatch run many
// independent calls concurrently, one predictor table pair per goroutine.
//
// This package defines only the in-memory Block representation and its two
// error kinds (see the errs package). Serializing a Block to bytes is the
// framing package's job; optional secondary byte compression of framed
// bytes is the compress package's job. Neither is required to use fpc
// itself.
package fpc
