package compress

// ZstdCompressor provides Zstandard compression for framed FPC block bytes.
//
// This compressor favors compression ratio over speed, making it suited for:
//   - Cold storage and archival of compressed blocks
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
