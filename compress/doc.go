// Package compress provides general-purpose codecs that can be layered on top of
// a framed FPC block's serialized bytes.
//
// FPC's own encoding already strips the leading, value-predictable bytes of
// each float64 via the FCM/DFCM predictors; what remains is the header
// nibbles and the non-zero residual tail. This package supplies an optional
// second pass over that output when the caller wants to trade CPU for a
// further size reduction before the bytes leave the process.
//
// # Overview
//
// A block travels through at most two stages:
//
//  1. FPC encoding: predicts each value's leading bytes, keeps the residual.
//  2. General-purpose compression (this package): squeezes the framed bytes.
//
// The package supports multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - The block is already dense (small residual, few non-zero bytes)
//   - CPU is more critical than storage
//
// **Zstandard (Zstd)** (CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Best for cold storage or network transmission, where the extra CPU cost of
// a stronger compressor pays for itself.
//
// **S2 (Snappy Alternative)** (CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Best for streaming pipelines where compression latency matters as much as
// ratio.
//
// **LZ4** (CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Best for read-heavy workloads where decompression speed dominates.
//
// # Choosing an algorithm
//
// | Scenario                | Recommended | Reason                         |
// |--------------------------|-------------|---------------------------------|
// | Storage-constrained      | Zstd        | Best compression ratio          |
// | Streaming ingestion      | S2          | Balanced speed and compression  |
// | Read-heavy / query-heavy | LZ4         | Fastest decompression           |
// | CPU-constrained          | None        | No compression overhead         |
//
// # Memory Management
//
// The LZ4 and pure-Go Zstd implementations reuse their library compressor,
// encoder and decoder objects via sync.Pool; S2 calls the stateless library
// functions directly. Returned slices are newly allocated and owned by the
// caller, except for NoOpCompressor, which returns its input slice itself;
// input slices are never modified.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use by multiple
// goroutines.
//
// # Error Handling
//
// Decompress returns an error for corrupted or truncated input. Compress
// errors are rare and generally indicate the underlying library rejected the
// input outright (for example, size limits on extreme inputs).
//
// # Extending
//
// Implement Compressor/Decompressor directly for a custom secondary codec:
//
//	type MyCodec struct{}
//
//	func (c *MyCodec) Compress(data []byte) ([]byte, error) {
//	    return compressedData, nil
//	}
//
//	func (c *MyCodec) Decompress(data []byte) ([]byte, error) {
//	    return originalData, nil
//	}
package compress
