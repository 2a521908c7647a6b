// Package framing serializes a single fpc.Block to and from the minimal
// on-disk layout suggested as a non-contractual convenience: an 8-byte
// little-endian value count, an 8-byte little-endian residual length, the
// header bytes, then the residual bytes. The table size used to produce the
// block is never recorded here; it travels out-of-band by agreement between
// writer and reader.
package framing

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"

	fpc "github.com/su225/fpc-compression"
	"github.com/su225/fpc-compression/endian"
	"github.com/su225/fpc-compression/errs"
)

// EncodeTo writes block's serialized form to w.
func EncodeTo(w io.Writer, block fpc.Block) error {
	bw := bitio.NewWriter(w)

	engine := endian.GetLittleEndianEngine()
	lengths := engine.AppendUint64(make([]byte, 0, 16), block.NumValues)
	lengths = engine.AppendUint64(lengths, uint64(len(block.Residual)))

	if _, err := bw.Write(lengths); err != nil {
		return fmt.Errorf("fpc/framing: write lengths: %w", err)
	}
	if _, err := bw.Write(block.Header); err != nil {
		return fmt.Errorf("fpc/framing: write header: %w", err)
	}
	if _, err := bw.Write(block.Residual); err != nil {
		return fmt.Errorf("fpc/framing: write residual: %w", err)
	}
	return bw.Close()
}

// Encode returns block's serialized form as a new byte slice.
func Encode(block fpc.Block) []byte {
	var buf bytes.Buffer
	buf.Grow(16 + len(block.Header) + len(block.Residual))
	// EncodeTo never fails against a bytes.Buffer.
	_ = EncodeTo(&buf, block)
	return buf.Bytes()
}

// DecodeFrom reads a single serialized block from r.
//
// It returns errs.ErrMalformedFraming, wrapped with detail, if r ends before
// the declared header or residual length is satisfied. This is distinct
// from errs.ErrMalformedBlock, which fpc.Decompress returns for a
// structurally complete but internally inconsistent block; DecodeFrom never
// inspects header/residual accounting, only the framing's own length
// fields.
func DecodeFrom(r io.Reader) (fpc.Block, error) {
	br := bitio.NewReader(r)

	engine := endian.GetLittleEndianEngine()

	lengths := make([]byte, 16)
	if _, err := io.ReadFull(br, lengths); err != nil {
		return fpc.Block{}, fmt.Errorf("%w: read lengths: %v", errs.ErrMalformedFraming, err)
	}
	numValues := engine.Uint64(lengths[0:8])
	residualLen := engine.Uint64(lengths[8:16])

	header := make([]byte, headerByteLen(numValues))
	if len(header) > 0 {
		if _, err := io.ReadFull(br, header); err != nil {
			return fpc.Block{}, fmt.Errorf("%w: read header: %v", errs.ErrMalformedFraming, err)
		}
	}

	residual := make([]byte, residualLen)
	if residualLen > 0 {
		if _, err := io.ReadFull(br, residual); err != nil {
			return fpc.Block{}, fmt.Errorf("%w: read residual: %v", errs.ErrMalformedFraming, err)
		}
	}

	return fpc.Block{
		NumValues: numValues,
		Header:    header,
		Residual:  residual,
	}, nil
}

// Decode deserializes a single block from buf.
func Decode(buf []byte) (fpc.Block, error) {
	return DecodeFrom(bytes.NewReader(buf))
}

func headerByteLen(numValues uint64) int {
	return int((numValues + 1) / 2)
}
