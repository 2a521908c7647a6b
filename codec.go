package fpc

import (
	"fmt"

	"github.com/su225/fpc-compression/errs"
	"github.com/su225/fpc-compression/internal/options"
)

// Codec fixes a table size, and optionally other behavior, for repeated
// compress/decompress calls without re-passing the table size each time.
// The underlying Compress/Decompress functions remain the primary API; Codec
// is a thin convenience built on top of them.
type Codec struct {
	tableSize      uint64
	strictResidual bool
}

// Option configures a Codec via NewCodec.
type Option = options.Option[*Codec]

// WithTableSize sets the predictor table size. Required: NewCodec returns a
// configuration error if it is never supplied or is not a nonzero power of
// two.
func WithTableSize(t uint64) Option {
	return options.New(func(c *Codec) error {
		if err := checkTableSize(t); err != nil {
			return err
		}
		c.tableSize = t
		return nil
	})
}

// WithStrictResidualConsumption makes Decompress/DecompressInto reject
// blocks that leave unconsumed residual bytes after the last value. The
// core's plain Decompress/DecompressInto functions always permit trailing
// bytes, matching the permissive baseline; this option exists for callers
// who additionally want the stricter check without re-implementing it.
func WithStrictResidualConsumption() Option {
	return options.NoError(func(c *Codec) { c.strictResidual = true })
}

// NewCodec builds a Codec from opts. WithTableSize is required.
func NewCodec(opts ...Option) (*Codec, error) {
	c := &Codec{}
	if err := options.Apply[*Codec](c, opts...); err != nil {
		return nil, err
	}
	if err := checkTableSize(c.tableSize); err != nil {
		return nil, err
	}
	return c, nil
}

// Compress encodes values into a freshly allocated Block.
func (c *Codec) Compress(values []float64) (Block, error) {
	return Compress(c.tableSize, values)
}

// CompressInto encodes values into the caller-owned buffers; see
// CompressInto for buffer sizing requirements.
func (c *Codec) CompressInto(values []float64, headerBuf, residualBuf []byte) (Block, error) {
	return CompressInto(c.tableSize, values, headerBuf, residualBuf)
}

// Decompress decodes block into a freshly allocated slice.
func (c *Codec) Decompress(block Block) ([]float64, error) {
	return c.DecompressInto(block, make([]float64, 0, block.NumValues))
}

// DecompressInto decodes block, appending decoded values to valuesBuf.
func (c *Codec) DecompressInto(block Block, valuesBuf []float64) ([]float64, error) {
	out, cursor, err := decompressInto(c.tableSize, block, valuesBuf)
	if err != nil {
		return out, err
	}
	if c.strictResidual && cursor != len(block.Residual) {
		return out, fmt.Errorf("%w: %d trailing residual bytes after decoding %d values", errs.ErrMalformedBlock, len(block.Residual)-cursor, block.NumValues)
	}
	return out, nil
}
