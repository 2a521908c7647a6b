package fpc

import (
	"fmt"
	"math"

	"github.com/su225/fpc-compression/errs"
	"github.com/su225/fpc-compression/internal/predictor"
)

// trueLZB recovers the actual leading-zero-byte count from a 3-bit header
// code; code 4 never appears (see lzbCode), so codes 0..3 map to counts
// 0..3 and codes 4..7 map to counts 5..8.
func trueLZB(code byte) int {
	if code < 4 {
		return int(code)
	}
	return int(code) + 1
}

// readResidualBigEndian reads n big-endian bytes from residual starting at
// cursor and returns the assembled value and the advanced cursor.
func readResidualBigEndian(residual []byte, cursor, n int) (uint64, int, error) {
	if cursor+n > len(residual) {
		return 0, cursor, fmt.Errorf("%w: need %d residual bytes at offset %d, have %d", errs.ErrMalformedBlock, n, cursor, len(residual))
	}
	var r uint64
	for i := 0; i < n; i++ {
		r = (r << 8) | uint64(residual[cursor+i])
	}
	return r, cursor + n, nil
}

// Decompress decodes block into a freshly allocated slice using table size
// t, which must match the value used to produce block.
func Decompress(t uint64, block Block) ([]float64, error) {
	return DecompressInto(t, block, make([]float64, 0, block.NumValues))
}

// DecompressInto decodes block, appending the decoded values to valuesBuf,
// and returns the resulting slice.
func DecompressInto(t uint64, block Block, valuesBuf []float64) ([]float64, error) {
	out, _, err := decompressInto(t, block, valuesBuf)
	return out, err
}

// decompressInto is the shared implementation behind DecompressInto and
// Codec.DecompressInto; it additionally reports the final residual cursor
// so strict-mode callers can check for unconsumed trailing bytes.
func decompressInto(t uint64, block Block, valuesBuf []float64) ([]float64, int, error) {
	if err := checkTableSize(t); err != nil {
		return valuesBuf, 0, err
	}

	state := predictor.New(t)
	defer state.Release()

	cursor := 0
	for i := uint64(0); i < block.NumValues; i++ {
		tag := nibble(block.Header, i)
		predictorSelect := (tag >> 3) & 1
		lzb := trueLZB(tag & 7)

		r, nextCursor, err := readResidualBigEndian(block.Residual, cursor, 8-lzb)
		if err != nil {
			return valuesBuf, cursor, err
		}
		cursor = nextCursor

		fcmPred, dfcmPred := state.Predictions()
		var chosen uint64
		if predictorSelect == 1 {
			chosen = fcmPred
		} else {
			chosen = dfcmPred
		}

		v := r ^ chosen
		valuesBuf = append(valuesBuf, math.Float64frombits(v))
		state.Advance(v)
	}

	return valuesBuf, cursor, nil
}
