package fpc

import (
	"fmt"
	"math"

	"github.com/su225/fpc-compression/internal/predictor"
)

// leadingZeroBytes returns the number of leading zero bytes of x, scanning
// from the high byte, in [0,8]. x==0 yields 8.
func leadingZeroBytes(x uint64) int {
	if x == 0 {
		return 8
	}
	n := 0
	for shift := 56; shift >= 0; shift -= 8 {
		if (x>>shift)&0xFF != 0 {
			break
		}
		n++
	}
	return n
}

// lzbCode maps a true leading-zero-byte count to its 3-bit header code. A
// true count of 4 is forbidden as a code value, so it collapses into code 3
// and costs one extra materialized residual byte (see residualByteLen).
func lzbCode(lzb int) byte {
	switch {
	case lzb < 4:
		return byte(lzb)
	case lzb == 4:
		return 3
	default:
		return byte(lzb - 1)
	}
}

// residualByteLen returns how many trailing bytes of the XOR residual to
// emit for a true leading-zero-byte count. lzb==4 emits one byte beyond the
// usual 8-lzb, the byte that would otherwise have been implied by code 4.
func residualByteLen(lzb int) int {
	if lzb == 4 {
		return 5
	}
	return 8 - lzb
}

// appendBigEndian appends the low n bytes of x, most significant first.
func appendBigEndian(dst []byte, x uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(x>>(8*i)))
	}
	return dst
}

// Compress encodes values into a freshly allocated Block using table size t.
func Compress(t uint64, values []float64) (Block, error) {
	header := make([]byte, headerByteLen(uint64(len(values))))
	residual := make([]byte, 0, len(values)*2)
	return CompressInto(t, values, header, residual)
}

// CompressInto encodes values into headerBuf and residualBuf, returning a
// Block that references them. headerBuf must be exactly ceil(len(values)/2)
// bytes, all zero; CompressInto only ORs bits into it. residualBuf is
// appended to; its prior contents are preserved and its first len bytes are
// not part of the result.
func CompressInto(t uint64, values []float64, headerBuf, residualBuf []byte) (Block, error) {
	if err := checkTableSize(t); err != nil {
		return Block{}, err
	}

	n := uint64(len(values))
	wantHeaderLen := headerByteLen(n)
	if len(headerBuf) != wantHeaderLen {
		return Block{}, fmt.Errorf("fpc: header buffer must be exactly %d bytes for %d values, got %d", wantHeaderLen, n, len(headerBuf))
	}

	state := predictor.New(t)
	defer state.Release()

	start := len(residualBuf)
	for i, x := range values {
		v := math.Float64bits(x)

		fcmPred, dfcmPred := state.Predictions()
		fcmDiff := fcmPred ^ v
		dfcmDiff := dfcmPred ^ v

		var toEncode uint64
		var predictorSelect byte
		if fcmDiff < dfcmDiff {
			toEncode = fcmDiff
			predictorSelect = 1
		} else {
			toEncode = dfcmDiff
		}

		lzb := leadingZeroBytes(toEncode)
		residualBuf = appendBigEndian(residualBuf, toEncode, residualByteLen(lzb))
		setNibble(headerBuf, uint64(i), (predictorSelect<<3)|lzbCode(lzb))

		state.Advance(v)
	}

	return Block{
		NumValues: n,
		Header:    headerBuf,
		Residual:  residualBuf[start:],
	}, nil
}
