package fpc

import (
	"fmt"

	"github.com/su225/fpc-compression/errs"
)

// validTableSize reports whether t is a nonzero power of two.
func validTableSize(t uint64) bool {
	return t != 0 && t&(t-1) == 0
}

// checkTableSize returns errs.ErrConfig, wrapped with detail, if t is not a
// valid table size. It is called at the entry of every compress/decompress
// operation, before any buffer is touched.
func checkTableSize(t uint64) error {
	if !validTableSize(t) {
		return fmt.Errorf("%w: table size %d must be a nonzero power of two", errs.ErrConfig, t)
	}
	return nil
}
