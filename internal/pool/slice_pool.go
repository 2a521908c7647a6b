package pool

import "sync"

// uint64SlicePool backs the scratch predictor tables so that repeated
// compress/decompress calls don't each allocate a fresh table.
var uint64SlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetUint64Slice retrieves a zeroed uint64 slice of exactly size elements from the pool.
//
// This is used to back the FCM and DFCM predictor tables. Every predictor table
// must start at zero (per the data model), so the returned slice is always
// cleared before being handed back, regardless of whether it was freshly
// allocated or reused from a prior call.
//
// The caller must call the returned cleanup function (typically via defer) to
// return the slice to the pool once the compress/decompress call completes.
//
// Parameters:
//   - size: The desired length of the slice (the configured table size T)
//
// Returns:
//   - []uint64: A zeroed slice with length equal to size
//   - func(): Cleanup function that returns the slice to the pool
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { uint64SlicePool.Put(ptr) }
}
