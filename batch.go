package fpc

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CompressBatch compresses each of batches independently and concurrently,
// one predictor State per goroutine, and returns the resulting blocks in the
// same order as batches. No state is shared across goroutines, matching the
// per-call ownership model: compress/decompress calls on distinct inputs
// require no coordination.
//
// An invalid table size is reported before any goroutine starts. If any
// per-batch call fails, the first error is returned once every goroutine has
// finished (the others are not cancelled); results are nil in that case.
func CompressBatch(t uint64, batches [][]float64) ([]Block, error) {
	if err := checkTableSize(t); err != nil {
		return nil, err
	}

	results := make([]Block, len(batches))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, values := range batches {
		i, values := i, values
		g.Go(func() error {
			block, err := Compress(t, values)
			if err != nil {
				return err
			}
			results[i] = block
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DecompressBatch decodes each of blocks independently and concurrently,
// returning decoded value slices in the same order as blocks. See
// CompressBatch for the concurrency and error-handling model.
func DecompressBatch(t uint64, blocks []Block) ([][]float64, error) {
	if err := checkTableSize(t); err != nil {
		return nil, err
	}

	results := make([][]float64, len(blocks))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, block := range blocks {
		i, block := i, block
		g.Go(func() error {
			values, err := Decompress(t, block)
			if err != nil {
				return err
			}
			results[i] = values
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
