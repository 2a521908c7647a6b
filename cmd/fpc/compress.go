package main

import (
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	fpc "github.com/su225/fpc-compression"
	"github.com/su225/fpc-compression/compress"
	"github.com/su225/fpc-compression/endian"
	"github.com/su225/fpc-compression/framing"
)

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open input %q", path)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create output %q", path)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func readFloat64Stream(r io.Reader) ([]float64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	if len(raw)%8 != 0 {
		return nil, errors.Errorf("input length %d is not a multiple of 8 bytes", len(raw))
	}

	engine := endian.GetLittleEndianEngine()
	values := make([]float64, len(raw)/8)
	for i := range values {
		bits := engine.Uint64(raw[i*8 : i*8+8])
		values[i] = math.Float64frombits(bits)
	}
	return values, nil
}

func runCompress(args []string) error {
	fs, in, out, tableSize, codecName := newFlagSet("compress")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}

	start := time.Now()

	inFile, err := openInput(*in)
	if err != nil {
		return err
	}
	defer inFile.Close()

	values, err := readFloat64Stream(inFile)
	if err != nil {
		return err
	}

	block, err := fpc.Compress(*tableSize, values)
	if err != nil {
		return errors.Wrap(err, "compress")
	}

	framed := framing.Encode(block)

	codec, err := resolveCodec(*codecName)
	if err != nil {
		return err
	}
	payload, err := codec.Compress(framed)
	if err != nil {
		return errors.Wrap(err, "secondary compress")
	}

	outFile, err := openOutput(*out)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := outFile.Write(payload); err != nil {
		return errors.Wrap(err, "write output")
	}

	logger.Info("compressed",
		"values", len(values),
		"table_size", *tableSize,
		"codec", *codecName,
		"input_bytes", len(values)*8,
		"output_bytes", len(payload),
		"elapsed", time.Since(start),
	)
	return nil
}

func resolveCodec(name string) (compress.Codec, error) {
	switch name {
	case "", "none":
		return compress.NewNoOpCompressor(), nil
	case "s2":
		return compress.NewS2Compressor(), nil
	case "lz4":
		return compress.NewLZ4Compressor(), nil
	case "zstd":
		return compress.NewZstdCompressor(), nil
	default:
		return nil, errors.Errorf("unknown codec %q", name)
	}
}
