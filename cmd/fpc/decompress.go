package main

import (
	"io"
	"math"
	"time"

	"github.com/pkg/errors"

	fpc "github.com/su225/fpc-compression"
	"github.com/su225/fpc-compression/endian"
	"github.com/su225/fpc-compression/framing"
)

func writeFloat64Stream(w io.Writer, values []float64) error {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}
	_, err := w.Write(buf)
	return err
}

func runDecompress(args []string) error {
	fs, in, out, tableSize, codecName := newFlagSet("decompress")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}

	start := time.Now()

	inFile, err := openInput(*in)
	if err != nil {
		return err
	}
	defer inFile.Close()

	payload, err := io.ReadAll(inFile)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	codec, err := resolveCodec(*codecName)
	if err != nil {
		return err
	}
	framed, err := codec.Decompress(payload)
	if err != nil {
		return errors.Wrap(err, "secondary decompress")
	}

	block, err := framing.Decode(framed)
	if err != nil {
		return errors.Wrap(err, "decode framing")
	}

	values, err := fpc.Decompress(*tableSize, block)
	if err != nil {
		return errors.Wrap(err, "decompress")
	}

	outFile, err := openOutput(*out)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if err := writeFloat64Stream(outFile, values); err != nil {
		return errors.Wrap(err, "write output")
	}

	logger.Info("decompressed",
		"values", len(values),
		"table_size", *tableSize,
		"codec", *codecName,
		"input_bytes", len(payload),
		"output_bytes", len(values)*8,
		"elapsed", time.Since(start),
	)
	return nil
}
