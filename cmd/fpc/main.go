// Command fpc compresses and decompresses a flat stream of little-endian
// float64 values using the fpc core, framed per the framing package and
// optionally passed through a secondary compress.Codec.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var logger = slog.Default()

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: fpc [compress|decompress] [OPTION]...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  compress   -in FILE -out FILE [-table-size N] [-codec none|s2|lz4|zstd]")
	fmt.Fprintln(os.Stderr, "  decompress -in FILE -out FILE [-table-size N] [-codec none|s2|lz4|zstd]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "-in/-out default to stdin/stdout when omitted.")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	subcommand := os.Args[1]
	args := os.Args[2:]

	var run func([]string) error
	switch subcommand {
	case "compress":
		run = runCompress
	case "decompress":
		run = runDecompress
	default:
		usage()
		os.Exit(2)
	}

	if err := run(args); err != nil {
		slog.Error("fpc command failed", "subcommand", subcommand, "error", err)
		os.Exit(1)
	}
}

func newFlagSet(name string) (*flag.FlagSet, *string, *string, *uint64, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	in := fs.String("in", "", "input file path (default stdin)")
	out := fs.String("out", "", "output file path (default stdout)")
	tableSize := fs.Uint64("table-size", 1024, "FCM/DFCM predictor table size (power of two)")
	codec := fs.String("codec", "none", "secondary compression: none, s2, lz4, zstd")
	return fs, in, out, tableSize, codec
}
