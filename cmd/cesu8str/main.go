// cesu8str converts files or standard IO streams between standard UTF-8
// and CESU-8, or the JVM's Modified UTF-8.
//
// The tool exits immediately upon finding an invalid character sequence,
// reporting the byte offset of the first offending unit.
//
// Exit codes:
//
//	0 - completed normally
//	1 - an IO or usage error occurred
//	2 - an encoding error occurred (invalid/incomplete character sequences)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/chrismooredev/cesu8str/encoding"
	"github.com/chrismooredev/cesu8str/errs"
	"github.com/chrismooredev/cesu8str/format"
	"github.com/chrismooredev/cesu8str/internal/stream"
)

const (
	exitSuccess  = 0
	exitErrIO    = 1
	exitErrCodec = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// commonFlags holds the flags shared by every subcommand.
type commonFlags struct {
	java    bool
	input   string
	output  string
	chunk   int
	verbose bool
}

func registerCommon(fs *pflag.FlagSet, cf *commonFlags, withOutput bool) {
	fs.BoolVarP(&cf.java, "java", "j", false,
		"use the JVM's Modified UTF-8: nul bytes are (en|de)coded as 0xC0,0x80")
	fs.StringVarP(&cf.input, "input", "i", "",
		"input file; defaults to stdin if '-' or not set")
	if withOutput {
		fs.StringVarP(&cf.output, "output", "o", "",
			"output file; defaults to stdout if '-' or not set")
	}
	fs.IntVar(&cf.chunk, "chunk", stream.DefaultChunkSize, "IO chunk size in bytes")
	fs.BoolVarP(&cf.verbose, "verbose", "v", false, "enable debug logging to stderr")
}

func (cf *commonFlags) variant() format.Variant {
	if cf.java {
		return format.VariantJava
	}

	return format.VariantStandard
}

func (cf *commonFlags) newLogger() *zap.Logger {
	// CESU8_DEBUG mirrors the --verbose flag for environments where
	// editing the invocation is awkward.
	if !cf.verbose && os.Getenv("CESU8_DEBUG") == "" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitErrIO
	}

	switch args[0] {
	case "encode":
		return runTranscode(args[1:], stream.DirectionEncode, stdin, stdout, stderr)
	case "decode":
		return runTranscode(args[1:], stream.DirectionDecode, stdin, stdout, stderr)
	case "count":
		return runCount(args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		usage(stderr)
		return exitSuccess
	default:
		fmt.Fprintf(stderr, "cesu8str: unknown subcommand %q\n", args[0])
		usage(stderr)
		return exitErrIO
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Converts files or standard IO streams between standard UTF-8 and CESU-8,
or the JVM's Modified UTF-8.

Usage:
  cesu8str encode [-j] [-i FILE] [-o FILE]   UTF-8 -> CESU-8 / Modified UTF-8
  cesu8str decode [-j] [-i FILE] [-o FILE]   CESU-8 / Modified UTF-8 -> UTF-8
  cesu8str count  [-j] [-i FILE]             report bytes vs. code points

Files ending in .gz are (de)compressed transparently. '-' or an absent
file means stdin/stdout. The tool exits immediately upon finding an
invalid character sequence.

Exit codes:
  0 - completed normally
  1 - an IO error occurred
  2 - an encoding error occurred (invalid/incomplete character sequences)
`)
}

func runTranscode(args []string, dir stream.Direction, stdin io.Reader, stdout, stderr io.Writer) int {
	var cf commonFlags
	fs := pflag.NewFlagSet(strings.ToLower(dir.String()), pflag.ContinueOnError)
	fs.SetOutput(stderr)
	registerCommon(fs, &cf, true)
	if err := fs.Parse(args); err != nil {
		return exitErrIO
	}

	logger := cf.newLogger()
	defer logger.Sync() //nolint:errcheck

	in, closeIn, err := openInput(cf.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "cesu8str: error while opening input file for reading:\n%v\n", err)
		return exitErrIO
	}
	defer closeIn()

	out, closeOut, err := openOutput(cf.output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "cesu8str: error while creating output file for writing:\n%v\n", err)
		return exitErrIO
	}

	t := stream.NewTranscoder(cf.variant(), dir,
		stream.WithChunkSize(cf.chunk),
		stream.WithLogger(logger))

	logger.Debug("transcoding",
		zap.String("direction", dir.String()),
		zap.String("variant", cf.variant().String()),
		zap.Int("chunk", cf.chunk))

	if err := t.Run(in, out); err != nil {
		closeOut() //nolint:errcheck
		return reportError(stderr, err)
	}
	if err := closeOut(); err != nil {
		fmt.Fprintf(stderr, "cesu8str: error while finishing output file:\n%v\n", err)
		return exitErrIO
	}

	return exitSuccess
}

func runCount(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cf commonFlags
	fs := pflag.NewFlagSet("count", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	registerCommon(fs, &cf, false)
	if err := fs.Parse(args); err != nil {
		return exitErrIO
	}

	logger := cf.newLogger()
	defer logger.Sync() //nolint:errcheck

	in, closeIn, err := openInput(cf.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "cesu8str: error while opening input file for reading:\n%v\n", err)
		return exitErrIO
	}
	defer closeIn()

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(stderr, "cesu8str: error while reading input:\n%v\n", err)
		return exitErrIO
	}

	variant := cf.variant()
	runes, err := encoding.RuneCount(data, variant)
	if err != nil {
		return reportError(stderr, err)
	}

	// The decode cannot fail after RuneCount succeeded; the digest
	// covers the decoded UTF-8 so it is stable across variants.
	decoded, _ := encoding.Decode(data, variant)

	fmt.Fprintf(stdout, "bytes:       %d\n", len(data))
	fmt.Fprintf(stdout, "code points: %d\n", runes)
	fmt.Fprintf(stdout, "xxh64:       %016x\n", xxhash.Sum64(decoded))

	return exitSuccess
}

// reportError prints err and maps it to an exit code: codec errors
// (carrying a byte offset) exit 2, everything else exits 1.
func reportError(stderr io.Writer, err error) int {
	var derr *errs.DecodeError
	if errors.As(err, &derr) {
		fmt.Fprintf(stderr, "cesu8str: %v\n", derr)
		return exitErrCodec
	}
	fmt.Fprintf(stderr, "cesu8str: %v\n", err)

	return exitErrIO
}

// openInput resolves the --input flag to a reader. Files ending in .gz
// are decompressed transparently.
func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(name, ".gz") {
		return f, func() { f.Close() }, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return zr, func() {
		zr.Close()
		f.Close()
	}, nil
}

// openOutput resolves the --output flag to a writer plus a close
// function that flushes any compression trailer.
func openOutput(name string, stdout io.Writer) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(name, ".gz") {
		return f, f.Close, nil
	}

	zw := gzip.NewWriter(f)

	return zw, func() error {
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}

		return f.Close()
	}, nil
}
