// Package stream runs the codec over io.Reader/io.Writer pairs in fixed
// size chunks, so the command-line tool can transcode arbitrarily large
// files without buffering them whole.
//
// The codec itself only operates on complete buffers; this package's job
// is to never hand it a buffer that ends mid-unit. Between reads it
// holds back an incomplete trailing sequence and, when decoding, a
// complete high-surrogate unit still waiting for its low half. At EOF
// the held-back tail is flushed through the codec so truncation errors
// surface with correct absolute offsets.
package stream

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/chrismooredev/cesu8str/encoding"
	"github.com/chrismooredev/cesu8str/errs"
	"github.com/chrismooredev/cesu8str/format"
)

// Direction selects which way the transcoder rewrites bytes.
type Direction uint8

const (
	DirectionEncode Direction = 0x1 // DirectionEncode converts UTF-8 to the target variant.
	DirectionDecode Direction = 0x2 // DirectionDecode converts the source variant to UTF-8.
)

func (d Direction) String() string {
	switch d {
	case DirectionEncode:
		return "Encode"
	case DirectionDecode:
		return "Decode"
	default:
		return "Unknown"
	}
}

// DefaultChunkSize is the read buffer size used when no override is given.
const DefaultChunkSize = 4096

// Transcoder pumps bytes from a reader to a writer through the codec.
// It carries no state between Run calls and may be reused.
type Transcoder struct {
	variant format.Variant
	dir     Direction
	chunk   int
	logger  *zap.Logger
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithChunkSize overrides the read buffer size. Values below 16 bytes
// are ignored; the held-back tail alone can occupy six bytes.
func WithChunkSize(n int) Option {
	return func(t *Transcoder) {
		if n >= 16 {
			t.chunk = n
		}
	}
}

// WithLogger attaches a logger for per-chunk debug output. The default
// is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Transcoder) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranscoder creates a Transcoder for the given variant and direction.
func NewTranscoder(v format.Variant, dir Direction, opts ...Option) *Transcoder {
	t := &Transcoder{
		variant: v,
		dir:     dir,
		chunk:   DefaultChunkSize,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Run copies r to w, transcoding as it goes, until EOF or the first
// error. Encoding errors are returned as *errs.DecodeError with offsets
// absolute in the input stream; read and write failures are wrapped with
// their operation.
func (t *Transcoder) Run(r io.Reader, w io.Writer) error {
	buf := make([]byte, t.chunk)
	fill := 0     // bytes held over from the previous iteration
	consumed := 0 // input bytes fully transcoded so far

	for {
		n, rerr := r.Read(buf[fill:])
		fill += n
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return fmt.Errorf("read: %w", rerr)
		}
		atEOF := rerr != nil

		boundary := fill
		if !atEOF {
			boundary = completeBoundary(buf[:fill], t.dir)
			if boundary == 0 && fill == len(buf) {
				// The whole buffer is one unfinishable run; push it
				// through so the codec reports the error.
				boundary = fill
			}
		}

		if boundary > 0 {
			if held := fill - boundary; held > 0 {
				t.logger.Debug("holding incomplete tail",
					zap.Int("bytes", held),
					zap.Int("offset", consumed+boundary))
			}

			var out []byte
			if t.dir == DirectionDecode {
				var err error
				out, err = encoding.Decode(buf[:boundary], t.variant)
				if err != nil {
					return absoluteOffset(err, consumed)
				}
			} else {
				out = encoding.Encode(buf[:boundary], t.variant)
			}

			if _, werr := w.Write(out); werr != nil {
				return fmt.Errorf("write: %w", werr)
			}
			consumed += boundary
			fill = copy(buf, buf[boundary:fill])
		}

		if atEOF {
			return nil
		}
	}
}

// absoluteOffset rebases a codec error's buffer-relative offset onto the
// running input stream position.
func absoluteOffset(err error, base int) error {
	var derr *errs.DecodeError
	if errors.As(err, &derr) {
		return &errs.DecodeError{Err: derr.Err, Offset: base + derr.Offset}
	}

	return err
}

// completeBoundary returns the length of the longest prefix of buf that
// can be transcoded without seeing more input.
//
// It backs up over a trailing partial multi-byte sequence, and in the
// decode direction additionally holds back a complete trailing
// high-surrogate unit, whose low half may begin the next chunk. Byte
// runs that can never become valid are left in place for the codec to
// reject.
func completeBoundary(buf []byte, dir Direction) int {
	n := len(buf)
	if n == 0 {
		return 0
	}

	// Locate the lead byte of the last unit: at most three continuation
	// bytes can precede it.
	start := n - 1
	for back := 0; back < 3 && start > 0 && buf[start]&0xC0 == 0x80; back++ {
		start--
	}

	need := 1
	switch c := buf[start]; {
	case c&0xC0 == 0x80:
		// Nothing but continuation bytes; malformed regardless of what
		// follows, so let the codec see it.
		need = 1
	case c >= 0xC0 && c < 0xE0:
		need = 2
	case c >= 0xE0 && c < 0xF0:
		need = 3
	case c >= 0xF0 && c < 0xF8:
		need = 4
	}

	end := n
	if start+need > n {
		end = start
	}

	if dir == DirectionDecode && end >= 3 &&
		buf[end-3] == 0xED && buf[end-2]&0xF0 == 0xA0 {
		// Trailing unit is a complete high surrogate; its low half must
		// pair with it in the same codec call.
		end -= 3
	}

	return end
}
