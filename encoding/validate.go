package encoding

import (
	"github.com/chrismooredev/cesu8str/format"
)

// Check validates src against the source variant's grammar without
// producing output. It runs the same scan as Decode and returns the
// first *errs.DecodeError encountered, or nil when src is well-formed.
func Check(src []byte, v format.Variant) error {
	for i := 0; i < len(src); {
		_, size, _, derr := decodeUnit(src, i, v)
		if derr != nil {
			return derr
		}
		i += size
	}

	return nil
}

// Valid reports whether src is well-formed in the source variant.
// It is the predicate form of Check and allocates nothing.
func Valid(src []byte, v format.Variant) bool {
	return Check(src, v) == nil
}

// RuneCount returns the number of Unicode scalar values encoded in src,
// validating as it scans. A surrogate pair counts as one scalar value.
// The byte length of src is available to callers as len(src); the two
// together describe the raw-bytes versus code-points shape of a buffer.
func RuneCount(src []byte, v format.Variant) (int, error) {
	n := 0
	for i := 0; i < len(src); {
		_, size, _, derr := decodeUnit(src, i, v)
		if derr != nil {
			return 0, derr
		}
		n++
		i += size
	}

	return n, nil
}
