package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrismooredev/cesu8str/errs"
	"github.com/chrismooredev/cesu8str/format"
)

// TestValid verifies the predicate agrees with Decode for well-formed
// and malformed buffers
func TestValid(t *testing.T) {
	require.True(t, Valid([]byte("ascii"), format.VariantStandard))
	require.True(t, Valid([]byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, format.VariantStandard))
	require.True(t, Valid([]byte{0xC0, 0x80}, format.VariantJava))
	require.True(t, Valid(nil, format.VariantStandard))

	require.False(t, Valid([]byte{0xC0, 0x80}, format.VariantStandard))
	require.False(t, Valid([]byte{0x00}, format.VariantJava))
	require.False(t, Valid([]byte{0xED, 0xA0, 0xBD}, format.VariantStandard))
	require.False(t, Valid([]byte{0xF0, 0x9F, 0x98, 0x80}, format.VariantStandard))
}

// TestCheck verifies the error-returning form reports the same sentinel
// and offset that Decode would
func TestCheck(t *testing.T) {
	require.NoError(t, Check([]byte("fine"), format.VariantJava))

	err := Check([]byte{'a', 'b', 0xED, 0xB8, 0x80}, format.VariantStandard)
	require.ErrorIs(t, err, errs.ErrUnpairedSurrogate)

	var derr *errs.DecodeError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, 2, derr.Offset)
}

// TestRuneCount verifies scalar values are counted with surrogate pairs
// collapsing to one
func TestRuneCount(t *testing.T) {
	// "a" + U+1F600 as a surrogate pair: 7 bytes, 2 scalar values.
	src := append([]byte{'a'}, 0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80)

	n, err := RuneCount(src, format.VariantStandard)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Java null escape: 2 bytes, 1 scalar value.
	n, err = RuneCount([]byte{0xC0, 0x80}, format.VariantJava)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = RuneCount(nil, format.VariantStandard)
	require.NoError(t, err)
	require.Zero(t, n)
}

// TestRuneCount_Invalid verifies counting fails with the decoder's error
// on malformed input
func TestRuneCount_Invalid(t *testing.T) {
	n, err := RuneCount([]byte{'a', 0xFF}, format.VariantStandard)
	require.Zero(t, n)
	require.ErrorIs(t, err, errs.ErrInvalidSequence)
}
