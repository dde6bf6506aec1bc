package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrismooredev/cesu8str/format"
)

// TestEncode_ZeroCopyFastPath verifies ASCII/BMP input is returned as the
// same buffer, not a copy
func TestEncode_ZeroCopyFastPath(t *testing.T) {
	src := []byte("hello, 世界! café")

	out := Encode(src, format.VariantStandard)
	require.Same(t, &src[0], &out[0])
	require.Equal(t, src, out)

	out = Encode(src, format.VariantJava)
	require.Same(t, &src[0], &out[0])
}

// TestEncode_SupplementaryCodePoint verifies U+1F600 becomes the expected
// surrogate pair bytes
func TestEncode_SupplementaryCodePoint(t *testing.T) {
	src := []byte("\U0001F600") // F0 9F 98 80
	require.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, src)

	out := Encode(src, format.VariantStandard)
	// High surrogate 0xD83D, low surrogate 0xDE00, each as a three-byte
	// sequence.
	require.Equal(t, []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, out)

	// Same bytes under the Java variant; the variants differ only in
	// null handling.
	require.Equal(t, out, Encode(src, format.VariantJava))
}

// TestEncode_NullEscape verifies the null byte is rewritten only under
// the Java variant
func TestEncode_NullEscape(t *testing.T) {
	src := []byte{0x00}

	out := Encode(src, format.VariantJava)
	require.Equal(t, []byte{0xC0, 0x80}, out)

	// Standard CESU-8 keeps the null byte as-is, zero-copy.
	out = Encode(src, format.VariantStandard)
	require.Same(t, &src[0], &out[0])
	require.Equal(t, []byte{0x00}, out)
}

// TestEncode_MixedContent verifies unaffected runs are copied verbatim
// around rewritten units
func TestEncode_MixedContent(t *testing.T) {
	src := []byte("a\U0001F600b\x00c")

	out := Encode(src, format.VariantStandard)
	require.Equal(t, []byte{
		'a',
		0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80,
		'b', 0x00, 'c',
	}, out)

	out = Encode(src, format.VariantJava)
	require.Equal(t, []byte{
		'a',
		0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80,
		'b', 0xC0, 0x80, 'c',
	}, out)
}

// TestEncode_GrowthBound verifies len(encode(b)) <= len(b) + 2*supplementary
// (+1 per null for the Java variant)
func TestEncode_GrowthBound(t *testing.T) {
	cases := []struct {
		input         string
		supplementary int
		nulls         int
	}{
		{"plain ascii", 0, 0},
		{"\U0001F600\U0001F680", 2, 0},
		{"a\x00b\x00", 0, 2},
		{"\U0010FFFF x \x00", 1, 1},
	}

	for _, tc := range cases {
		src := []byte(tc.input)

		out := Encode(src, format.VariantStandard)
		require.LessOrEqual(t, len(out), len(src)+2*tc.supplementary)

		out = Encode(src, format.VariantJava)
		require.LessOrEqual(t, len(out), len(src)+2*tc.supplementary+tc.nulls)
	}
}

// TestEncode_MaxCodePoint verifies U+10FFFF round-trips through the
// highest surrogate pair
func TestEncode_MaxCodePoint(t *testing.T) {
	src := []byte("\U0010FFFF")

	out := Encode(src, format.VariantStandard)
	// High surrogate 0xDBFF, low surrogate 0xDFFF.
	require.Equal(t, []byte{0xED, 0xAF, 0xBF, 0xED, 0xBF, 0xBF}, out)

	back, err := Decode(out, format.VariantStandard)
	require.NoError(t, err)
	require.Equal(t, src, back)
}

// TestEncode_TruncatedTail verifies a four-byte lead cut off by the end
// of the buffer passes through verbatim instead of being read out of
// bounds (encoder precondition violation; output unspecified but safe)
func TestEncode_TruncatedTail(t *testing.T) {
	src := []byte{'a', 0xF0, 0x9F}

	out := Encode(src, format.VariantStandard)
	require.Equal(t, src, out)
}

// TestEncode_Empty verifies the empty buffer is returned unchanged
func TestEncode_Empty(t *testing.T) {
	out := Encode(nil, format.VariantStandard)
	require.Nil(t, out)

	out = Encode([]byte{}, format.VariantJava)
	require.Empty(t, out)
}

// TestCompatible verifies the needs-no-rewriting predicate for both
// variants
func TestCompatible(t *testing.T) {
	require.True(t, Compatible([]byte("ascii and 世界"), format.VariantStandard))
	require.True(t, Compatible([]byte("ascii and 世界"), format.VariantJava))

	// Supplementary code points always need rewriting.
	require.False(t, Compatible([]byte("\U0001F600"), format.VariantStandard))
	require.False(t, Compatible([]byte("\U0001F600"), format.VariantJava))

	// Null bytes only matter for the Java variant.
	require.True(t, Compatible([]byte{'a', 0x00}, format.VariantStandard))
	require.False(t, Compatible([]byte{'a', 0x00}, format.VariantJava))
}
