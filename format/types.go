package format

// Variant selects the target encoding for transcoding operations.
//
// CESU-8 and Modified UTF-8 share the same surrogate-pair representation
// for supplementary code points; they differ only in how the null code
// point is represented. The variant is consulted at that single decision
// point.
type Variant uint8

const (
	VariantStandard Variant = 0x1 // VariantStandard represents standard CESU-8.
	VariantJava     Variant = 0x2 // VariantJava represents the JVM's Modified UTF-8.
)

func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "CESU-8"
	case VariantJava:
		return "Modified UTF-8"
	default:
		return "Unknown"
	}
}

// IsValid reports whether v is a recognized encoding variant.
func (v Variant) IsValid() bool {
	return v == VariantStandard || v == VariantJava
}
