package transform

// Kind identifies a built-in transform operation.
type Kind int

const (
	KindIdentity Kind = iota
	KindLog10
	KindLn
	KindAbs
	KindNegate
	KindNormalize
	KindStandardize
	KindDerivative
	KindCumulativeSum
	KindDiff
	KindScale
	KindOffset
	KindClamp
	KindFFT
	KindCustom
)

// String returns the canonical registry name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindLog10:
		return "Log10"
	case KindLn:
		return "Ln"
	case KindAbs:
		return "Abs"
	case KindNegate:
		return "Negate"
	case KindNormalize:
		return "Normalize"
	case KindStandardize:
		return "Standardize"
	case KindDerivative:
		return "Derivative"
	case KindCumulativeSum:
		return "CumulativeSum"
	case KindDiff:
		return "Diff"
	case KindScale:
		return "Scale"
	case KindOffset:
		return "Offset"
	case KindClamp:
		return "Clamp"
	case KindFFT:
		return "FFT"
	case KindCustom:
		return "Custom"
	}
	return "Unknown"
}

// builtinKinds resolves canonical names for kinds that can be instantiated
// by name. Custom is deliberately absent: custom transforms are resolved
// through a [Registry].
var builtinKinds = map[string]Kind{
	"Identity":      KindIdentity,
	"Log10":         KindLog10,
	"Ln":            KindLn,
	"Abs":           KindAbs,
	"Negate":        KindNegate,
	"Normalize":     KindNormalize,
	"Standardize":   KindStandardize,
	"Derivative":    KindDerivative,
	"CumulativeSum": KindCumulativeSum,
	"Diff":          KindDiff,
	"Scale":         KindScale,
	"Offset":        KindOffset,
	"Clamp":         KindClamp,
	"FFT":           KindFFT,
}

// ParseKind resolves a canonical kind name. Matching is exact and
// case-sensitive.
func ParseKind(name string) (Kind, bool) {
	k, ok := builtinKinds[name]
	return k, ok
}

// Kinds returns the built-in kinds in canonical listing order.
func Kinds() []Kind {
	return []Kind{
		KindIdentity,
		KindLog10,
		KindLn,
		KindAbs,
		KindNegate,
		KindNormalize,
		KindStandardize,
		KindDerivative,
		KindCumulativeSum,
		KindDiff,
		KindScale,
		KindOffset,
		KindClamp,
		KindFFT,
	}
}
