package transform

import (
	"fmt"
	"math"
)

// ScalarFunc maps a single y value to a new y value.
type ScalarFunc func(float64) float64

// XYFunc rewrites whole series at once. Implementations receive
// equal-length input copies they are free to modify, and may return output
// slices of any (equal) length.
type XYFunc func(xIn, yIn []float64) (xOut, yOut []float64)

// Transform is a single data transform step.
//
// Transforms are plain values: copying one is cheap and copies share no
// mutable state. The zero value acts as Identity. Use [New], [NewScalar],
// or [NewXY] to construct one; at most one callback slot is ever populated
// and it never changes afterward.
type Transform struct {
	kind     Kind
	name     string
	params   Params
	scalarFn ScalarFunc
	xyFn     XYFunc
}

// New returns a built-in transform of the given kind.
//
// Parameters start from [DefaultParams] and are adjusted by opts. A Custom
// kind created this way carries no callback and behaves as Identity.
func New(kind Kind, opts ...Option) Transform {
	p := DefaultParams()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return Transform{kind: kind, params: p}
}

// NewScalar returns a custom transform applying fn to every y sample.
func NewScalar(name string, fn ScalarFunc) Transform {
	return Transform{kind: KindCustom, name: name, params: DefaultParams(), scalarFn: fn}
}

// NewXY returns a custom transform rewriting both series through fn.
func NewXY(name string, fn XYFunc) Transform {
	return Transform{kind: KindCustom, name: name, params: DefaultParams(), xyFn: fn}
}

// Kind returns the transform kind.
func (t Transform) Kind() Kind { return t.kind }

// Name returns the registry name: the canonical kind name for built-ins,
// the user-supplied name for customs.
func (t Transform) Name() string {
	if t.kind == KindCustom {
		return t.name
	}
	return t.kind.String()
}

// Params returns the current parameter set.
func (t Transform) Params() Params { return t.params }

// SetParams replaces the parameter set. Parameterized kinds (Scale,
// Offset, Clamp, FFT) read parameters at apply time, so this affects
// subsequent Apply calls.
func (t *Transform) SetParams(p Params) { t.params = p }

// Apply runs the transform over a paired series.
//
// Inputs are truncated to the shorter of the two lengths and the returned
// slices are freshly allocated, never aliasing the inputs. Empty input
// yields empty output. Apply never fails.
func (t Transform) Apply(xIn, yIn []float64) (xOut, yOut []float64) {
	switch t.kind {
	case KindIdentity:
		return applyIdentity(xIn, yIn)
	case KindLog10:
		return applyLog(xIn, yIn, math.Log10)
	case KindLn:
		return applyLog(xIn, yIn, math.Log)
	case KindAbs:
		return applyAbs(xIn, yIn)
	case KindNegate:
		return applyNegate(xIn, yIn)
	case KindNormalize:
		return applyNormalize(xIn, yIn)
	case KindStandardize:
		return applyStandardize(xIn, yIn)
	case KindDerivative:
		return applyDerivative(xIn, yIn)
	case KindCumulativeSum:
		return applyCumulativeSum(xIn, yIn)
	case KindDiff:
		return applyDiff(xIn, yIn)
	case KindScale:
		return applyScale(xIn, yIn, t.params.ScaleFactor)
	case KindOffset:
		return applyOffset(xIn, yIn, t.params.OffsetValue)
	case KindClamp:
		return applyClamp(xIn, yIn, t.params.ClampMin, t.params.ClampMax)
	case KindFFT:
		return applyFFT(xIn, yIn, t.params)
	case KindCustom:
		return t.applyCustom(xIn, yIn)
	}
	return applyIdentity(xIn, yIn)
}

func (t Transform) applyCustom(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))

	switch {
	case t.xyFn != nil:
		// The callback receives private copies, so whatever it returns
		// cannot alias the caller's slices.
		xCopy := append([]float64(nil), xIn[:n]...)
		yCopy := append([]float64(nil), yIn[:n]...)
		return t.xyFn(xCopy, yCopy)
	case t.scalarFn != nil:
		xOut := append([]float64(nil), xIn[:n]...)
		yOut := make([]float64, n)
		for i := 0; i < n; i++ {
			yOut[i] = t.scalarFn(yIn[i])
		}
		return xOut, yOut
	default:
		return applyIdentity(xIn, yIn)
	}
}

// ApplyScalar applies the transform to a single value.
//
// Only elementwise transforms support this; every other kind returns NaN.
// Log10 and Ln return NaN for non-positive input.
func (t Transform) ApplyScalar(v float64) float64 {
	if !t.IsElementwise() {
		return math.NaN()
	}

	switch t.kind {
	case KindIdentity:
		return v
	case KindLog10:
		if v > 0 {
			return math.Log10(v)
		}
		return math.NaN()
	case KindLn:
		if v > 0 {
			return math.Log(v)
		}
		return math.NaN()
	case KindAbs:
		return math.Abs(v)
	case KindNegate:
		return -v
	case KindScale:
		return v * t.params.ScaleFactor
	case KindOffset:
		return v + t.params.OffsetValue
	case KindClamp:
		return clampValue(v, t.params.ClampMin, t.params.ClampMax)
	case KindCustom:
		if t.scalarFn != nil {
			return t.scalarFn(v)
		}
		return v
	}
	return math.NaN()
}

// IsElementwise reports whether the transform maps each y sample
// independently, making [Transform.ApplyScalar] meaningful. Log10 and Ln
// count as elementwise even though they drop non-positive samples from
// series output.
func (t Transform) IsElementwise() bool {
	switch t.kind {
	case KindIdentity, KindLog10, KindLn, KindAbs, KindNegate, KindScale, KindOffset, KindClamp:
		return true
	case KindCustom:
		return t.scalarFn != nil && t.xyFn == nil
	default:
		return false
	}
}

// ChangesLength reports whether output length can differ from input
// length. This is a static property of the kind, independent of the data:
// Log10 reports true even for all-positive input.
func (t Transform) ChangesLength() bool {
	switch t.kind {
	case KindDerivative, KindDiff:
		return true
	case KindLog10, KindLn:
		// Non-positive samples are dropped.
		return true
	case KindFFT:
		// Output is N/2+1 frequency bins.
		return true
	case KindCustom:
		return t.xyFn != nil
	default:
		return false
	}
}

// Description returns a short human-readable summary, reflecting live
// parameter values for parameterized kinds.
func (t Transform) Description() string {
	switch t.kind {
	case KindIdentity:
		return "Identity (no change)"
	case KindLog10:
		return "Log10(y)"
	case KindLn:
		return "Ln(y)"
	case KindAbs:
		return "|y|"
	case KindNegate:
		return "-y"
	case KindNormalize:
		return "Normalize to [0, 1]"
	case KindStandardize:
		return "Standardize (z-score)"
	case KindDerivative:
		return "dy/dx"
	case KindCumulativeSum:
		return "Cumulative sum"
	case KindDiff:
		return "First difference"
	case KindScale:
		return fmt.Sprintf("y * %g", t.params.ScaleFactor)
	case KindOffset:
		return fmt.Sprintf("y + %g", t.params.OffsetValue)
	case KindClamp:
		return fmt.Sprintf("Clamp [%g, %g]", t.params.ClampMin, t.params.ClampMax)
	case KindFFT:
		if t.params.FFTInDB {
			return "FFT magnitude (dB)"
		}
		return "FFT magnitude"
	case KindCustom:
		return "Custom: " + t.name
	}
	return "Unknown"
}

// Apply is a one-shot convenience: build a transform of the given kind and
// run it over the series.
func Apply(xIn, yIn []float64, kind Kind, opts ...Option) (xOut, yOut []float64) {
	t := New(kind, opts...)
	return t.Apply(xIn, yIn)
}

// ApplyY transforms a bare y series. A synthetic 0, 1, 2, ... x axis is
// fabricated for transforms that consume x (such as Derivative), and only
// the transformed y series is returned.
func ApplyY(yIn []float64, kind Kind, opts ...Option) []float64 {
	xIn := make([]float64, len(yIn))
	for i := range xIn {
		xIn[i] = float64(i)
	}
	_, yOut := Apply(xIn, yIn, kind, opts...)
	return yOut
}
