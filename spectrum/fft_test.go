package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-transform/internal/testutil"
)

func toComplex(signal []float64) []complex128 {
	out := make([]complex128, len(signal))
	for i, v := range signal {
		out[i] = complex(v, 0)
	}
	return out
}

func parts(in []complex128) (re, im []float64) {
	re = make([]float64, len(in))
	im = make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// naiveDFT is the O(n^2) reference definition of the transform.
func naiveDFT(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for i := 0; i < n; i++ {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sum += in[i] * complex(math.Cos(angle), math.Sin(angle))
		}
		out[k] = sum
	}
	return out
}

func TestNextPow2(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1023, 1024},
		{1024, 1024},
	}
	for _, tc := range cases {
		if got := NextPow2(tc.in); got != tc.want {
			t.Fatalf("NextPow2(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRadix2ShortBuffers(t *testing.T) {
	t.Parallel()

	Radix2(nil)

	single := []complex128{5 + 2i}
	Radix2(single)
	if single[0] != 5+2i {
		t.Fatalf("length-1 buffer modified: %v", single[0])
	}
}

func TestRadix2Impulse(t *testing.T) {
	t.Parallel()

	buf := toComplex(testutil.Impulse(16, 0))
	Radix2(buf)

	for k, bin := range buf {
		if cmplx.Abs(bin-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1+0i", k, bin)
		}
	}
}

func TestRadix2ShiftedImpulseFlatMagnitude(t *testing.T) {
	t.Parallel()

	buf := toComplex(testutil.Impulse(32, 5))
	Radix2(buf)

	for k, bin := range buf {
		if math.Abs(cmplx.Abs(bin)-1) > 1e-12 {
			t.Fatalf("|bin %d| = %v, want 1", k, cmplx.Abs(bin))
		}
	}
}

func TestRadix2DC(t *testing.T) {
	t.Parallel()

	buf := toComplex(testutil.DC(3, 8))
	Radix2(buf)

	if cmplx.Abs(buf[0]-24) > 1e-12 {
		t.Fatalf("DC bin = %v, want 24", buf[0])
	}
	for k := 1; k < len(buf); k++ {
		if cmplx.Abs(buf[k]) > 1e-12 {
			t.Fatalf("bin %d = %v, want 0", k, buf[k])
		}
	}
}

func TestRadix2SingleToneBin(t *testing.T) {
	t.Parallel()

	const size = 64
	const bin = 8

	buf := toComplex(testutil.DeterministicSine(bin, size, 1.0, size))
	Radix2(buf)

	// A bin-centered unit sine concentrates at +/- the tone bin with
	// magnitude N/2 each.
	for k := range buf {
		mag := cmplx.Abs(buf[k])
		switch k {
		case bin, size - bin:
			if math.Abs(mag-size/2) > 1e-9 {
				t.Fatalf("|bin %d| = %v, want %v", k, mag, float64(size/2))
			}
		default:
			if mag > 1e-9 {
				t.Fatalf("|bin %d| = %v, want 0", k, mag)
			}
		}
	}
}

func TestRadix2MatchesNaiveDFT(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 2, 4, 8, 16, 32, 64} {
		signal := testutil.DeterministicNoise(int64(size), 1.0, size)

		got := toComplex(signal)
		Radix2(got)
		want := naiveDFT(toComplex(signal))

		for k := range got {
			if cmplx.Abs(got[k]-want[k]) > 1e-9 {
				t.Fatalf("size %d bin %d: got %v, want %v", size, k, got[k], want[k])
			}
		}
	}
}

func TestRadix2MatchesReferencePlan(t *testing.T) {
	t.Parallel()

	for _, size := range []int{2, 4, 8, 16, 64, 256, 1024, 4096} {
		t.Run(fmt.Sprintf("%d", size), func(t *testing.T) {
			t.Parallel()

			signal := testutil.DeterministicNoise(int64(size), 1.0, size)

			got := toComplex(signal)
			Radix2(got)

			plan, err := algofft.NewPlan64(size)
			if err != nil {
				t.Fatalf("NewPlan64(%d): %v", size, err)
			}
			want := make([]complex128, size)
			if err := plan.Forward(want, toComplex(signal)); err != nil {
				t.Fatalf("Forward: %v", err)
			}

			gotRe, gotIm := parts(got)
			wantRe, wantIm := parts(want)

			dRe, err := testutil.MaxAbsDiff(gotRe, wantRe)
			if err != nil {
				t.Fatalf("MaxAbsDiff: %v", err)
			}
			dIm, err := testutil.MaxAbsDiff(gotIm, wantIm)
			if err != nil {
				t.Fatalf("MaxAbsDiff: %v", err)
			}

			if dRe > 1e-7 || dIm > 1e-7 {
				t.Fatalf("deviation from reference plan: re %v, im %v", dRe, dIm)
			}
		})
	}
}

func TestRadix2RoundTripWithReferenceInverse(t *testing.T) {
	t.Parallel()

	const size = 512
	signal := testutil.DeterministicSine(7, size, 0.8, size)

	buf := toComplex(signal)
	Radix2(buf)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}
	recovered := make([]complex128, size)
	if err := plan.Inverse(recovered, buf); err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	re, im := parts(recovered)
	testutil.RequireSliceNearlyEqual(t, re, signal, 1e-9)
	testutil.RequireSliceNearlyEqual(t, im, make([]float64, size), 1e-9)
}

func TestRadix2Linearity(t *testing.T) {
	t.Parallel()

	const size = 128
	const a, b = 2.5, -1.25

	x := testutil.DeterministicNoise(11, 1.0, size)
	y := testutil.DeterministicNoise(23, 1.0, size)

	mixed := make([]complex128, size)
	for i := range mixed {
		mixed[i] = complex(a*x[i]+b*y[i], 0)
	}
	Radix2(mixed)

	fx := toComplex(x)
	fy := toComplex(y)
	Radix2(fx)
	Radix2(fy)

	for k := range mixed {
		want := complex(a, 0)*fx[k] + complex(b, 0)*fy[k]
		if cmplx.Abs(mixed[k]-want) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, mixed[k], want)
		}
	}
}
