package spectrum

import (
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-transform/internal/testutil"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
}

func BenchmarkRadix2(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			src := toComplex(testutil.DeterministicNoise(1, 1.0, testCase.size))
			work := make([]complex128, testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				copy(work, src)
				Radix2(work)
			}
		})
	}
}

// Benchmark the external FFT plan for comparison.
func BenchmarkReferencePlanForward(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			src := toComplex(testutil.DeterministicNoise(1, 1.0, testCase.size))
			dst := make([]complex128, testCase.size)

			plan, err := algofft.NewPlan64(testCase.size)
			if err != nil {
				b.Fatalf("NewPlan64(%d): %v", testCase.size, err)
			}

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				if err := plan.Forward(dst, src); err != nil {
					b.Fatalf("Forward: %v", err)
				}
			}
		})
	}
}

func BenchmarkLeftSidedMagnitude(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			buf := toComplex(testutil.DeterministicNoise(1, 1.0, testCase.size))
			Radix2(buf)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = LeftSidedMagnitude(buf)
			}
		})
	}
}
