package transform

import (
	"math"

	"github.com/cwbudde/algo-transform/spectrum"
)

// dbFloor replaces the magnitude in decibel output whenever the linear
// magnitude is zero, where the logarithm is undefined.
const dbFloor = -200.0

// applyFFT converts the y series into a left-sided magnitude spectrum.
// The input is zero-padded to the next power of two, transformed with
// the radix-2 kernel and reduced to the N/2+1 non-negative frequency
// bins. The x axis becomes frequency in Hz derived from the configured
// sample rate, with bin spacing rate/N for the padded length N.
func applyFFT(xIn, yIn []float64, p Params) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	if n == 0 {
		return nil, nil
	}

	size := spectrum.NextPow2(n)
	buf := make([]complex128, size)
	for i := 0; i < n; i++ {
		buf[i] = complex(yIn[i], 0)
	}

	spectrum.Radix2(buf)
	mag := spectrum.LeftSidedMagnitude(buf)

	rate := p.FFTSampleRate
	if rate <= 0 {
		rate = 1.0
	}
	freqStep := rate / float64(size)

	xOut := make([]float64, len(mag))
	for i := range xOut {
		xOut[i] = float64(i) * freqStep
	}

	if !p.FFTInDB {
		return xOut, mag
	}

	for i, m := range mag {
		if m > 0 {
			mag[i] = 20 * math.Log10(m)
		} else {
			mag[i] = dbFloor
		}
	}

	return xOut, mag
}
