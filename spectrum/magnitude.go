package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// LeftSidedMagnitude extracts the one-sided magnitude spectrum from a full
// complex FFT buffer of power-of-two length N (the [Radix2] contract).
//
// The result holds N/2+1 bins covering DC through Nyquist. Magnitudes are
// normalized by 1/N, and bins strictly between DC and Nyquist are doubled to
// fold in the energy of the mirrored negative frequencies, so a full-scale
// sine centered on a bin reads as its amplitude. Scratch buffers are pooled
// internally; in steady state only the output slice is allocated.
func LeftSidedMagnitude(buf []complex128) []float64 {
	n := len(buf)
	if n == 0 {
		return nil
	}

	half := n / 2
	bins := half + 1

	out := make([]float64, bins)
	re, im, scratch := getScratch(bins)

	for i := 0; i < bins; i++ {
		re[i] = real(buf[i])
		im[i] = imag(buf[i])
	}

	vecmath.Magnitude(out, re, im)
	putScratch(scratch)

	invN := 1 / float64(n)
	for i := range out {
		out[i] *= invN
		if i > 0 && i < half {
			out[i] *= 2
		}
	}

	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// SIMD-optimized implementations are used when available. Scratch buffers
// are pooled internally, so in steady state this allocates only the output
// slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)

	return out
}
