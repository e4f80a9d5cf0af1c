package spectrum

import "math"

// NextPow2 returns the smallest power of two >= n. Returns 1 for n <= 0.
func NextPow2(n int) int {
	if n <= 0 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Radix2 performs an in-place iterative radix-2 decimation-in-time FFT.
//
// len(buf) must be a power of two; callers zero-pad with [NextPow2] first.
// Buffers of length 0 or 1 are left untouched. The transform is
// unnormalized: a length-N buffer of constant value c produces N*c in the
// DC bin.
func Radix2(buf []complex128) {
	n := len(buf)
	if n < 2 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit

		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	// Butterfly stages. The running twiddle w is rotated incrementally by
	// the stage root wn instead of calling sin/cos per butterfly.
	for length := 2; length <= n; length <<= 1 {
		angle := -2 * math.Pi / float64(length)
		wn := complex(math.Cos(angle), math.Sin(angle))
		half := length >> 1

		for start := 0; start < n; start += length {
			w := complex(1, 0)
			for k := start; k < start+half; k++ {
				u := buf[k]
				v := buf[k+half] * w
				buf[k] = u + v
				buf[k+half] = u - v
				w *= wn
			}
		}
	}
}
