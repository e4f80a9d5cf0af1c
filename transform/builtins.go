package transform

import (
	"math"

	"github.com/cwbudde/algo-transform/stats"
)

func applyIdentity(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := append([]float64(nil), yIn[:n]...)
	return xOut, yOut
}

// applyLog keeps only rows with positive y, mapping them through logFn.
// Both axes drop rows in lockstep so pairs stay aligned.
func applyLog(xIn, yIn []float64, logFn func(float64) float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := make([]float64, 0, n)
	yOut := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		if yIn[i] > 0 {
			xOut = append(xOut, xIn[i])
			yOut = append(yOut, logFn(yIn[i]))
		}
	}

	return xOut, yOut
}

func applyAbs(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)
	for i := 0; i < n; i++ {
		yOut[i] = math.Abs(yIn[i])
	}
	return xOut, yOut
}

func applyNegate(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)
	for i := 0; i < n; i++ {
		yOut[i] = -yIn[i]
	}
	return xOut, yOut
}

func applyNormalize(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)

	if n == 0 {
		return xOut, yOut
	}

	minVal, maxVal := stats.MinMax(yIn[:n])

	span := maxVal - minVal
	if span == 0 {
		// All values identical: map to the middle of the target range.
		for i := range yOut {
			yOut[i] = 0.5
		}
		return xOut, yOut
	}

	invSpan := 1 / span
	for i := 0; i < n; i++ {
		yOut[i] = (yIn[i] - minVal) * invSpan
	}

	return xOut, yOut
}

func applyStandardize(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)

	if n == 0 {
		return xOut, yOut
	}

	mean, stddev := stats.MeanStddev(yIn[:n])
	if stddev == 0 {
		// Constant series: z-scores are all zero, which yOut already is.
		return xOut, yOut
	}

	invStd := 1 / stddev
	for i := 0; i < n; i++ {
		yOut[i] = (yIn[i] - mean) * invStd
	}

	return xOut, yOut
}

// applyDerivative computes forward-difference slopes evaluated at interval
// midpoints: one output row per input interval, zero slope where dx is
// zero.
func applyDerivative(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	if n < 2 {
		return nil, nil
	}

	outN := n - 1
	xOut := make([]float64, outN)
	yOut := make([]float64, outN)

	for i := 0; i < outN; i++ {
		dx := xIn[i+1] - xIn[i]
		dy := yIn[i+1] - yIn[i]
		xOut[i] = (xIn[i] + xIn[i+1]) * 0.5
		if dx != 0 {
			yOut[i] = dy / dx
		}
	}

	return xOut, yOut
}

func applyCumulativeSum(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)
	stats.CumulativeSum(yOut, yIn[:n])
	return xOut, yOut
}

// applyDiff emits y[i+1]-y[i] against the later sample's x.
func applyDiff(xIn, yIn []float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	if n < 2 {
		return nil, nil
	}

	outN := n - 1
	xOut := make([]float64, outN)
	yOut := make([]float64, outN)

	for i := 0; i < outN; i++ {
		xOut[i] = xIn[i+1]
		yOut[i] = yIn[i+1] - yIn[i]
	}

	return xOut, yOut
}

func applyScale(xIn, yIn []float64, factor float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)
	for i := 0; i < n; i++ {
		yOut[i] = yIn[i] * factor
	}
	return xOut, yOut
}

func applyOffset(xIn, yIn []float64, offset float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)
	for i := 0; i < n; i++ {
		yOut[i] = yIn[i] + offset
	}
	return xOut, yOut
}

func applyClamp(xIn, yIn []float64, minVal, maxVal float64) ([]float64, []float64) {
	n := min(len(xIn), len(yIn))
	xOut := append([]float64(nil), xIn[:n]...)
	yOut := make([]float64, n)
	for i := 0; i < n; i++ {
		yOut[i] = clampValue(yIn[i], minVal, maxVal)
	}
	return xOut, yOut
}

// clampValue limits v by straight comparison against each bound. The
// bounds are not reordered: an inverted range is applied as given.
func clampValue(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
