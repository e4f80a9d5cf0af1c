// Package stats provides the series summaries behind the data transforms:
// extrema, two-pass moments, and compensated running sums.
package stats

import "math"

// MinMax returns the minimum and maximum of data in a single pass.
// Empty input yields (0, 0).
func MinMax(data []float64) (minVal, maxVal float64) {
	if len(data) == 0 {
		return 0, 0
	}

	minVal, maxVal = data[0], data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	return minVal, maxVal
}

// MeanStddev returns the arithmetic mean and population standard deviation
// (variance divided by n, not n-1) of data.
//
// The mean is computed in a first pass and the variance against it in a
// second, so the result is the exact two-pass value rather than a streaming
// approximation. Empty input yields (0, 0).
func MeanStddev(data []float64) (mean, stddev float64) {
	n := len(data)
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range data {
		sum += v
	}
	mean = sum / float64(n)

	var varSum float64
	for _, v := range data {
		d := v - mean
		varSum += d * d
	}
	stddev = math.Sqrt(varSum / float64(n))

	return mean, stddev
}

// CumulativeSum writes the running sum of src into dst using Kahan
// compensated summation, so long series do not drift the way a plain
// accumulator would. dst must be at least as long as src.
func CumulativeSum(dst, src []float64) {
	var sum, c float64
	for i, v := range src {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		dst[i] = sum
	}
}
