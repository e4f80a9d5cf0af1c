// Package spectrum provides the FFT kernel and spectrum extraction helpers
// behind the transform package.
//
// The kernel is a self-contained iterative radix-2 decimation-in-time FFT
// operating in place on complex buffers. LeftSidedMagnitude and Power turn
// complex bins into real-valued spectra using SIMD-accelerated vector math.
package spectrum
