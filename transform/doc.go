// Package transform implements composable numeric transforms over paired
// (x, y) sample series.
//
// A [Transform] is one operation: a built-in [Kind] such as Log10,
// Derivative, or FFT, or a user-supplied callback. Transforms never fail.
// Mismatched input lengths truncate to the shorter side, samples a
// transform cannot represent (such as non-positive Log10 input) are dropped
// from both axes in lockstep, and degenerate data falls back to documented
// neutral results instead of errors.
//
// A [Pipeline] chains transforms with per-step enable flags, and a
// [Registry] resolves transforms by name and stores named pipelines for
// reuse.
package transform
