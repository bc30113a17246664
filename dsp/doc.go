// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the pure signal-processing primitives of the voxpad
// pipeline: the exponential smoothing filter applied during capture, the
// windowed-average alternative, and the post-capture loudness normalizer.
//
// All functions here operate on unsigned integer samples as the hardware
// produces them: raw analog readings on the way in, 10-bit duty levels
// (0..TargetMax) on the way out. Nothing in this package performs I/O,
// allocates per call, or keeps hidden state; the only stateful types are the
// [Strategy] implementations, whose state is explicit and reset per capture.
//
// # Smoothing
//
// [Smooth] is a single step of a single-pole (IIR) low-pass filter:
//
//	out = alpha*current + (1-alpha)*previous
//
// With the design value alpha = 0.1 this suppresses most high-frequency
// noise from the analog reader. alpha = 1 disables smoothing entirely and
// alpha = 0 freezes the filter at its previous output.
//
// [WindowedAverage] is the bounded-window alternative: the arithmetic mean
// of the samples within ±window of an index, with the window truncated at
// the buffer edges rather than padded.
//
// # Normalization
//
// [Normalize] rescales a captured buffer in place so its loudest sample
// reaches exactly TargetMax:
//
//	buf := []uint16{0, 100, 50, 0}
//	dsp.Normalize(buf)
//	// buf is now [0, 1023, 511, 0]
//
// An all-zero buffer is left untouched, so a silent capture stays silent.
//
// # Capture strategies
//
// [Strategy] is the per-sample smoothing stage the capture phase drives.
// [Exponential] wraps Smooth with a running previous-output value and is the
// default; [Windowed] averages a trailing window of raw readings and exists
// as a configurable alternative.
package dsp
