// SPDX-License-Identifier: EPL-2.0

package dsp

// Smooth applies one step of a single-pole low-pass filter, blending the
// current raw sample with the previous filter output:
//
//	alpha*current + (1-alpha)*previous
//
// truncated back to the sample's integer representation. alpha must lie in
// [0, 1]: 1 returns current unchanged, 0 returns previous unchanged.
func Smooth(current, previous uint16, alpha float32) uint16 {
	return uint16(alpha*float32(current) + (1-alpha)*float32(previous))
}
