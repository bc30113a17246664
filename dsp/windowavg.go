// SPDX-License-Identifier: EPL-2.0

package dsp

// WindowedAverage returns the arithmetic mean of the buffer elements with
// indices in [index-window, index+window], skipping indices that fall
// outside the buffer. Near the edges the window shrinks: the divisor is the
// count of elements actually summed, never padded. Integer division
// truncates toward zero.
//
// An index so far out of range that no element falls inside the window
// yields 0.
func WindowedAverage(buf []uint16, index, window int) uint16 {
	sum := 0
	count := 0
	for i := index - window; i <= index+window; i++ {
		if i >= 0 && i < len(buf) {
			sum += int(buf[i])
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return uint16(sum / count)
}
