// SPDX-License-Identifier: EPL-2.0

package dsp

// TargetMax is the output resolution ceiling samples are rescaled to: the
// full scale of a 10-bit duty-cycle output.
const TargetMax = 1023

// Normalize rescales buf in place so the loudest sample reaches exactly
// TargetMax. Two passes: the first finds the maximum, the second rescales
// every element to floor(e*TargetMax/max). A buffer whose maximum is zero is
// left unchanged, guarding the division and keeping silence silent.
func Normalize(buf []uint16) {
	var maxVal uint16
	for _, v := range buf {
		if v > maxVal {
			maxVal = v
		}
	}

	if maxVal == 0 {
		return
	}

	for i, v := range buf {
		buf[i] = uint16(int(v) * TargetMax / int(maxVal))
	}
}
