// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantFrequency estimates the strongest tone in a captured duty-cycle
// buffer, in Hz. The DC offset is removed before the transform so the
// unsigned sample bias does not win the peak search. An empty or flat buffer
// reports 0.
func DominantFrequency(duty []uint16, sampleRate int) float64 {
	if len(duty) < 2 || sampleRate < 1 {
		return 0
	}

	in := make([]float64, len(duty))
	var mean float64
	for i, v := range duty {
		in[i] = float64(v)
		mean += in[i]
	}
	mean /= float64(len(in))
	for i := range in {
		in[i] -= mean
	}

	spectrum := fft.FFTReal(in)

	// Only the bins below Nyquist carry independent information; bin 0 is
	// whatever DC residue survived the mean subtraction.
	best, bestMag := 0, 0.0
	for i := 1; i <= len(spectrum)/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		if mag > bestMag {
			best, bestMag = i, mag
		}
	}
	if best == 0 {
		return 0
	}

	return float64(best) * float64(sampleRate) / float64(len(in))
}

// RMS reports the root mean square level of a duty-cycle buffer after DC
// removal, in duty units. Useful as a crude loudness check on a capture.
func RMS(duty []uint16) float64 {
	if len(duty) == 0 {
		return 0
	}

	var mean float64
	for _, v := range duty {
		mean += float64(v)
	}
	mean /= float64(len(duty))

	var sum float64
	for _, v := range duty {
		d := float64(v) - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(duty)))
}
