// SPDX-License-Identifier: EPL-2.0

package signal

import "github.com/jvgoveira/voxpad/hal"

// ADCBits is the resolution of the simulated analog converter, matching the
// 12-bit ADC of the reference board. Raw readings span [0, ADCMax].
const (
	ADCBits = 12
	ADCMax  = 1<<ADCBits - 1
)

// FloatToADC maps x in [-1, 1] onto an unsigned converter count centred at
// half scale, the way a DC-biased microphone input sits on a real ADC.
// Values outside [-1, 1] are clamped.
func FloatToADC(x float32) uint16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return uint16((x*0.5 + 0.5) * ADCMax)
}

// DutyToFloat maps a 10-bit duty level back onto [-1, 1], the inverse of
// the centring FloatToADC applies. Values above hal.MaxDuty are clamped.
func DutyToFloat(v uint16) float32 {
	if v > hal.MaxDuty {
		v = hal.MaxDuty
	}
	return float32(v)/float32(hal.MaxDuty)*2 - 1
}

// DutyToPCM16 converts a duty level to a signed 16-bit PCM sample for host
// audio output or WAV export.
func DutyToPCM16(v uint16) int16 {
	return int16(DutyToFloat(v) * 32767.0)
}
