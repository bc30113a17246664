// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"testing"

	"github.com/jvgoveira/voxpad/hal"
)

func TestFloatToADC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want uint16
	}{
		{"silence maps to midscale", 0, ADCMax / 2},
		{"full negative maps to zero", -1, 0},
		{"full positive maps to max", 1, ADCMax},
		{"clamps below range", -2.5, 0},
		{"clamps above range", 3.0, ADCMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToADC(tt.in); got != tt.want {
				t.Errorf("FloatToADC(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDutyToFloat(t *testing.T) {
	t.Parallel()

	if got := DutyToFloat(0); got != -1 {
		t.Errorf("DutyToFloat(0) = %v, want -1", got)
	}
	if got := DutyToFloat(hal.MaxDuty); got != 1 {
		t.Errorf("DutyToFloat(%d) = %v, want 1", hal.MaxDuty, got)
	}

	// Out-of-range duty values clamp instead of overshooting.
	if got := DutyToFloat(hal.MaxDuty + 500); got != 1 {
		t.Errorf("DutyToFloat(%d) = %v, want 1", hal.MaxDuty+500, got)
	}

	mid := DutyToFloat(hal.MaxDuty / 2)
	if mid < -0.01 || mid > 0.01 {
		t.Errorf("DutyToFloat(midscale) = %v, want near 0", mid)
	}
}

func TestDutyToPCM16(t *testing.T) {
	t.Parallel()

	if got := DutyToPCM16(0); got != -32767 {
		t.Errorf("DutyToPCM16(0) = %d, want -32767", got)
	}
	if got := DutyToPCM16(hal.MaxDuty); got != 32767 {
		t.Errorf("DutyToPCM16(%d) = %d, want 32767", hal.MaxDuty, got)
	}
}

func TestADCRoundTrip(t *testing.T) {
	t.Parallel()

	// Quantizing and back should stay within one ADC step.
	step := 2.0 / float32(ADCMax)
	for _, x := range []float32{-1, -0.5, -0.1, 0, 0.1, 0.5, 1} {
		adc := FloatToADC(x)
		back := float32(adc)/float32(ADCMax)*2 - 1
		if diff := back - x; diff > step || diff < -step {
			t.Errorf("round trip of %v drifted by %v (step %v)", x, diff, step)
		}
	}
}
