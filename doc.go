// SPDX-License-Identifier: EPL-2.0

// Package voxpad implements a fixed-duration audio capture/playback pipeline
// driven by two buttons: one records a few seconds of the analog input into
// a fixed in-memory buffer, the other replays the buffer through a pair of
// duty-cycle output channels.
//
// The pipeline was designed for a small microcontroller board (one
// microphone on an ADC pin, two buzzers on PWM slices, two LEDs, two
// buttons) but is written against the hal.Board interface, so the same core
// runs under test boards and the host simulator in the sim package.
//
// # Pipeline
//
// A capture pass reads one raw sample per period, smooths it through the
// configured dsp.Strategy (a single-pole low-pass by default), and stores it
// in the sample buffer; after the last slot the whole buffer is loudness-
// normalized in place so its peak hits the full 10-bit output scale. A
// playback pass writes each stored sample to both output channels at the
// same cadence and finishes by silencing both channels.
//
// # Control loop
//
// The Looper is a cooperative state machine over three states: Idle,
// Recording, Playing. While Idle it polls the record button, then the play
// button; a detected press waits out a debounce interval and runs its phase
// to completion. Phases cannot overlap and cannot be cancelled, and button
// presses made while a phase runs are lost. This structural exclusivity is
// what lets the sample buffer go without a lock.
//
// # Quick start
//
//	cfg := voxpad.DefaultConfig() // 5 s at 16 kHz, alpha 0.1
//	looper, err := voxpad.NewLooper(board, cfg)
//	if err != nil {
//		// handle error
//	}
//	looper.Run(ctx) // poll buttons until ctx is done
//
// Or drive the phases directly:
//
//	looper.Record() // blocks for the full capture duration
//	looper.Play()   // blocks for the same duration again
//
// # Configuration
//
// Config can be built in code or loaded from YAML:
//
//	duration_seconds: 5
//	sample_rate: 16000
//	smoothing:
//	  strategy: exponential
//	  alpha: 0.1
//	debounce_ms: 200
//
// The buffer capacity is always duration times rate; there is no runtime
// renegotiation of any of these values.
//
// # Timing
//
// Pacing is a plain blocking sleep of one nominal period per sample. The
// sleep does not subtract the time spent reading, filtering or storing, so
// the achieved rate is systematically a little below nominal. That drift is
// a documented property of the design, kept rather than corrected.
//
// # Subpackages
//
//   - dsp: the pure filter and normalization primitives
//   - hal: the peripheral boundary the core is written against
//   - signal: file decoding, resampling and quantization for feeding a
//     simulated board from audio files
//   - sim: a software board for development hosts, with optional live
//     microphone/speaker backends and a terminal front panel
package voxpad
