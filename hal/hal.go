// SPDX-License-Identifier: EPL-2.0

// Package hal defines the peripheral boundary of the voxpad pipeline.
//
// The capture/playback core never touches hardware directly; it talks to a
// [Board], which the runtime environment provides. On a real device the Board
// wraps the ADC, the PWM slices, the indicator pins and the button pins. On a
// development host the sim package provides a software Board, and
// internal/boardtest provides a scripted one for tests.
//
// All Board calls are defined to succeed. An analog read that fails at the
// hardware level is indistinguishable from a valid zero reading, and output
// writes are fire-and-forget. This mirrors the physical board, which has no
// channel for reporting peripheral faults beyond its two indicators.
package hal

import "time"

// MaxDuty is the highest duty level an output channel accepts. The outputs
// run at 10-bit resolution, so valid duty values span [0, MaxDuty].
const MaxDuty = 1023

// Channel identifies one of the two duty-cycle output channels. The core
// always drives both channels with the same value; the distinction exists
// only so a Board can route them to separate physical pins.
type Channel uint8

const (
	ChannelLeft Channel = iota
	ChannelRight
)

func (c Channel) String() string {
	switch c {
	case ChannelLeft:
		return "left"
	case ChannelRight:
		return "right"
	}
	return "unknown"
}

// Indicator identifies one of the two status indicators.
type Indicator uint8

const (
	// IndicatorRecord is lit for the full duration of a capture pass.
	IndicatorRecord Indicator = iota
	// IndicatorPlay is lit for the full duration of a playback pass.
	IndicatorPlay
)

func (i Indicator) String() string {
	switch i {
	case IndicatorRecord:
		return "record"
	case IndicatorPlay:
		return "play"
	}
	return "unknown"
}

// Button identifies one of the two momentary trigger buttons.
type Button uint8

const (
	ButtonRecord Button = iota
	ButtonPlay
)

func (b Button) String() string {
	switch b {
	case ButtonRecord:
		return "record"
	case ButtonPlay:
		return "play"
	}
	return "unknown"
}

// Board is the complete peripheral surface the pipeline needs.
//
// The core is a single cooperative task: it never calls Board methods from
// more than one goroutine, and Sleep is its only suspension point.
// Implementations may therefore keep per-call state without locking, except
// where they accept input from other goroutines (buttons pressed from a UI,
// for example).
type Board interface {
	// ReadSample returns one unsigned reading from the analog input.
	// Reads always succeed; a dead input reads as a steady value.
	ReadSample() uint16

	// SetOutputLevel sets one output channel's duty level, in [0, MaxDuty].
	SetOutputLevel(ch Channel, duty uint16)

	// SetIndicator switches a status indicator on or off.
	SetIndicator(id Indicator, on bool)

	// ReadButton reports whether a button is currently pressed.
	ReadButton(id Button) bool

	// Sleep blocks the calling task for d.
	Sleep(d time.Duration)
}
