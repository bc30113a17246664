// SPDX-License-Identifier: EPL-2.0

// Package boardtest provides a scripted in-memory board for exercising the
// capture/playback pipeline without hardware.
//
// The board keeps a virtual clock that only advances when the code under
// test sleeps, so timing-sensitive behavior (debounce, per-sample pacing,
// presses that expire while a phase runs) can be scripted deterministically
// and verified without real waiting. Every indicator change, output write
// and sleep is journaled with the virtual time at which it happened.
package boardtest

import (
	"time"

	"github.com/jvgoveira/voxpad/hal"
)

// EventKind tags a journal entry.
type EventKind uint8

const (
	EventIndicator EventKind = iota
	EventOutput
	EventSleep
)

// Event is one journal entry. Only the fields relevant to its Kind are set.
type Event struct {
	Kind EventKind
	At   time.Duration // virtual time when the event was recorded

	Indicator hal.Indicator // EventIndicator
	On        bool          // EventIndicator

	Channel hal.Channel // EventOutput
	Duty    uint16      // EventOutput

	Slept time.Duration // EventSleep
}

// press is a scheduled button hold in virtual time.
type press struct {
	id       hal.Button
	from, to time.Duration
}

// Board implements hal.Board against scripted inputs.
type Board struct {
	samples []uint16
	cursor  int

	now     time.Duration
	events  []Event
	presses []press
}

// New returns a board whose analog input replays the given samples, cycling
// when the script is shorter than a capture. An empty script reads as a
// steady zero.
func New(samples ...uint16) *Board {
	return &Board{samples: samples}
}

// PressBetween schedules a button hold over the closed virtual time window
// [from, to]. Polls inside the window observe the button as pressed;
// polls outside it never do, which is how a press made during a phase gets
// lost.
func (b *Board) PressBetween(id hal.Button, from, to time.Duration) {
	b.presses = append(b.presses, press{id: id, from: from, to: to})
}

// Press schedules an instantaneous tap at the current virtual time. It is
// observed by the next poll only if no sleep happens first.
func (b *Board) Press(id hal.Button) {
	b.PressBetween(id, b.now, b.now)
}

// ReadSample implements hal.Board.
func (b *Board) ReadSample() uint16 {
	if len(b.samples) == 0 {
		return 0
	}
	v := b.samples[b.cursor]
	b.cursor = (b.cursor + 1) % len(b.samples)
	return v
}

// SetOutputLevel implements hal.Board.
func (b *Board) SetOutputLevel(ch hal.Channel, duty uint16) {
	b.events = append(b.events, Event{
		Kind: EventOutput, At: b.now, Channel: ch, Duty: duty,
	})
}

// SetIndicator implements hal.Board.
func (b *Board) SetIndicator(id hal.Indicator, on bool) {
	b.events = append(b.events, Event{
		Kind: EventIndicator, At: b.now, Indicator: id, On: on,
	})
}

// ReadButton implements hal.Board.
func (b *Board) ReadButton(id hal.Button) bool {
	for _, p := range b.presses {
		if p.id == id && b.now >= p.from && b.now <= p.to {
			return true
		}
	}
	return false
}

// Sleep implements hal.Board by advancing the virtual clock.
func (b *Board) Sleep(d time.Duration) {
	b.events = append(b.events, Event{Kind: EventSleep, At: b.now, Slept: d})
	b.now += d
}

// Now returns the current virtual time.
func (b *Board) Now() time.Duration {
	return b.now
}

// Events returns the full journal in order.
func (b *Board) Events() []Event {
	return b.events
}

// Outputs returns every duty value written to ch, in order.
func (b *Board) Outputs(ch hal.Channel) []uint16 {
	var out []uint16
	for _, e := range b.events {
		if e.Kind == EventOutput && e.Channel == ch {
			out = append(out, e.Duty)
		}
	}
	return out
}

// IndicatorChanges returns the sequence of on/off transitions recorded for
// the given indicator.
func (b *Board) IndicatorChanges(id hal.Indicator) []bool {
	var out []bool
	for _, e := range b.events {
		if e.Kind == EventIndicator && e.Indicator == id {
			out = append(out, e.On)
		}
	}
	return out
}

// Sleeps returns every sleep duration in order.
func (b *Board) Sleeps() []time.Duration {
	var out []time.Duration
	for _, e := range b.events {
		if e.Kind == EventSleep {
			out = append(out, e.Slept)
		}
	}
	return out
}

// SleepCount returns how many sleeps of exactly d were recorded.
func (b *Board) SleepCount(d time.Duration) int {
	n := 0
	for _, e := range b.events {
		if e.Kind == EventSleep && e.Slept == d {
			n++
		}
	}
	return n
}
