// SPDX-License-Identifier: EPL-2.0

package voxpad

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jvgoveira/voxpad/dsp"
	"github.com/jvgoveira/voxpad/hal"
)

// State enumerates the control loop phases. Recording and Playing are
// mutually exclusive; the sample buffer belongs to whichever non-Idle state
// is current, and to nobody while Idle.
type State uint8

const (
	StateIdle State = iota
	StateRecording
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}

// pollPause keeps an idle Run loop from spinning a host CPU between button
// polls. It plays no part in sample pacing.
const pollPause = time.Millisecond

// Looper is the button-driven state machine that sequences capture and
// playback. It owns the sample buffer and runs as a single cooperative
// task: phases block until complete, button presses made while a phase runs
// are neither queued nor acted on later, and no two phases ever overlap.
type Looper struct {
	board hal.Board
	cfg   Config
	buf   *SampleBuffer
	strat dsp.Strategy
	log   *slog.Logger

	// state is written only by the looper task; the atomic lets observers
	// (a UI on another goroutine) read it without coordination.
	state atomic.Uint32
}

// NewLooper builds a Looper over board with the given configuration. The
// sample buffer (cfg.Samples() slots) is allocated here, once, and reused
// for every capture/playback cycle.
func NewLooper(board hal.Board, cfg Config) (*Looper, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Looper{
		board: board,
		cfg:   cfg,
		buf:   NewSampleBuffer(cfg.Samples()),
		strat: cfg.strategy(),
		log:   slog.Default(),
	}, nil
}

// SetLogger replaces the looper's logger. Call before Run; the default is
// slog.Default().
func (l *Looper) SetLogger(log *slog.Logger) {
	if log != nil {
		l.log = log
	}
}

// State returns the current control loop state. Safe from any goroutine.
func (l *Looper) State() State {
	return State(l.state.Load())
}

// Config returns the configuration the looper was built with.
func (l *Looper) Config() Config {
	return l.cfg
}

// Snapshot returns a copy of the sample buffer. Coherent only between
// phases; see SampleBuffer.Snapshot.
func (l *Looper) Snapshot() []uint16 {
	return l.buf.Snapshot()
}

// Record runs one full capture phase: N reads, N waits, then normalization.
// It blocks until the buffer is completely overwritten.
func (l *Looper) Record() {
	l.setState(StateRecording)
	l.log.Debug("capture started",
		"samples", l.buf.Len(), "period", l.cfg.Period())

	capture(l.board, l.buf, l.strat, l.cfg.Period())

	l.log.Debug("capture finished")
	l.setState(StateIdle)
}

// Play runs one full playback phase: N writes to both channels, N waits,
// then explicit silence on both channels. It blocks until done.
func (l *Looper) Play() {
	l.setState(StatePlaying)
	l.log.Debug("playback started",
		"samples", l.buf.Len(), "period", l.cfg.Period())

	play(l.board, l.buf, l.cfg.Period())

	l.log.Debug("playback finished")
	l.setState(StateIdle)
}

// Tick performs one idle-loop iteration: it polls the record button and
// then the play button. A detected press waits out the debounce interval
// and runs its phase to completion before Tick returns. Both buttons can
// fire in the same iteration; the record action completes first. Buttons
// are not polled while a phase runs, so presses made during capture or
// playback are lost.
func (l *Looper) Tick() {
	if l.board.ReadButton(hal.ButtonRecord) {
		l.board.Sleep(l.cfg.Debounce())
		l.Record()
	}

	if l.board.ReadButton(hal.ButtonPlay) {
		l.board.Sleep(l.cfg.Debounce())
		l.Play()
	}
}

// Run polls the buttons until ctx is done. Cancellation is only honored
// between iterations: a phase in progress always runs to completion first,
// matching the no-cancellation contract of the capture and playback phases.
func (l *Looper) Run(ctx context.Context) {
	l.log.Info("looper running",
		"duration_s", l.cfg.DurationSeconds,
		"sample_rate", l.cfg.SampleRate,
		"strategy", string(l.cfg.Smoothing.Strategy))

	for {
		select {
		case <-ctx.Done():
			l.log.Info("looper stopped")
			return
		default:
		}

		l.Tick()
		time.Sleep(pollPause)
	}
}

func (l *Looper) setState(s State) {
	l.state.Store(uint32(s))
}
