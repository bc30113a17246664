// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jvgoveira/voxpad/hal"
	"github.com/jvgoveira/voxpad/signal"
)

// Sink receives the duty-cycle levels the board writes to an output channel.
type Sink interface {
	WriteLevel(ch hal.Channel, duty uint16)
}

// Board is an in-memory hal.Board. Samples come from an optional mono
// signal.Source, output levels fan out to the configured sinks, and button
// presses are injected with Press.
type Board struct {
	mu         sync.Mutex
	mic        signal.Source
	micBuf     []float32
	micLen     int
	micPos     int
	micDone    bool
	sinks      []Sink
	pressed    map[hal.Button]bool
	indicators map[hal.Indicator]bool
	log        *slog.Logger
}

// NewBoard builds a board reading from mic and writing to sinks. mic may be
// nil, in which case every sample reads as silence. A multi-channel mic is
// rejected; wrap it in signal.Downmix first.
func NewBoard(mic signal.Source, sinks ...Sink) (*Board, error) {
	if mic != nil && mic.Channels() != 1 {
		return nil, signal.ErrMonoOnly
	}

	return &Board{
		mic:        mic,
		micBuf:     make([]float32, 1024),
		sinks:      sinks,
		pressed:    make(map[hal.Button]bool),
		indicators: make(map[hal.Indicator]bool),
		log:        slog.Default(),
	}, nil
}

// SetLogger routes the board's indicator events to log.
func (b *Board) SetLogger(log *slog.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if log != nil {
		b.log = log
	}
}

// Press latches a button so the next ReadButton on it reports true. The
// latch clears when read, like a tap that is shorter than the poll interval
// would on hardware.
func (b *Board) Press(id hal.Button) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pressed[id] = true
}

// Indicator reports the current state of an indicator lamp.
func (b *Board) Indicator(id hal.Indicator) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.indicators[id]
}

// ReadSample pulls the next microphone sample as a raw converter count.
// A missing, exhausted, or momentarily starved microphone reads as
// midscale, the level a DC-biased silent input sits at.
func (b *Board) ReadSample() uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.mic == nil || b.micDone {
		return signal.FloatToADC(0)
	}

	if b.micPos >= b.micLen {
		n, err := b.mic.ReadSamples(b.micBuf)
		b.micLen, b.micPos = n, 0
		if err == io.EOF {
			b.micDone = true
		} else if err != nil {
			b.log.Warn("microphone read failed", "error", err)
			b.micDone = true
		}
		if n == 0 {
			return signal.FloatToADC(0)
		}
	}

	x := b.micBuf[b.micPos]
	b.micPos++

	return signal.FloatToADC(x)
}

// SetOutputLevel fans the duty level out to every sink.
func (b *Board) SetOutputLevel(ch hal.Channel, duty uint16) {
	b.mu.Lock()
	sinks := b.sinks
	b.mu.Unlock()

	for _, s := range sinks {
		s.WriteLevel(ch, duty)
	}
}

// SetIndicator records the lamp state and logs the transition.
func (b *Board) SetIndicator(id hal.Indicator, on bool) {
	b.mu.Lock()
	changed := b.indicators[id] != on
	b.indicators[id] = on
	log := b.log
	b.mu.Unlock()

	if changed {
		log.Debug("indicator", "id", id.String(), "on", on)
	}
}

// ReadButton consumes a latched press.
func (b *Board) ReadButton(id hal.Button) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pressed[id] {
		b.pressed[id] = false
		return true
	}
	return false
}

// Sleep blocks for d.
func (b *Board) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Close releases the microphone.
func (b *Board) Close() error {
	b.mu.Lock()
	mic := b.mic
	b.mic = nil
	b.mu.Unlock()

	if mic == nil {
		return nil
	}
	return mic.Close()
}
