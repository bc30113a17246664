// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/jvgoveira/voxpad/hal"
	"github.com/jvgoveira/voxpad/signal"
)

// Speaker plays the board's output through the host audio device using oto.
// Both channels carry the same signal on the board, so only the left one is
// mixed; the right write is dropped instead of doubling the level.
type Speaker struct {
	ctx    *oto.Context
	player *oto.Player

	mu   sync.Mutex
	ring []float32
	head int
	tail int
	size int
	last float32
}

// NewSpeaker opens the host audio device at sampleRate.
func NewSpeaker(sampleRate int) (*Speaker, error) {
	if sampleRate < 1 {
		return nil, signal.ErrBadRate
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	s := &Speaker{
		ctx: ctx,
		// Half a second of slack between the looper's write pace and the
		// device pull pace.
		ring: make([]float32, sampleRate/2),
	}
	s.player = ctx.NewPlayer(s)
	s.player.Play()

	return s, nil
}

// WriteLevel implements Sink.
func (s *Speaker) WriteLevel(ch hal.Channel, duty uint16) {
	if ch != hal.ChannelLeft {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.size == len(s.ring) {
		// Overrun: drop the oldest sample.
		s.head = (s.head + 1) % len(s.ring)
		s.size--
	}
	s.ring[s.tail] = signal.DutyToFloat(duty)
	s.tail = (s.tail + 1) % len(s.ring)
	s.size++
}

// Read feeds the audio device. When the looper is idle the ring runs dry
// and the device keeps pulling, so underruns repeat the last level rather
// than snapping to zero and clicking.
func (s *Speaker) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(p) / 4
	for i := range n {
		v := s.last
		if s.size > 0 {
			v = s.ring[s.head]
			s.head = (s.head + 1) % len(s.ring)
			s.size--
			s.last = v
		}
		binary.LittleEndian.PutUint32(p[4*i:4*i+4], math.Float32bits(v))
	}

	return n * 4, nil
}

// Close stops playback.
func (s *Speaker) Close() error {
	return s.player.Close()
}
